// Package cli implements the trainers command-line interface.
//
// Running the root command with no arguments prints the fixed six-line demo.
// Subcommands run a roster file and print the version.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sghaida/trainers/internal/config"
	"github.com/sghaida/trainers/internal/logging"
	"github.com/sghaida/trainers/speak"
)

// Version is the binary version reported by "trainers version".
const Version = "v0.1.0"

const (
	exitSuccess = 0
	exitError   = 1
)

// app holds flag values and the logger shared by all subcommands.
type app struct {
	logLevel   string
	rosterFile string
	force      bool

	logger *slog.Logger
}

// NewRootCmd creates the top-level "trainers" command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "trainers",
		Short: "Ask animals to speak through four dispatch styles",
		Long: `trainers prints one greeting per trainer. Each trainer reaches the
animal through a different dispatch mechanism: a closed-set union, a generic
type parameter, a function reference, or a build-time constant.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogging,
		Run: func(cmd *cobra.Command, args []string) {
			a.logger.Debug("running demo sequence")
			speak.Demo(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error; default $TRAINERS_LOG_LEVEL or warn)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newRosterCmd())

	return root
}

// setupLogging builds the logger from --log-level. Subcommands fall back to
// TRAINERS_LOG_LEVEL; the bare root command reads no environment and uses
// the default level.
func (a *app) setupLogging(cmd *cobra.Command, _ []string) error {
	name := a.logLevel
	if name == "" && cmd != cmd.Root() {
		name = config.LogLevel()
	}

	level, err := logging.ParseLevel(name)
	if err != nil {
		return err
	}

	a.logger = logging.Setup(cmd.ErrOrStderr(), level)
	return nil
}

// Run executes the root command with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return exitError
	}
	return exitSuccess
}

// Execute runs the root command against the process arguments and exits.
func Execute() {
	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != exitSuccess {
		os.Exit(code)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the trainers version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "trainers", Version)
		},
	}
}
