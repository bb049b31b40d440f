package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/trainers/internal/config"
	"github.com/sghaida/trainers/speak"
)

func (a *app) newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Run the trainers listed in a roster file",
		Long: `Run the trainers listed in a YAML roster file, in order.

The file defaults to $TRAINERS_ROSTER_FILE or ./trainers.yaml. When neither
exists, the built-in demo roster is used. Const entries take their tag at run
time instead of at build time.`,
		Args: cobra.NoArgs,
		RunE: a.runRoster,
	}
	cmd.PersistentFlags().StringVarP(&a.rosterFile, "file", "f", "", "roster file")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the demo roster to a file",
		Args:  cobra.NoArgs,
		RunE:  a.runRosterInit,
	}
	initCmd.Flags().BoolVar(&a.force, "force", false, "overwrite an existing roster file")

	cmd.AddCommand(initCmd)
	return cmd
}

func (a *app) runRoster(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.rosterFile)
	if err != nil {
		a.logger.Error("failed to load roster", "error", err)
		return fmt.Errorf("load roster: %w", err)
	}
	a.logger.Info("loaded roster", "file", cfg.RosterFile, "from_file", cfg.FromFile, "entries", len(cfg.Roster))

	trainers, err := speak.BuildAll(cfg.Roster, speak.DefaultRegistry())
	if err != nil {
		a.logger.Error("failed to build trainers", "error", err)
		return fmt.Errorf("build trainers: %w", err)
	}

	for i, e := range cfg.Roster {
		a.logger.Debug("trainer", "index", i, "dispatch", e.Dispatch, "animal", e.Animal, "tag", e.Tag)
	}

	speak.Run(cmd.OutOrStdout(), trainers)
	return nil
}

func (a *app) runRosterInit(cmd *cobra.Command, _ []string) error {
	path := a.rosterFile
	if path == "" {
		path = config.DefaultRosterFile
	}

	if err := config.WriteRoster(path, speak.DemoRoster(), a.force); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	a.logger.Info("wrote roster", "file", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote roster to %s\n", path)
	return nil
}
