// Package config loads trainers configuration with Viper.
//
// Values come from, in order of precedence: an explicit roster file path,
// TRAINERS_* environment variables, then built-in defaults. A missing
// default roster file is not an error; the demo roster is used instead.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/trainers/speak"
)

const (
	envPrefix = "TRAINERS"

	// Config keys.
	KeyLogLevel   = "log_level"
	KeyRosterFile = "roster_file"
	KeyRoster     = "roster"

	// DefaultRosterFile is looked up in the working directory.
	DefaultRosterFile = "trainers.yaml"
	DefaultLogLevel   = "warn"
)

var (
	// ErrEmptyRoster is returned when a roster file lists no trainers.
	ErrEmptyRoster = errors.New("config: roster is empty")

	// ErrRosterExists is returned by WriteRoster when the file already exists.
	ErrRosterExists = errors.New("config: roster file already exists")
)

// Config is the resolved configuration.
type Config struct {
	LogLevel   string
	RosterFile string
	// FromFile reports whether Roster was read from RosterFile.
	FromFile bool
	Roster   []speak.Entry
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyRosterFile, DefaultRosterFile)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// LogLevel returns TRAINERS_LOG_LEVEL or the default level name.
func LogLevel() string {
	return newViper().GetString(KeyLogLevel)
}

// Load resolves configuration. rosterFile overrides TRAINERS_ROSTER_FILE;
// when it is set the file must exist.
func Load(rosterFile string) (Config, error) {
	v := newViper()

	explicit := rosterFile != ""
	if !explicit {
		rosterFile = v.GetString(KeyRosterFile)
	}

	cfg := Config{
		LogLevel:   v.GetString(KeyLogLevel),
		RosterFile: rosterFile,
	}

	_, err := os.Stat(rosterFile)
	switch {
	case err == nil:
	case os.IsNotExist(err) && !explicit:
		cfg.Roster = speak.DemoRoster()
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("stat roster file: %w", err)
	}

	v.SetConfigFile(rosterFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read roster file: %w", err)
	}

	if !v.IsSet(KeyRoster) {
		return Config{}, fmt.Errorf("%s: %w", rosterFile, ErrEmptyRoster)
	}
	if err := v.UnmarshalKey(KeyRoster, &cfg.Roster); err != nil {
		return Config{}, fmt.Errorf("decode roster: %w", err)
	}
	if len(cfg.Roster) == 0 {
		return Config{}, fmt.Errorf("%s: %w", rosterFile, ErrEmptyRoster)
	}

	cfg.FromFile = true
	return cfg, nil
}

const rosterHeader = `# Trainers roster
# dispatch: enum | generic | func | const
# animal:   dog | cat (enum, generic, func)
# tag:      any integer (const); 1 = cat, 2 = dog, others are unknown
`

type rosterFile struct {
	Roster []speak.Entry `yaml:"roster"`
}

// WriteRoster writes entries to path as YAML. It does not overwrite an
// existing file unless force is set.
func WriteRoster(path string, entries []speak.Entry, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrRosterExists)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat roster file: %w", err)
		}
	}

	body, err := yaml.Marshal(rosterFile{Roster: entries})
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	return os.WriteFile(path, append([]byte(rosterHeader), body...), 0o644)
}
