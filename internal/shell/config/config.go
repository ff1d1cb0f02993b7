package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/emberdb/ember/internal/version"
)

// Config represents the configuration for the ember shell.
type Config struct {
	DatabasePath string `arg:"positional" help:"Path of the database file to open or create"`
	Ephemeral    bool   `arg:"--ephemeral,env:EMBER_EPHEMERAL" help:"Use a throwaway database that is deleted on exit" default:"false"`
	Verbose      bool   `arg:"--verbose,env:EMBER_VERBOSE" help:"Write structured logs to stderr" default:"false"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ShellVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validate(cfg); err != nil {
		log.Fatal(err)
	}

	return cfg
}

func validate(cfg Config) error {
	if cfg.DatabasePath == "" && !cfg.Ephemeral {
		return errors.New("a database path is required unless --ephemeral is given")
	}
	if cfg.DatabasePath != "" && cfg.Ephemeral {
		return errors.New("--ephemeral cannot be combined with a database path")
	}
	return nil
}
