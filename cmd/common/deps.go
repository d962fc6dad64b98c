// Package common provides shared utilities for command implementations.
package common

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/north-cloud/techintel/internal/config"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
)

var (
	// ErrLoggerRequired is returned when CommandDeps.Logger is nil.
	ErrLoggerRequired = errors.New("logger is required")
	// ErrConfigRequired is returned when CommandDeps.Config is nil.
	ErrConfigRequired = errors.New("config is required")
)

// CommandDeps holds common dependencies for all commands.
type CommandDeps struct {
	Logger logger.Logger
	Config *config.Config
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}

// Loader builds CommandDeps when a command runs.
type Loader func() (CommandDeps, error)

// NewCommandDeps loads configuration from cfgFile (optional) and creates the
// logger. debug forces debug logging regardless of the file.
func NewCommandDeps(cfgFile string, debug bool) (CommandDeps, error) {
	v := viper.New()
	if debug {
		v.Set("app.debug", true)
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger: log.With(logger.String("service", cfg.App.Name)),
		Config: cfg,
	}
	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}
