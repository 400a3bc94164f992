package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmarsden/rowgrid/internal/grid"
)

// Defaults and validation limits for grid configuration.
const (
	// DefaultPageSize is the fixed page size for this deployment.
	DefaultPageSize = 50
	// MinPageSize is the smallest accepted page size.
	MinPageSize = 1
	// MaxPageSize is the largest accepted page size.
	MaxPageSize = 1000
)

// Configuration validation errors.
var (
	ErrPageSizeOutOfRange = errors.New("page size must be between 1 and 1000")
	ErrUnknownPolicy      = errors.New("selection policy must be 'persist' or 'clear-on-navigate'")
)

// GridConfig holds the grid core's tunables.
type GridConfig struct {
	// PageSize is the number of rows per page. Defaults to 50.
	PageSize int `yaml:"page_size,omitempty" json:"page_size,omitempty"`
	// SelectionPolicy decides whether selection survives page
	// navigation. Defaults to "persist".
	SelectionPolicy string `yaml:"selection_policy,omitempty" json:"selection_policy,omitempty"`
}

// Validate checks the grid configuration.
func (g GridConfig) Validate() error {
	if g.PageSize < MinPageSize || g.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrPageSizeOutOfRange, g.PageSize)
	}
	if !grid.ValidPolicy(grid.SelectionPolicy(g.SelectionPolicy)) {
		return fmt.Errorf("%w: got %q", ErrUnknownPolicy, g.SelectionPolicy)
	}
	return nil
}

// Policy returns the configured selection policy as the grid type.
func (g GridConfig) Policy() grid.SelectionPolicy {
	return grid.SelectionPolicy(g.SelectionPolicy)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the zerolog level name (debug, info, warn, error).
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
	// File, when set, adds a file sink alongside the console writer.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Config is the top-level rowgrid configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"              json:"grid"`
	Logging LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			PageSize:        DefaultPageSize,
			SelectionPolicy: string(grid.PolicyPersist),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	return c.Grid.Validate()
}

// LoadConfig reads a YAML configuration file and fills unset fields
// from the defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Grid.PageSize == 0 {
		cfg.Grid.PageSize = DefaultPageSize
	}
	if cfg.Grid.SelectionPolicy == "" {
		cfg.Grid.SelectionPolicy = string(grid.PolicyPersist)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
