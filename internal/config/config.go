// Package config loads run settings from flags, PEGGAME_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/histogram"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PEGGAME"

// Keys shared by viper, the YAML file and the flags.
const (
	KeyFormat      = "format"
	KeyStrict      = "strict"
	KeyStarts      = "starts"
	KeyAllHoles    = "all_holes"
	KeyLogLevel    = "log_level"
	KeyMetricsFile = "metrics_file"
)

// Config holds the settings of one run.
type Config struct {
	Format      string `mapstructure:"format"`
	Strict      bool   `mapstructure:"strict"`
	Starts      []int  `mapstructure:"starts"`
	AllHoles    bool   `mapstructure:"all_holes"`
	LogLevel    string `mapstructure:"log_level"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Defaults returns the settings used when nothing else is given.
func Defaults() Config {
	return Config{
		Format:   string(histogram.FormatText),
		LogLevel: "info",
	}
}

// NewViper returns a viper instance with defaults and environment lookup
// set up. Callers bind their flags before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyStarts, []int{})
	v.SetDefault(KeyAllHoles, d.AllHoles)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyMetricsFile, d.MetricsFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes the merged settings.
func Load(v *viper.Viper, file string) (Config, error) {
	var cfg Config
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field that has a restricted set of values.
func (c Config) Validate() error {
	if _, err := histogram.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, s := range c.Starts {
		if !board.IsValidCell(board.Cell(s)) {
			return fmt.Errorf("%w: start %d must be in range [0, %d)", board.ErrInvalidCell, s, board.CellCount)
		}
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// StartCells returns the explicit starting holes.
func (c Config) StartCells() []board.Cell {
	if len(c.Starts) == 0 {
		return nil
	}
	cells := make([]board.Cell, len(c.Starts))
	for i, s := range c.Starts {
		cells[i] = board.Cell(s)
	}
	return cells
}
