package config

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
)

// Config is the top-level cellarctl configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data" yaml:"data"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// DataConfig locates the inventory document.
type DataConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`     // empty = bundled sample
	Format string `mapstructure:"format" yaml:"format"` // auto, json or yaml
}

// DefaultsConfig holds default values for queries.
type DefaultsConfig struct {
	Sort string `mapstructure:"sort" yaml:"sort"`
	Year int    `mapstructure:"year" yaml:"year"` // 0 = current year
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // console or json
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Validate rejects values outside their vocabularies.
func (c *Config) Validate() error {
	if _, err := catalog.ParseFormat(c.Data.Format); err != nil {
		return fmt.Errorf("data.format: %w", err)
	}
	if _, err := filter.ParseSortOption(c.Defaults.Sort); err != nil {
		return fmt.Errorf("defaults.sort: %w", err)
	}
	if c.Defaults.Year < 0 {
		return fmt.Errorf("defaults.year: must not be negative, got %d", c.Defaults.Year)
	}
	if !oneOf(c.Logging.Level, logLevels) {
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if !oneOf(c.Logging.Format, logFormats) {
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}

// DataFormat returns the parsed data.format, falling back to auto.
func (c *Config) DataFormat() catalog.Format {
	f, err := catalog.ParseFormat(c.Data.Format)
	if err != nil {
		return catalog.FormatAuto
	}
	return f
}

// SortOption returns the parsed defaults.sort, falling back to recentlyAdded.
func (c *Config) SortOption() filter.SortOption {
	s, err := filter.ParseSortOption(c.Defaults.Sort)
	if err != nil {
		return filter.SortRecentlyAdded
	}
	return s
}

// Year returns the configured year, or the year of now when unset.
func (c *Config) Year(now time.Time) int {
	if c.Defaults.Year > 0 {
		return c.Defaults.Year
	}
	return now.Year()
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
