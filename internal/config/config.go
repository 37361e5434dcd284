package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. CELLARCTL_DATA_PATH.
const EnvPrefix = "CELLARCTL"

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cellarctl", "config.yml")
}

// Path returns the config file in use: $CELLARCTL_CONFIG or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return util.ExpandHome(p)
	}
	return DefaultPath()
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Data:     DataConfig{Format: "auto"},
		Defaults: DefaultsConfig{Sort: "recentlyAdded"},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads the config from Path (or env). A missing file is not an
// error; the init command creates it.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config from path with defaults and env overrides
// applied.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("data.path", def.Data.Path)
	v.SetDefault("data.format", def.Data.Format)
	v.SetDefault("defaults.sort", def.Defaults.Sort)
	v.SetDefault("defaults.year", def.Defaults.Year)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Data.Path = util.ExpandHome(cfg.Data.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to Path.
func Save(cfg *Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config as YAML, replacing path atomically.
func SaveFile(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return util.WriteFileAtomic(path, buf.Bytes())
}
