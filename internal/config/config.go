// Package config manages the persisted user preferences and the global
// logger. The unit-system preference lives here so it survives across
// sessions and is passed explicitly into calculations rather than read
// as ambient state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/commutrace/commutrace/internal/units"
)

// configFileName is the settings file inside the commutrace home dir.
const configFileName = "config.yaml"

// recordsDirName is the blob-store directory inside the home dir.
const recordsDirName = "store"

// Config is the persisted application configuration.
type Config struct {
	// Units is the global display unit system ("imperial" or "metric").
	Units string `yaml:"units"`

	// Logging configures the global logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is a zerolog level name; invalid values fall back to info.
	Level string `yaml:"level"`

	// File, when set, receives log output in addition to stderr.
	File string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Units: units.Imperial.String(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// UnitSystem resolves the configured unit-system preference, falling
// back to Imperial for unparseable values.
func (c *Config) UnitSystem() units.System {
	sys, err := units.ParseSystem(c.Units)
	if err != nil {
		return units.Imperial
	}
	return sys
}

// SetUnitSystem updates the unit-system preference.
func (c *Config) SetUnitSystem(sys units.System) {
	c.Units = sys.String()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := units.ParseSystem(c.Units); err != nil {
		return fmt.Errorf("units %q: %w", c.Units, err)
	}
	return nil
}

// HomeDir returns the commutrace home directory. COMMUTRACE_HOME
// overrides the default ~/.commutrace.
func HomeDir() (string, error) {
	if home := os.Getenv("COMMUTRACE_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".commutrace"), nil
}

// ConfigPath returns the path of the settings file.
func ConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// StoreDir returns the blob-store directory path.
func StoreDir() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, recordsDirName), nil
}

// EnsureHomeDir creates the commutrace home directory if missing.
func EnsureHomeDir() error {
	dir, err := HomeDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// Load reads the settings file, returning defaults when it does not
// exist. A malformed file is an error; a missing one is not.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the settings file, creating the home directory if needed.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := EnsureHomeDir(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Global configuration singleton, initialized lazily.
var (
	globalConfig   *Config      //nolint:gochecknoglobals // Singleton pattern for configuration.
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig.
)

// GetGlobal returns the global configuration, loading it on first use.
// Load failures fall back to defaults so a broken config file never
// blocks the CLI.
func GetGlobal() *Config {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// ResetGlobalForTest clears the global config singleton.
func ResetGlobalForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
