// Package config loads and saves the ecofootprint configuration file.
//
// The file only carries presentation and logging preferences. Emission
// factors are fixed in the footprint package and have no configuration key.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/ecofootprint/internal/logging"
)

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variables read by ApplyEnv and DefaultPath.
const (
	EnvConfigPath = "ECOFOOTPRINT_CONFIG"
	EnvLogLevel   = "ECOFOOTPRINT_LOG_LEVEL"
	EnvLogFormat  = "ECOFOOTPRINT_LOG_FORMAT"
	EnvOutput     = "ECOFOOTPRINT_OUTPUT"
)

const (
	dirName  = ".ecofootprint"
	fileName = "config.yaml"
)

// Config is the full configuration file.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// OutputConfig controls how reports are printed.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`

	// Equivalents adds a "driving ~N km" restatement of the total.
	Equivalents bool `yaml:"equivalents"`

	// Color enables lipgloss styling when stdout is a terminal.
	Color bool `yaml:"color"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`

	// Caller adds file:line to every event.
	Caller bool `yaml:"caller,omitempty"`
}

// New returns the default configuration bound to DefaultPath.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
		configPath: DefaultPath(),
	}
}

// DefaultPath returns $ECOFOOTPRINT_CONFIG, or ~/.ecofootprint/config.yaml.
// It falls back to a relative path when the home directory is unknown.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(dirName, fileName)
	}
	return filepath.Join(home, dirName, fileName)
}

// ConfigPath returns the file this config loads from and saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load reads path on top of the defaults. A missing file is not an error.
// Unknown keys are rejected so typos (or attempts to override emission
// factors) surface instead of being silently ignored.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		path = cfg.configPath
	}
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ECOFOOTPRINT_* variables using lookupEnv.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOutput); ok && v != "" {
		c.Output.Format = strings.ToLower(v)
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q",
			logging.FormatConsole, logging.FormatJSON, c.Logging.Format)
	}
	return nil
}

// Marshal returns the YAML form of c.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes c to ConfigPath, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
