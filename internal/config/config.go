package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DirName is the per-workspace directory holding config.yaml and logs/.
const DirName = ".bmicalc"

// FileName is the config file inside DirName.
const FileName = "config.yaml"

// Config holds all bmicalc configuration.
type Config struct {
	Name string `yaml:"name"`

	// Engine behaviour
	Engine EngineConfig `yaml:"engine"`

	// Form host
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig configures the BMI engine.
type EngineConfig struct {
	// StrictNumbers rejects fields that are present but not numbers instead
	// of letting them propagate as NaN.
	StrictNumbers bool `yaml:"strict_numbers"`
}

// UIConfig configures the terminal form.
type UIConfig struct {
	Theme           string `yaml:"theme"`             // auto, light, dark
	NumericKeysOnly bool   `yaml:"numeric_keys_only"` // drop typed runes that cannot be part of a number
}

// ValidThemes lists accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// ValidLogLevels lists accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "bmicalc",
		Engine: EngineConfig{
			StrictNumbers: true,
		},
		UI: UIConfig{
			Theme:           "auto",
			NumericKeysOnly: true,
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			Categories: map[string]bool{
				"boot":   true,
				"config": true,
				"ui":     true,
				"cli":    true,
			},
		},
	}
}

// Dir returns the directory where config is stored. A project-local
// .bmicalc directory is preferred when it exists, or when it is missing and
// the working directory is writable; otherwise ~/.bmicalc.
func Dir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, DirName)
		stat, err := os.Stat(localDir)
		if err == nil && stat.IsDir() {
			return localDir, nil
		}
		if os.IsNotExist(err) && writable(cwd) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName), nil
}

// writable reports whether a file can be created in dir.
func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".bmicalc-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// DefaultPath returns the full path to the config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// LogsDir returns the logs directory that sits next to the config file.
func LogsDir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "logs")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("BMICALC_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if v := os.Getenv("BMICALC_STRICT_NUMBERS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Engine.StrictNumbers = b
		}
	}
	if v := os.Getenv("BMICALC_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = b
		}
	}
	if level := os.Getenv("BMICALC_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui.theme: %q (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level: %q (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
