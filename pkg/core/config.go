// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/eclbuild/pkg/descriptor"
)

// Config holds eclbuild configuration
type Config struct {
	EclipseDir     string                 `yaml:"eclipse_dir"`
	Platform       string                 `yaml:"platform"`
	EnvFile        string                 `yaml:"env_file"`
	NonInteractive bool                   `yaml:"non_interactive"`
	MaxAttempts    int                    `yaml:"max_attempts"`
	Debug          bool                   `yaml:"debug"`
	Package        descriptor.Package     `yaml:"package"`
	Extensions     []descriptor.Extension `yaml:"extensions"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		EclipseDir:     "", // ECLIPSEDIR or prompt
		Platform:       "", // Auto-detect
		NonInteractive: false,
		MaxAttempts:    0, // Prompt until a valid path is given
		Package:        descriptor.DefaultPackage(),
		Extensions:     []descriptor.Extension{descriptor.DefaultExtension()},
	}
}

// DefaultConfigPath returns $HOME/.config/eclbuild/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "eclbuild", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks the settings a resolution depends on
func (c *Config) Validate() error {
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts must not be negative, got %d", c.MaxAttempts)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("no extensions configured")
	}
	for i, ext := range c.Extensions {
		if ext.Name == "" {
			return fmt.Errorf("extension %d: missing name", i)
		}
		if len(ext.Sources) == 0 {
			return fmt.Errorf("extension %s: no sources", ext.Name)
		}
	}
	return nil
}
