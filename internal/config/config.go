package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Parker1920/Master-Haven-sub000/internal/galaxy"
)

// DefaultPath is the project config filename looked up in the working
// directory. The file is optional; defaults apply when it is absent.
const DefaultPath = "haven.yaml"

type Config struct {
	Version int            `yaml:"version"`
	Galaxy  GalaxySettings `yaml:"galaxy"`
	Output  OutputSettings `yaml:"output"`
}

// GalaxySettings overrides the classification rules. Pointers distinguish
// "unset" (keep the default, enabled) from an explicit false.
type GalaxySettings struct {
	CoreVoidEnabled *bool `yaml:"core_void_enabled"`
	ZeroPhantomRule *bool `yaml:"zero_phantom_rule"`
}

type OutputSettings struct {
	Format string `yaml:"format"`
}

// Default is the configuration used when no haven.yaml exists.
func Default() *Config {
	return &Config{
		Version: 1,
		Output:  OutputSettings{Format: "text"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the config at path, falling back to DefaultPath
// when path is empty. A missing file at the default path is not an error.
func LoadOrDefault(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	switch cfg.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Output.Format)
	}
	return nil
}

// GalaxyConfig resolves the settings into the geometry configuration,
// applying defaults for unset toggles.
func (c *Config) GalaxyConfig() galaxy.Config {
	gc := galaxy.DefaultConfig()
	if c.Galaxy.CoreVoidEnabled != nil {
		gc.CoreVoidEnabled = *c.Galaxy.CoreVoidEnabled
	}
	if c.Galaxy.ZeroPhantomRule != nil {
		gc.ZeroPhantomRule = *c.Galaxy.ZeroPhantomRule
	}
	return gc
}

// JSONOutput reports whether JSON is the configured default output.
func (c *Config) JSONOutput() bool {
	return c.Output.Format == "json"
}
