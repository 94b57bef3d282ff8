package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CompilerConfig represents the compiler session configuration
type CompilerConfig struct {
	// Name is the generated component constructor name
	Name string `yaml:"name" json:"name"`
	// Dev enables development-mode assertions in generated code
	Dev bool `yaml:"dev" json:"dev"`
	// Store enables store-subscribed ($-prefixed) binding targets
	Store bool `yaml:"store" json:"store"`
}

// NewCompilerConfig creates a new CompilerConfig with optional parameters
func NewCompilerConfig(opts ...CompilerConfigOption) *CompilerConfig {
	config := &CompilerConfig{
		Name: "Component",
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// CompilerConfigOption is a function that modifies CompilerConfig
type CompilerConfigOption func(*CompilerConfig)

// WithName sets the generated component constructor name
func WithName(name string) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Name = name
	}
}

// WithDev enables development-mode assertions
func WithDev(dev bool) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Dev = dev
	}
}

// WithStore enables store-subscribed binding targets
func WithStore(store bool) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.Store = store
	}
}

// LoadFile loads configuration from a file (YAML or JSON based on extension)
// and merges it over the current values.
func (c *CompilerConfig) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded CompilerConfig
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	c.merge(&loaded)
	return nil
}

func (c *CompilerConfig) merge(loaded *CompilerConfig) {
	if loaded.Name != "" {
		c.Name = loaded.Name
	}
	c.Dev = c.Dev || loaded.Dev
	c.Store = c.Store || loaded.Store
}
