// Package config loads optional defaults from a .logstruct.yaml file in
// the working directory. Flags always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".logstruct.yaml"

// Config holds the user-tunable defaults. Threshold fields are pointers
// so an absent key can be told apart from an explicit zero.
type Config struct {
	TemporalThreshold    *float64 `yaml:"temporal_threshold"`
	ExistentialThreshold *float64 `yaml:"existential_threshold"`
	Format               string   `yaml:"format"`
}

// Load reads the config file from dir. A missing file is not an error
// and yields an empty config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TemporalThreshold != nil && !inRange(*c.TemporalThreshold) {
		return fmt.Errorf("temporal_threshold must be between 0.0 and 1.0, got %v", *c.TemporalThreshold)
	}
	if c.ExistentialThreshold != nil && !inRange(*c.ExistentialThreshold) {
		return fmt.Errorf("existential_threshold must be between 0.0 and 1.0, got %v", *c.ExistentialThreshold)
	}
	switch c.Format {
	case "", "terminal", "json":
	default:
		return fmt.Errorf("format must be terminal or json, got %q", c.Format)
	}
	return nil
}

func inRange(v float64) bool {
	return v >= 0.0 && v <= 1.0
}
