package laws

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config controls a Suite run.
type Config struct {
	// Iterations is the number of samples each law is checked against.
	Iterations int `yaml:"iterations"`
	// Seed is the first sample seed; iteration i uses Seed+i.
	Seed int `yaml:"seed"`
	// Laws restricts the run to the named laws. Empty means all of them.
	Laws []string `yaml:"laws"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Iterations: 100,
		Seed:       42,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	known := Names()
	for _, name := range c.Laws {
		if !slices.Contains(known, name) {
			errs = append(errs, fmt.Errorf("unknown law %q", name))
		}
	}
	return errors.Join(errs...)
}

// selects reports whether the named law is part of the run.
func (c Config) selects(name string) bool {
	return len(c.Laws) == 0 || slices.Contains(c.Laws, name)
}
