package stress

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Containers a workload can target.
const (
	ContainerQueue = "queue"
	ContainerStack = "stack"
)

// Config describes a stress workload.
type Config struct {
	// Container under test: "queue" or "stack".
	Container string `yaml:"container"`
	// Number of pushing goroutines.
	Pushers int `yaml:"pushers"`
	// Number of popping goroutines.
	Poppers int `yaml:"poppers"`
	// Values pushed by each pusher.
	Ops int `yaml:"ops"`
}

func DefaultConfig() *Config {
	return &Config{
		Container: ContainerQueue,
		Pushers:   4,
		Poppers:   4,
		Ops:       100000,
	}
}

// Parse validates the configuration.
func (c *Config) Parse() error {
	if c.Container != ContainerQueue && c.Container != ContainerStack {
		return fmt.Errorf("unknown container %q", c.Container)
	}
	if c.Pushers < 1 {
		return fmt.Errorf("pushers must be at least 1, got %d", c.Pushers)
	}
	if c.Poppers < 1 {
		return fmt.Errorf("poppers must be at least 1, got %d", c.Poppers)
	}
	if c.Ops < 1 {
		return fmt.Errorf("ops must be at least 1, got %d", c.Ops)
	}
	return nil
}

// ReadConfig loads a workload config from a YAML file, applying it on
// top of the defaults.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}
