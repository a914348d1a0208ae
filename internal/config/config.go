package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all exporter configuration. The subgraph endpoint table is
// compiled into the binary and deliberately not configurable here.
type Config struct {
	Networks []string      `yaml:"networks"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
}

// OutputConfig holds tag output settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration from a YAML file and applies environment variable
// overrides. A missing file is fine; defaults cover everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	cfg.setDefaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if len(data) > 0 {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	c.Networks = []string{"1"}
	c.Output = OutputConfig{
		Path:   "./data/tags.json",
		Format: "json",
	}
	c.Logging = LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TAG_NETWORKS"); v != "" {
		networks := []string{}
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				networks = append(networks, id)
			}
		}
		if len(networks) > 0 {
			c.Networks = networks
		}
	}

	if v := os.Getenv("TAG_OUTPUT_PATH"); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv("TAG_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = strings.ToLower(v)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

func (c *Config) validate() error {
	if len(c.Networks) == 0 {
		return fmt.Errorf("networks must list at least one network id")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if c.Output.Format != "json" && c.Output.Format != "jsonl" {
		return fmt.Errorf("output.format must be json or jsonl, got %q", c.Output.Format)
	}
	return nil
}
