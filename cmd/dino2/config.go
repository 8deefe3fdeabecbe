package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config bundles the settings shared by all commands. Every field can also
// be given as a command line flag, which takes precedence.
type Config struct {
	// Dataset is the DINO dataset directory.
	Dataset string `yaml:"dataset" validate:"required"`
	// Versions restricts parsing to the given version ids.
	Versions []int `yaml:"versions"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

func loadConfig(path string) (*Config, error) {
	config := &Config{LogLevel: "warn"}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	return config, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
