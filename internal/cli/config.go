package cli

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Everything here can be overridden by
// flags; the conditioning core itself takes plain arguments and never
// reads configuration.
type Config struct {
	SignalType string `yaml:"signal_type" default:"ecg" validate:"oneof=ecg eeg"`
	SkipRows   int    `yaml:"skip_rows" default:"2" validate:"gte=0"`
	Output     string `yaml:"output" default:"filtered_output.csv"`
	LogLevel   string `yaml:"log_level" default:"info" validate:"oneof=trace debug info warn error"`

	EDF struct {
		Label string `yaml:"label" default:"Conditioned signal"`
	} `yaml:"edf"`
}

// LoadConfig reads a YAML config file, fills defaults and validates
// the result. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config read: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config parse: %w", err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return cfg, nil
}
