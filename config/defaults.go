package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jpsrealtor/cma/internal/models"
)

// Defaults overrides the built-in comparable tolerances and investment
// assumptions. Unset keys keep the built-in values.
type Defaults struct {
	Tolerances  models.Tolerances          `yaml:"tolerances"`
	Assumptions models.AssumptionOverrides `yaml:"investment_assumptions"`
}

// LoadDefaults reads a Defaults YAML file. An empty path yields empty Defaults.
func LoadDefaults(path string) (*Defaults, error) {
	defaults := &Defaults{}
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}
	if err := yaml.Unmarshal(data, defaults); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file: %w", err)
	}
	return defaults, nil
}
