package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"airbnb-insights/models"
)

// criteriaFile is the on-disk shape of a criteria preset.
type criteriaFile struct {
	Filters models.Criteria `yaml:"filters"`
}

// LoadCriteria reads a YAML preset of filter bounds. Keys absent from the
// file stay nil and impose no constraint.
func LoadCriteria(path string) (*models.Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read criteria file: %w", err)
	}

	var doc criteriaFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse criteria file: %w", err)
	}

	return &doc.Filters, nil
}
