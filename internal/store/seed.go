package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Patients []Patient `yaml:"patients"`
}

// Seed parses the embedded bootstrap roster.
func Seed() ([]Patient, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse embedded seed: %w", err)
	}
	return f.Patients, nil
}

// NewSeeded is the usual entry point: a store preloaded with the
// embedded roster.
func NewSeeded() (*Store, error) {
	patients, err := Seed()
	if err != nil {
		return nil, err
	}
	return New(patients)
}
