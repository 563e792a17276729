package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema maps dataset columns onto the pipeline.
type Schema struct {
	Features []string `yaml:"features"`
	Age      struct {
		Column string  `yaml:"column"`
		Min    float64 `yaml:"min"`
		Max    float64 `yaml:"max"`
	} `yaml:"age"`
	Gender struct {
		Column string `yaml:"column"`
		Target string `yaml:"target"`
	} `yaml:"gender"`
	Cohort        string   `yaml:"cohort"`
	Friends       string   `yaml:"friends"`
	Aux           []string `yaml:"aux"`
	MissingTokens []string `yaml:"missing_tokens"`
	K             int      `yaml:"k"`
	Seed          int64    `yaml:"seed"`
}

// LoadSchema reads a YAML schema file.
func LoadSchema(path string) (*Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if len(s.Features) == 0 {
		return nil, fmt.Errorf("schema: features list is empty")
	}
	return &s, nil
}

// NumericColumns lists every column the loader should parse as numeric.
func (s *Schema) NumericColumns() []string {
	cols := append([]string(nil), s.Features...)
	if s.Age.Column != "" {
		cols = append(cols, s.Age.Column)
	}
	if s.Friends != "" {
		cols = append(cols, s.Friends)
	}
	cols = append(cols, s.Aux...)
	return cols
}
