package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// fileConfig is the YAML config schema. Nested sections map naturally to the
// flag names; every field is optional and omitted fields keep their defaults.
//
//	maxPages: 0
//	step: 0.5
//	header:
//	  outlierGap: 2.0
//	  minCount: 2
//	  minFrac: 0.01
//	verbose: true
type fileConfig struct {
	MaxPages *int     `yaml:"maxPages"`
	Step     *float64 `yaml:"step"`

	Header struct {
		OutlierGap *float64 `yaml:"outlierGap"`
		MinCount   *int     `yaml:"minCount"`
		MinFrac    *float64 `yaml:"minFrac"`
	} `yaml:"header"`

	Verbose *bool `yaml:"verbose"`
}

// loadConfig reads and parses the YAML config at path.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// apply copies file values into the destination variables, skipping any flag
// the user set explicitly on the command line.
func (c *fileConfig) apply(setFlags map[string]bool, maxPages *int, step, outlierGap *float64, minHeaderCount *int, minHeaderFrac *float64, verbose *bool) {
	if c.MaxPages != nil && !setFlags["max-pages"] {
		*maxPages = *c.MaxPages
	}
	if c.Step != nil && !setFlags["step"] {
		*step = *c.Step
	}
	if c.Header.OutlierGap != nil && !setFlags["outlier-gap"] {
		*outlierGap = *c.Header.OutlierGap
	}
	if c.Header.MinCount != nil && !setFlags["min-header-count"] {
		*minHeaderCount = *c.Header.MinCount
	}
	if c.Header.MinFrac != nil && !setFlags["min-header-frac"] {
		*minHeaderFrac = *c.Header.MinFrac
	}
	if c.Verbose != nil && !setFlags["v"] {
		*verbose = *c.Verbose
	}
}
