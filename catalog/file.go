// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/pollserver/models"
)

type seedFile struct {
	Polls []models.Poll `yaml:"polls"`
}

// LoadFile reads a YAML (or JSON) seed file of the form
//
//	polls:
//	  - id: 1
//	    question: What is your favorite color?
func LoadFile(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read polls file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse polls file %s: %w", path, err)
	}

	c, err := New(seed.Polls...)
	if err != nil {
		return nil, fmt.Errorf("invalid polls file %s: %w", path, err)
	}
	return c, nil
}
