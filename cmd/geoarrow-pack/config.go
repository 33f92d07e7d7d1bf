// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of a pack job file.
type Config struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes one GeoJSON input packed to one Arrow IPC output.
type Job struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Compression string `yaml:"compression,omitempty"`
}

// loadConfig reads and parses a YAML job file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
