/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:build linux

// Package monitor samples kernel and PTP hardware clocks and exposes their
// discipline state as Prometheus metrics.
package monitor

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Supported clock types
const (
	ClockTypeSystem = "system"
	ClockTypeTAI    = "tai"
	ClockTypePHC    = "phc"
)

// ClockConfig describes one clock to sample
type ClockConfig struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Device string `yaml:"device"` // PHC device path, only for type "phc"
}

// Validate ClockConfig is sane
func (c *ClockConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("clock name must be set")
	}
	switch c.Type {
	case ClockTypeSystem, ClockTypeTAI:
		if c.Device != "" {
			return fmt.Errorf("clock %q: device is only valid for type %q", c.Name, ClockTypePHC)
		}
	case ClockTypePHC:
		if c.Device == "" {
			return fmt.Errorf("clock %q: device must be set for type %q", c.Name, ClockTypePHC)
		}
	default:
		return fmt.Errorf("clock %q: type must be either %q, %q or %q", c.Name, ClockTypeSystem, ClockTypeTAI, ClockTypePHC)
	}
	return nil
}

// Config describes the exporter configuration
type Config struct {
	ListenAddr string        `yaml:"listen_addr"`
	Interval   time.Duration `yaml:"interval"`
	Clocks     []ClockConfig `yaml:"clocks"`
}

// Validate Config is sane
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must be set")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if len(c.Clocks) == 0 {
		return fmt.Errorf("at least one clock must be configured")
	}
	seen := map[string]bool{}
	for i := range c.Clocks {
		if err := c.Clocks[i].Validate(); err != nil {
			return err
		}
		if seen[c.Clocks[i].Name] {
			return fmt.Errorf("clock %q: duplicate name", c.Clocks[i].Name)
		}
		seen[c.Clocks[i].Name] = true
	}
	return nil
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":8886",
		Interval:   10 * time.Second,
		Clocks: []ClockConfig{
			{Name: "system", Type: ClockTypeSystem},
		},
	}
}

// ReadConfig reads the exporter config from a YAML file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(cData, c)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
