package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk shape of a tuning file. Missing sections keep
// their defaults.
type Overrides struct {
	Physics *PhysicsConfig `yaml:"physics"`
	Body    *BodyConfig    `yaml:"body"`
	Player  *PlayerConfig  `yaml:"player"`
	Combat  *CombatConfig  `yaml:"combat"`
}

// LoadOverrides reads a YAML tuning file and applies it on top of the
// current configuration. An empty path is a no-op.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides decodes YAML into the global configuration. Fields absent
// from the document keep their current values.
func ApplyOverrides(data []byte) error {
	o := Overrides{
		Physics: &Physics,
		Body:    &Body,
		Player:  &Player,
		Combat:  &Combat,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
