// Package config provides YAML-based configuration loading for the clicker.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// ClickerConfig contains all configuration for a clicker session.
type ClickerConfig struct {
	Keys     KeysConfig     `yaml:"keys"`
	Start    StartConfig    `yaml:"start"`
	Upgrades UpgradesConfig `yaml:"upgrades"`
}

// KeysConfig maps semantic actions to key names as reported by Bubble Tea
// ("up", "esc", "enter", "q", "ctrl+c", ...).
type KeysConfig struct {
	Up        []string `yaml:"up"`
	Down      []string `yaml:"down"`
	Deselect  []string `yaml:"deselect"`
	Exit      []string `yaml:"exit"`
	Select    []string `yaml:"select"`
	ClickDown []string `yaml:"click_down"` // virtual press of the click button
	ClickUp   []string `yaml:"click_up"`   // virtual release of the click button
}

// StartConfig defines the increases a fresh game starts with.
type StartConfig struct {
	ActiveIncrease float64 `yaml:"active_increase"`
	IdleIncrease   float64 `yaml:"idle_increase"`
}

// UpgradesConfig defines upgrade generation parameters.
type UpgradesConfig struct {
	MaxLevel float64 `yaml:"max_level"` // levels are drawn from [0, max_level)
}

// Validate checks the configuration for values the game cannot run with.
func (c ClickerConfig) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"start.active_increase", c.Start.ActiveIncrease},
		{"start.idle_increase", c.Start.IdleIncrease},
		{"upgrades.max_level", c.Upgrades.MaxLevel},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalid, f.name, f.v)
		}
	}
	if c.Start.ActiveIncrease < 1 {
		return fmt.Errorf("%w: start.active_increase must be >= 1, got %g", ErrInvalid, c.Start.ActiveIncrease)
	}
	if c.Start.IdleIncrease < 0 {
		return fmt.Errorf("%w: start.idle_increase must be >= 0, got %g", ErrInvalid, c.Start.IdleIncrease)
	}
	if !(c.Upgrades.MaxLevel > 0) {
		return fmt.Errorf("%w: upgrades.max_level must be > 0, got %g", ErrInvalid, c.Upgrades.MaxLevel)
	}
	if len(c.Keys.ClickDown) == 0 || len(c.Keys.ClickUp) == 0 {
		return fmt.Errorf("%w: keys.click_down and keys.click_up must both be bound", ErrInvalid)
	}

	seen := make(map[string]string)
	for _, b := range c.Keys.bindings() {
		for _, k := range b.keys {
			if prev, dup := seen[k]; dup {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.name)
			}
			seen[k] = b.name
		}
	}
	return nil
}

type namedKeys struct {
	name string
	keys []string
}

func (k KeysConfig) bindings() []namedKeys {
	return []namedKeys{
		{"up", k.Up},
		{"down", k.Down},
		{"deselect", k.Deselect},
		{"exit", k.Exit},
		{"select", k.Select},
		{"click_down", k.ClickDown},
		{"click_up", k.ClickUp},
	}
}
