package config

import (
	_ "embed"
)

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

// DefaultClickerConfig returns the default clicker configuration.
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{
		Keys: KeysConfig{
			Up:        []string{"up"},
			Down:      []string{"down"},
			Deselect:  []string{"esc"},
			Exit:      []string{"q", "ctrl+c"},
			Select:    []string{"enter"},
			ClickDown: []string{"f"},
			ClickUp:   []string{"d"},
		},
		Start: StartConfig{
			ActiveIncrease: 1.0,
			IdleIncrease:   0.0,
		},
		Upgrades: UpgradesConfig{
			MaxLevel: 10.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultClickerYAML
}
