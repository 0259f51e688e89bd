package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ClickerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultClickerConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultClickerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultClickerConfig()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".clicker", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("start:\n  idle_increase: 0.5\n")
	if err := os.WriteFile(filepath.Join(dir, "clicker.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Start.IdleIncrease != 0.5 {
		t.Errorf("IdleIncrease = %g, expected 0.5", cfg.Start.IdleIncrease)
	}
	// Untouched sections keep their defaults
	if cfg.Start.ActiveIncrease != 1.0 {
		t.Errorf("ActiveIncrease = %g, expected 1.0", cfg.Start.ActiveIncrease)
	}
	if !reflect.DeepEqual(cfg.Keys, DefaultClickerConfig().Keys) {
		t.Errorf("Keys = %+v, expected defaults", cfg.Keys)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("keys:\n  click_down: [\"j\"]\n  click_up: [\"k\"]\nupgrades:\n  max_level: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if !reflect.DeepEqual(cfg.Keys.ClickDown, []string{"j"}) {
		t.Errorf("ClickDown = %v, expected [j]", cfg.Keys.ClickDown)
	}
	if !reflect.DeepEqual(cfg.Keys.ClickUp, []string{"k"}) {
		t.Errorf("ClickUp = %v, expected [k]", cfg.Keys.ClickUp)
	}
	if cfg.Upgrades.MaxLevel != 5 {
		t.Errorf("MaxLevel = %g, expected 5", cfg.Upgrades.MaxLevel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("keys: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("start:\n  active_increase: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid config = %v, expected ErrInvalid", err)
	}

	nonFinite := filepath.Join(dir, "nonfinite.yaml")
	data := "start:\n  active_increase: .nan\n  idle_increase: .inf\nupgrades:\n  max_level: .inf\n"
	if err := os.WriteFile(nonFinite, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(nonFinite); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of non-finite config = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ClickerConfig)
		valid  bool
	}{
		{"defaults", func(*ClickerConfig) {}, true},
		{"active below one", func(c *ClickerConfig) { c.Start.ActiveIncrease = 0.9 }, false},
		{"negative idle", func(c *ClickerConfig) { c.Start.IdleIncrease = -1 }, false},
		{"zero max level", func(c *ClickerConfig) { c.Upgrades.MaxLevel = 0 }, false},
		{"unbound click release", func(c *ClickerConfig) { c.Keys.ClickUp = nil }, false},
		{"shared click key", func(c *ClickerConfig) { c.Keys.ClickUp = []string{"f"} }, false},
		{"exit shadows select", func(c *ClickerConfig) { c.Keys.Exit = append(c.Keys.Exit, "enter") }, false},
		{"nan active", func(c *ClickerConfig) { c.Start.ActiveIncrease = math.NaN() }, false},
		{"infinite active", func(c *ClickerConfig) { c.Start.ActiveIncrease = math.Inf(1) }, false},
		{"nan idle", func(c *ClickerConfig) { c.Start.IdleIncrease = math.NaN() }, false},
		{"infinite idle", func(c *ClickerConfig) { c.Start.IdleIncrease = math.Inf(1) }, false},
		{"nan max level", func(c *ClickerConfig) { c.Upgrades.MaxLevel = math.NaN() }, false},
		{"infinite max level", func(c *ClickerConfig) { c.Upgrades.MaxLevel = math.Inf(1) }, false},
		{"extra bindings", func(c *ClickerConfig) { c.Keys.Up = append(c.Keys.Up, "k") }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultClickerConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
