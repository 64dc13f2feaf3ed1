// Package config holds the tunable simulation settings and their yaml
// loader. Values are clamped here so the simulation core never has to
// re-validate them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kwheeler/ballpit/common"
)

// Config is the settings snapshot pushed into the simulation whenever the
// settings file or the overlay changes.
type Config struct {
	// GravityScale multiplies the 9.8 base gravity.
	GravityScale float64 `yaml:"gravity_scale"`
	// Restitution is the bounciness applied to every live ball.
	Restitution float64 `yaml:"restitution"`
	// WallsEnabled toggles side-wall collision. Disabled walls stay in
	// place so re-enabling is instant.
	WallsEnabled bool `yaml:"walls_enabled"`
	// HoldGrowSeconds is how long a press-and-hold takes to grow a ball
	// from minimum to maximum scale.
	HoldGrowSeconds float64 `yaml:"hold_grow_seconds"`
}

// Default returns the out-of-the-box settings.
func Default() Config {
	return Config{
		GravityScale:    1.0,
		Restitution:     0.8,
		WallsEnabled:    true,
		HoldGrowSeconds: 1.5,
	}
}

// Clamp returns a copy with every field forced into its sane range.
func (c Config) Clamp() Config {
	c.GravityScale = common.Clamp(c.GravityScale, 0, 10)
	c.Restitution = common.Clamp(c.Restitution, 0, 10)
	c.HoldGrowSeconds = common.Clamp(c.HoldGrowSeconds, 0.1, 10)
	return c
}

// Load reads a yaml settings file, filling missing fields from Default
// and clamping the result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg.Clamp(), nil
}
