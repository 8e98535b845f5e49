// This file is part of CompassCore project.
// Copyright (C) 2026.  CompassCore authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"CompassCore/locator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
poll-every = 15
fade-duration = "150ms"
hide-compass-arrow = true
crossing-algorithm = "segments"

[icon-regen-limiter]
every = "500ms"
n = 2
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.PollEvery != 15 || c.FadeDuration.Duration != 150*time.Millisecond {
		t.Errorf("decoded = %+v", c)
	}
	if c.TickRate != 60 || c.InsetOffset != 50 {
		t.Errorf("defaults lost: %+v", c)
	}

	lc := c.Locator()
	if lc.ShowArrow || !lc.ShowIcon || lc.Algorithm != locator.CrossingSegments {
		t.Errorf("locator config = %+v", lc)
	}
	l := c.IconRegenLimiter.Limiter()
	if l == nil || l.Burst() != 2 {
		t.Errorf("limiter = %v", l)
	}
}

func TestLoadConfig_missing(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if c != DefaultConfig() {
		t.Errorf("missing file gave %+v", c)
	}
}

func TestLoadConfig_unknownKeys(t *testing.T) {
	path := writeConfig(t, "max-players = 20\nmotd = \"hi\"\n")
	_, err := LoadConfig(path)
	var unknown errUnknownConfig
	if !errors.As(err, &unknown) || len(unknown) != 2 {
		t.Errorf("err = %v, want two unknown keys", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	tests := map[string]func(c *Config){
		"tick rate":      func(c *Config) { c.TickRate = 0 },
		"poll":           func(c *Config) { c.PollEvery = 0 },
		"registry":       func(c *Config) { c.RegistryEvery = 0 },
		"negative inset": func(c *Config) { c.InsetOffset = -1 },
		"opacity":        func(c *Config) { c.DimmedOpacity = 1.5 },
		"algorithm":      func(c *Config) { c.CrossingAlgorithm = "raycast" },
		"tile":           func(c *Config) { c.TileSize = 0 },
	}
	for name, change := range tests {
		c := DefaultConfig()
		change(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestConfig_ValidateViewport(t *testing.T) {
	c := DefaultConfig()
	if err := c.ValidateViewport(800, 600); err != nil {
		t.Error(err)
	}
	if err := c.ValidateViewport(100, 600); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v", err)
	}
	c.HideCompassArrow = true
	if err := c.ValidateViewport(90, 600); err != nil {
		t.Errorf("no-arrow offset: %v", err)
	}
}
