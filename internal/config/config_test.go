package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseDino(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDinoConfig()) {
		t.Errorf("embedded defaults differ from DefaultDinoConfig():\n%+v\n%+v", cfg, DefaultDinoConfig())
	}
}

func TestLoadDinoCustomPathOverridesSomeFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dino.yaml")
	data := []byte("difficulty:\n  base_speed: 30\nphysics:\n  gravity: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDino(path)
	if err != nil {
		t.Fatalf("LoadDino() failed: %v", err)
	}
	if cfg.Difficulty.BaseSpeed != 30 {
		t.Errorf("BaseSpeed = %d, expected 30", cfg.Difficulty.BaseSpeed)
	}
	if cfg.Physics.Gravity != 100 {
		t.Errorf("Gravity = %d, expected 100", cfg.Physics.Gravity)
	}
	// Untouched fields keep their defaults
	if cfg.Physics.LaunchVelocity != 850 || cfg.Difficulty.StepEvery != 100 {
		t.Errorf("defaults lost: %+v %+v", cfg.Physics, cfg.Difficulty)
	}
}

func TestLoadDinoErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDino(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDino(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDino(invalid)
	if !errors.Is(err, errInvalid) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSpawnAt(t *testing.T) {
	w := WorldConfig{Width: 1100}
	if w.SpawnAt() != 1100 {
		t.Errorf("SpawnAt() = %d, expected width", w.SpawnAt())
	}
	w.SpawnX = 1200
	if w.SpawnAt() != 1200 {
		t.Errorf("SpawnAt() = %d, expected 1200", w.SpawnAt())
	}
}

func TestApplyDinoPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		base    int
	}{
		{DifficultyEasy, true, 15},
		{DifficultyNormal, true, 20},
		{DifficultyHard, true, 26},
		{DifficultyFixed, false, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDinoConfig()
			ApplyDinoPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.BaseSpeed != tc.base {
				t.Errorf("got enabled=%v base=%d", cfg.Difficulty.Enabled, cfg.Difficulty.BaseSpeed)
			}
		})
	}

	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
}
