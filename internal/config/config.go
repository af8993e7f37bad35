// Package config provides YAML-based configuration loading and the
// score-driven difficulty ramp for the runner.
package config

import (
	"errors"
	"fmt"
)

// FixedPoint is the scale of the fixed-point physics values: a configured
// launch velocity of 850 means 8.5 world units per tick.
const FixedPoint = 100

// DinoConfig contains all configuration for the runner.
type DinoConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Characters CharactersConfig `yaml:"characters"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Cloud      CloudConfig      `yaml:"cloud"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig describes the visible world in world units (pixels of the
// reference 1100x600 playfield).
type WorldConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"` // Y of the track line
	SpawnX  int `yaml:"spawn_x"`  // Obstacles enter here; 0 means Width
}

// PlayerConfig places the character and sets its animation cadence.
type PlayerConfig struct {
	X          int `yaml:"x"`
	RunY       int `yaml:"run_y"`       // Top of the box while running
	DuckY      int `yaml:"duck_y"`      // Top of the box while ducking
	FrameTicks int `yaml:"frame_ticks"` // Ticks per animation frame
	FrameCount int `yaml:"frame_count"` // Frames per animation cycle
}

// PhysicsConfig holds the fixed-point jump parameters.
type PhysicsConfig struct {
	LaunchVelocity int `yaml:"launch_velocity"` // Upward velocity at jump start
	Gravity        int `yaml:"gravity"`         // Velocity lost per tick
	Scale          int `yaml:"scale"`           // Position change = velocity * scale
}

// Size is a sprite footprint in world units.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// PoseSizes gives the footprint of each locomotion pose.
type PoseSizes struct {
	Run  Size `yaml:"run"`
	Duck Size `yaml:"duck"`
	Jump Size `yaml:"jump"`
}

// CharactersConfig holds the pose sizes of every selectable character.
type CharactersConfig struct {
	Dino        PoseSizes `yaml:"dino"`
	Cactus      PoseSizes `yaml:"cactus"`
	Pterodactyl PoseSizes `yaml:"pterodactyl"`
}

// ObstacleKindConfig describes one obstacle archetype.
type ObstacleKindConfig struct {
	Y        int    `yaml:"y"`        // Fixed top of the box
	Variants []Size `yaml:"variants"` // Visual variants, picked uniformly
}

// ObstaclesConfig describes the three obstacle archetypes.
type ObstaclesConfig struct {
	Small      ObstacleKindConfig `yaml:"small"`
	Large      ObstacleKindConfig `yaml:"large"`
	Flying     ObstacleKindConfig `yaml:"flying"`
	FrameTicks int                `yaml:"frame_ticks"` // Flyer wing cadence
}

// CloudConfig controls the cosmetic background cloud.
type CloudConfig struct {
	Width          int `yaml:"width"`
	MinY           int `yaml:"min_y"`
	MaxY           int `yaml:"max_y"`
	FirstOffsetMin int `yaml:"first_offset_min"` // Initial distance past the right edge
	FirstOffsetMax int `yaml:"first_offset_max"`
	RespawnMin     int `yaml:"respawn_min"` // Distance past the right edge after leaving
	RespawnMax     int `yaml:"respawn_max"`
}

// DifficultyConfig defines the scroll speed progression.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`
	BaseSpeed  int  `yaml:"base_speed"`  // World units per tick at score 0
	StepEvery  int  `yaml:"step_every"`  // Score interval between speed steps
	StepAmount int  `yaml:"step_amount"` // Speed added per step
}

// SpawnAt returns the x where new obstacles enter the world.
func (w WorldConfig) SpawnAt() int {
	if w.SpawnX > 0 {
		return w.SpawnX
	}
	return w.Width
}

var errInvalid = errors.New("invalid value")

// Validate checks that the configuration describes a playable world.
func (c DinoConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"world.width", c.World.Width > 0},
		{"world.height", c.World.Height > 0},
		{"player.frame_ticks", c.Player.FrameTicks > 0},
		{"player.frame_count", c.Player.FrameCount > 0},
		{"physics.launch_velocity", c.Physics.LaunchVelocity > 0},
		{"physics.gravity", c.Physics.Gravity > 0},
		{"physics.scale", c.Physics.Scale > 0},
		{"obstacles.frame_ticks", c.Obstacles.FrameTicks > 0},
		{"obstacles.small.variants", len(c.Obstacles.Small.Variants) > 0},
		{"obstacles.large.variants", len(c.Obstacles.Large.Variants) > 0},
		{"obstacles.flying.variants", len(c.Obstacles.Flying.Variants) > 0},
		{"difficulty.base_speed", c.Difficulty.BaseSpeed > 0},
		{"difficulty.step_every", c.Difficulty.StepEvery > 0},
		{"difficulty.step_amount", c.Difficulty.StepAmount >= 0},
		{"cloud.respawn", c.Cloud.RespawnMax >= c.Cloud.RespawnMin},
		{"cloud.first_offset", c.Cloud.FirstOffsetMax >= c.Cloud.FirstOffsetMin},
		{"cloud.y", c.Cloud.MaxY >= c.Cloud.MinY},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s: %w", chk.name, errInvalid)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value onto a preset. Unknown values report false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// BaseSpeedForPreset returns the starting scroll speed of a preset, or 0 when
// the preset does not change it.
func BaseSpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 15
	case DifficultyNormal:
		return 20
	case DifficultyHard:
		return 26
	default:
		return 0
	}
}
