package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in runner configuration. It mirrors
// defaults/dino.yaml and is used when the embedded file cannot be parsed.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: WorldConfig{
			Width:   1100,
			Height:  600,
			GroundY: 380,
			SpawnX:  1100,
		},
		Player: PlayerConfig{
			X:          80,
			RunY:       310,
			DuckY:      340,
			FrameTicks: 5,
			FrameCount: 2,
		},
		Physics: PhysicsConfig{
			LaunchVelocity: 850, // 8.5
			Gravity:        80,  // 0.8
			Scale:          4,
		},
		Characters: CharactersConfig{
			Dino: PoseSizes{
				Run:  Size{W: 88, H: 94},
				Duck: Size{W: 118, H: 60},
				Jump: Size{W: 88, H: 94},
			},
			Cactus: PoseSizes{
				Run:  Size{W: 40, H: 71},
				Duck: Size{W: 40, H: 71},
				Jump: Size{W: 40, H: 71},
			},
			Pterodactyl: PoseSizes{
				Run:  Size{W: 97, H: 80},
				Duck: Size{W: 97, H: 80},
				Jump: Size{W: 97, H: 80},
			},
		},
		Obstacles: ObstaclesConfig{
			FrameTicks: 5,
			Small: ObstacleKindConfig{
				Y:        325,
				Variants: []Size{{W: 40, H: 71}, {W: 68, H: 71}, {W: 105, H: 71}},
			},
			Large: ObstacleKindConfig{
				Y:        300,
				Variants: []Size{{W: 48, H: 95}, {W: 99, H: 95}, {W: 150, H: 95}},
			},
			Flying: ObstacleKindConfig{
				Y:        250,
				Variants: []Size{{W: 97, H: 80}, {W: 97, H: 80}, {W: 97, H: 80}},
			},
		},
		Cloud: CloudConfig{
			Width:          84,
			MinY:           50,
			MaxY:           100,
			FirstOffsetMin: 800,
			FirstOffsetMax: 1000,
			RespawnMin:     2500,
			RespawnMax:     3000,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			BaseSpeed:  20,
			StepEvery:  100,
			StepAmount: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
