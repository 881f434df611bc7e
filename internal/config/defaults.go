package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
// It mirrors defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:        400,
			Height:       600,
			GroundHeight: 100,
		},
		Avatar: FlappyAvatar{
			Width:          40,
			Height:         40,
			StartX:         0.25,
			StartY:         0.5,
			FrameInterval:  0.05,
			FramesPerCycle: 16,
			Skins:          3,
		},
		Physics: FlappyPhysics{
			Gravity:      500,
			FlapImpulse:  -200,
			StartSpeed:   100,
			Acceleration: 5,
		},
		Obstacles: FlappyObstacles{
			Count:           4,
			Width:           50,
			Gap:             120,
			Spacing:         200,
			MinTopHeight:    50,
			SingleChance:    4,
			SingleClearance: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
