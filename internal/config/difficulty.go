package config

import (
	"fmt"
	"strings"
)

// presetScale holds the multipliers a preset applies to the scroll curve.
type presetScale struct {
	startSpeed   float64
	acceleration float64
}

var presets = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {startSpeed: 0.8, acceleration: 0.5},
	DifficultyNormal: {startSpeed: 1.0, acceleration: 1.0},
	DifficultyHard:   {startSpeed: 1.3, acceleration: 2.0},
}

// ParsePreset converts a flag value into a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyFlappyPreset scales the start speed and acceleration for a preset.
// Acceleration also scales flap strength, so harder presets flap harder too.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) error {
	scale, ok := presets[preset]
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	cfg.Physics.StartSpeed *= scale.startSpeed
	cfg.Physics.Acceleration *= scale.acceleration
	return nil
}
