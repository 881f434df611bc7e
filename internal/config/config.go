// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

// FlappyConfig contains every tunable of the Flappy simulation. Lengths are
// world units (the default playfield is 400x600), times are seconds and
// speeds are world units per second.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Avatar    FlappyAvatar    `yaml:"avatar"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyWorld defines the playfield.
type FlappyWorld struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundHeight int `yaml:"ground_height"` // Band below the floor line
}

// FlappyAvatar defines the player's box, spawn point and animation.
type FlappyAvatar struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	StartX         float64 `yaml:"start_x"` // Fraction of world width
	StartY         float64 `yaml:"start_y"` // Fraction of world height
	FrameInterval  float64 `yaml:"frame_interval"`
	FramesPerCycle int     `yaml:"frames_per_cycle"`
	Skins          int     `yaml:"skins"`
}

// FlappyPhysics defines gravity, flap strength and scroll progression.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`      // Positive = downward
	FlapImpulse  float64 `yaml:"flap_impulse"` // Negative = upward
	StartSpeed   float64 `yaml:"start_speed"`
	Acceleration float64 `yaml:"acceleration"` // Scroll speed gained per second
}

// FlappyObstacles defines pipe geometry and generation.
type FlappyObstacles struct {
	Count           int `yaml:"count"`
	Width           int `yaml:"width"`
	Gap             int `yaml:"gap"`
	Spacing         int `yaml:"spacing"`
	MinTopHeight    int `yaml:"min_top_height"`
	SingleChance    int `yaml:"single_chance"`    // One in N recycled pipes is ceiling-only
	SingleClearance int `yaml:"single_clearance"` // Space left under a ceiling-only pipe
}

// FloorY returns the y coordinate of the floor line.
func (c FlappyConfig) FloorY() int {
	return c.World.Height - c.World.GroundHeight
}

// MaxTopHeight returns the tallest top segment a paired pipe may have.
// It never drops below MinTopHeight, so the random range cannot invert.
func (c FlappyConfig) MaxTopHeight() int {
	maxTop := c.FloorY() - c.Obstacles.Gap - c.Obstacles.MinTopHeight
	if maxTop < c.Obstacles.MinTopHeight {
		return c.Obstacles.MinTopHeight
	}
	return maxTop
}

// SingleHeight returns the height of a ceiling-only pipe.
func (c FlappyConfig) SingleHeight() int {
	h := c.FloorY() - c.Obstacles.SingleClearance
	if h < 0 {
		return 0
	}
	return h
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
