package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	finite := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	if c.World.GroundHeight < 0 {
		errs = append(errs, fmt.Errorf("world.ground_height must not be negative, got %d", c.World.GroundHeight))
	}

	positive("avatar.width", c.Avatar.Width)
	positive("avatar.height", c.Avatar.Height)
	positive("avatar.frames_per_cycle", c.Avatar.FramesPerCycle)
	positive("avatar.skins", c.Avatar.Skins)
	if c.Avatar.StartX < 0 || c.Avatar.StartX > 1 {
		errs = append(errs, fmt.Errorf("avatar.start_x must be in [0, 1], got %v", c.Avatar.StartX))
	}
	if c.Avatar.StartY < 0 || c.Avatar.StartY > 1 {
		errs = append(errs, fmt.Errorf("avatar.start_y must be in [0, 1], got %v", c.Avatar.StartY))
	}
	if !(c.Avatar.FrameInterval > 0) {
		errs = append(errs, fmt.Errorf("avatar.frame_interval must be positive, got %v", c.Avatar.FrameInterval))
	}

	finite("physics.gravity", c.Physics.Gravity)
	finite("physics.flap_impulse", c.Physics.FlapImpulse)
	finite("physics.start_speed", c.Physics.StartSpeed)
	finite("physics.acceleration", c.Physics.Acceleration)
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must not be negative, got %v", c.Physics.Gravity))
	}
	if c.Physics.FlapImpulse > 0 {
		errs = append(errs, fmt.Errorf("physics.flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse))
	}
	if c.Physics.StartSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.start_speed must not be negative, got %v", c.Physics.StartSpeed))
	}
	if c.Physics.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("physics.acceleration must not be negative, got %v", c.Physics.Acceleration))
	}

	positive("obstacles.count", c.Obstacles.Count)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.spacing", c.Obstacles.Spacing)
	positive("obstacles.single_chance", c.Obstacles.SingleChance)
	if c.Obstacles.Gap < 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap must not be negative, got %d", c.Obstacles.Gap))
	}
	if c.Obstacles.MinTopHeight < 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_top_height must not be negative, got %d", c.Obstacles.MinTopHeight))
	}

	floorY := c.FloorY()
	if c.Obstacles.SingleClearance <= c.Avatar.Height {
		errs = append(errs, fmt.Errorf("obstacles.single_clearance %d must exceed avatar.height %d",
			c.Obstacles.SingleClearance, c.Avatar.Height))
	}
	if c.Obstacles.SingleClearance > floorY {
		errs = append(errs, fmt.Errorf("obstacles.single_clearance %d exceeds playfield height %d",
			c.Obstacles.SingleClearance, floorY))
	}
	if floorY <= c.Avatar.Height {
		errs = append(errs, fmt.Errorf("playfield height %d leaves no room for a %d tall avatar", floorY, c.Avatar.Height))
	}
	if c.Obstacles.MinTopHeight+c.Obstacles.Gap > floorY {
		errs = append(errs, fmt.Errorf("obstacles.gap %d plus min_top_height %d exceed playfield height %d",
			c.Obstacles.Gap, c.Obstacles.MinTopHeight, floorY))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
}
