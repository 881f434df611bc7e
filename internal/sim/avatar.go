// Package sim is the frame-stepped Flappy simulation: avatar physics, the
// obstacle ring, collision detection and the session state machine.
// It has no rendering, input or timing of its own; callers pass elapsed
// seconds and input flags into Session.Step and draw from Snapshot.
package sim

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player's bird. Y grows downward; negative velocity moves up.
type Avatar struct {
	X, Y       float64
	Width      float64
	Height     float64
	Velocity   float64
	Frame      int     // Animation frame in [0, framesPerCycle)
	FrameTimer float64 // Seconds since the last frame advance

	floorY         float64
	gravity        float64
	flapImpulse    float64
	frameInterval  float64
	framesPerCycle int
}

// NewAvatar places a resting avatar at the configured spawn point.
func NewAvatar(cfg config.FlappyConfig) *Avatar {
	return &Avatar{
		X:              float64(cfg.World.Width) * cfg.Avatar.StartX,
		Y:              float64(cfg.World.Height) * cfg.Avatar.StartY,
		Width:          float64(cfg.Avatar.Width),
		Height:         float64(cfg.Avatar.Height),
		floorY:         float64(cfg.FloorY()),
		gravity:        cfg.Physics.Gravity,
		flapImpulse:    cfg.Physics.FlapImpulse,
		frameInterval:  cfg.Avatar.FrameInterval,
		framesPerCycle: cfg.Avatar.FramesPerCycle,
	}
}

// FlapVelocity returns the velocity a flap sets for the given stream
// acceleration. Faster streams produce stronger flaps.
func (a *Avatar) FlapVelocity(acceleration float64) float64 {
	return a.flapImpulse * (1 + acceleration/100)
}

// Tick advances the avatar by dt seconds. A flap replaces the current
// velocity before gravity is applied. Y is clamped to [0, floorY-Height];
// landing on the floor also zeroes the velocity.
func (a *Avatar) Tick(dt float64, flap bool, acceleration float64) {
	dt = clampDelta(dt)

	if flap {
		a.Velocity = a.FlapVelocity(acceleration)
	}

	a.Velocity += a.gravity * dt
	a.Y += a.Velocity * dt

	if a.Y < 0 {
		a.Y = 0
	}
	if a.Y+a.Height > a.floorY {
		a.Y = a.floorY - a.Height
		a.Velocity = 0
	}

	a.FrameTimer += dt
	if a.FrameTimer >= a.frameInterval {
		a.Frame = (a.Frame + 1) % a.framesPerCycle
		a.FrameTimer = 0
	}
}

// Rect returns the avatar's collision box.
func (a *Avatar) Rect() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Width, a.Height)
}

// FloorY returns the floor line the avatar lands on.
func (a *Avatar) FloorY() float64 {
	return a.floorY
}

// clampDelta maps negative, NaN and infinite frame times to zero.
func clampDelta(dt float64) float64 {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return 0
	}
	return dt
}
