package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewAvatarSpawn(t *testing.T) {
	a := NewAvatar(testConfig())

	if a.X != 100 || a.Y != 300 {
		t.Errorf("spawn = (%v, %v), expected (100, 300)", a.X, a.Y)
	}
	if a.Width != 40 || a.Height != 40 {
		t.Errorf("size = %vx%v, expected 40x40", a.Width, a.Height)
	}
	if a.Velocity != 0 || a.Frame != 0 {
		t.Errorf("expected resting avatar, got velocity %v frame %d", a.Velocity, a.Frame)
	}
}

func TestAvatarFlapImpulse(t *testing.T) {
	tests := []struct {
		name         string
		acceleration float64
		expected     float64
	}{
		{"no acceleration", 0, -200},
		{"default acceleration", 5, -210},
		{"hard acceleration", 10, -220},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAvatar(testConfig())
			a.Tick(0, true, tc.acceleration)
			if math.Abs(a.Velocity-tc.expected) > 1e-9 {
				t.Errorf("velocity = %v, expected %v", a.Velocity, tc.expected)
			}
			if a.Y != 300 {
				t.Errorf("Y moved to %v on a zero-length tick", a.Y)
			}
		})
	}
}

func TestAvatarFlapIsExactWithoutAcceleration(t *testing.T) {
	a := NewAvatar(testConfig())
	a.Tick(0, true, 0)
	if a.Velocity != -200 {
		t.Errorf("velocity = %v, expected exactly -200", a.Velocity)
	}
}

func TestAvatarGravity(t *testing.T) {
	a := NewAvatar(testConfig())
	a.Tick(0.1, false, 0)

	if math.Abs(a.Velocity-50) > 1e-9 {
		t.Errorf("velocity = %v, expected 50", a.Velocity)
	}
	if math.Abs(a.Y-305) > 1e-9 {
		t.Errorf("Y = %v, expected 305", a.Y)
	}
}

func TestAvatarLandsOnFloor(t *testing.T) {
	a := NewAvatar(testConfig())
	for i := 0; i < 50; i++ {
		a.Tick(0.1, false, 0)
	}

	if a.Y != 460 {
		t.Errorf("Y = %v, expected 460 (floor 500 minus height 40)", a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("velocity = %v, expected 0 after landing", a.Velocity)
	}
}

func TestAvatarClampsToCeiling(t *testing.T) {
	a := NewAvatar(testConfig())
	a.Y = 5
	a.Tick(0.1, true, 0)

	if a.Y != 0 {
		t.Errorf("Y = %v, expected 0", a.Y)
	}
	// Ceiling contact keeps the upward velocity.
	if math.Abs(a.Velocity-(-150)) > 1e-9 {
		t.Errorf("velocity = %v, expected -150", a.Velocity)
	}
}

func TestAvatarStaysInBounds(t *testing.T) {
	a := NewAvatar(testConfig())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		dt := rng.Float64() * 0.2
		a.Tick(dt, rng.Intn(4) == 0, float64(rng.Intn(20)))
		if a.Y < 0 || a.Y > a.FloorY()-a.Height {
			t.Fatalf("step %d: Y = %v outside [0, %v]", i, a.Y, a.FloorY()-a.Height)
		}
		if a.Frame < 0 || a.Frame >= 16 {
			t.Fatalf("step %d: frame %d out of range", i, a.Frame)
		}
	}
}

func TestAvatarAnimation(t *testing.T) {
	a := NewAvatar(testConfig())

	a.Tick(0.02, false, 0)
	a.Tick(0.02, false, 0)
	if a.Frame != 0 {
		t.Errorf("frame = %d after 0.04s, expected 0", a.Frame)
	}
	a.Tick(0.02, false, 0)
	if a.Frame != 1 {
		t.Errorf("frame = %d after 0.06s, expected 1", a.Frame)
	}
	if a.FrameTimer != 0 {
		t.Errorf("frame timer = %v, expected reset to 0", a.FrameTimer)
	}

	a.Frame = 15
	a.Tick(0.05, false, 0)
	if a.Frame != 0 {
		t.Errorf("frame = %d, expected wrap to 0", a.Frame)
	}
}

func TestAvatarIgnoresBadDelta(t *testing.T) {
	for _, dt := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		a := NewAvatar(testConfig())
		a.Tick(dt, false, 0)
		if a.Y != 300 || a.Velocity != 0 || a.FrameTimer != 0 {
			t.Errorf("dt=%v moved the avatar: Y=%v velocity=%v timer=%v", dt, a.Y, a.Velocity, a.FrameTimer)
		}
	}
}
