package sim

import "github.com/vovakirdan/tui-flappy/internal/config"

// scriptedSource replays values in order, clamped into the requested range.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) IntRange(min, max int) int {
	v := min
	if len(s.values) > 0 {
		v = s.values[s.calls%len(s.values)]
	}
	s.calls++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func testConfig() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}

// constantSpeedConfig scrolls exactly 10 units per 0.125 s step.
func constantSpeedConfig() config.FlappyConfig {
	cfg := testConfig()
	cfg.Physics.StartSpeed = 80
	cfg.Physics.Acceleration = 0
	return cfg
}
