package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is one pipe slot. A paired pipe has a top segment and a bottom
// segment separated by the gap; a single pipe only hangs from the ceiling.
type Obstacle struct {
	X         float64 // Left edge
	TopHeight int     // Height of the top segment
	Single    bool    // Ceiling-only pipe
	Passed    bool    // Scored during the current cycle
}

// Stream owns a fixed ring of obstacle slots that scroll left at a speed
// growing linearly with time. Slots are allocated once and recycled in place.
type Stream struct {
	slots []Obstacle
	rng   Source

	speed        float64
	baseSpeed    float64
	acceleration float64
	distance     float64

	screenW      int
	floorY       int
	width        int
	gap          int
	spacing      int
	minTop       int
	maxTop       int
	singleHeight int
	singleChance int
}

// NewStream allocates the slot ring and lays out the first pipes just past
// the right edge of the screen.
func NewStream(cfg config.FlappyConfig, rng Source) *Stream {
	s := &Stream{
		slots:        make([]Obstacle, cfg.Obstacles.Count),
		rng:          rng,
		baseSpeed:    cfg.Physics.StartSpeed,
		acceleration: cfg.Physics.Acceleration,
		screenW:      cfg.World.Width,
		floorY:       cfg.FloorY(),
		width:        cfg.Obstacles.Width,
		gap:          cfg.Obstacles.Gap,
		spacing:      cfg.Obstacles.Spacing,
		minTop:       cfg.Obstacles.MinTopHeight,
		maxTop:       cfg.MaxTopHeight(),
		singleHeight: cfg.SingleHeight(),
		singleChance: cfg.Obstacles.SingleChance,
	}
	s.Reset()
	return s
}

// Reset restores the base speed and re-lays the ring. Initial pipes are
// always paired.
func (s *Stream) Reset() {
	s.speed = s.baseSpeed
	s.distance = 0
	for i := range s.slots {
		s.slots[i] = Obstacle{
			X:         float64(s.screenW + i*s.spacing),
			TopHeight: s.randomTop(),
		}
	}
}

// Tick scrolls the ring by dt seconds and returns how many slots the avatar
// passed this frame. Movement, scoring and recycling run as separate passes.
func (s *Stream) Tick(dt, avatarX float64) int {
	dt = clampDelta(dt)

	s.speed += s.acceleration * dt
	step := s.speed * dt
	s.distance += step
	for i := range s.slots {
		s.slots[i].X -= step
	}

	passed := 0
	w := float64(s.width)
	for i := range s.slots {
		if !s.slots[i].Passed && s.slots[i].X+w < avatarX {
			s.slots[i].Passed = true
			passed++
		}
	}

	for i := range s.slots {
		if s.slots[i].X+w < 0 {
			s.recycle(i)
		}
	}

	return passed
}

// recycle moves slot i behind the current rightmost slot with fresh geometry.
func (s *Stream) recycle(i int) {
	rightmost := 0.0
	for _, o := range s.slots {
		if o.X > rightmost {
			rightmost = o.X
		}
	}

	o := Obstacle{X: rightmost + float64(s.spacing)}
	if s.rng.IntRange(0, s.singleChance-1) == 0 {
		o.Single = true
		o.TopHeight = s.singleHeight
	} else {
		o.TopHeight = s.randomTop()
	}
	s.slots[i] = o
}

func (s *Stream) randomTop() int {
	return s.minTop + s.rng.IntRange(0, s.maxTop-s.minTop)
}

// Len returns the number of slots. It never changes.
func (s *Stream) Len() int {
	return len(s.slots)
}

// Slot returns a copy of slot i.
func (s *Stream) Slot(i int) Obstacle {
	return s.slots[i]
}

// Speed returns the current scroll speed.
func (s *Stream) Speed() float64 {
	return s.speed
}

// Acceleration returns the configured speed gain per second.
func (s *Stream) Acceleration() float64 {
	return s.acceleration
}

// Distance returns the total distance scrolled since the last reset.
func (s *Stream) Distance() float64 {
	return s.distance
}

// TopRect returns the collision box of an obstacle's top segment.
func (s *Stream) TopRect(o Obstacle) core.RectF {
	return core.NewRectF(o.X, 0, float64(s.width), float64(o.TopHeight))
}

// BottomRect returns the collision box of an obstacle's bottom segment.
// Single pipes and pipes whose gap reaches the floor get an empty rect.
func (s *Stream) BottomRect(o Obstacle) core.RectF {
	if o.Single {
		return core.RectF{}
	}
	top := o.TopHeight + s.gap
	h := s.floorY - top
	if h < 0 {
		h = 0
	}
	return core.NewRectF(o.X, float64(top), float64(s.width), float64(h))
}
