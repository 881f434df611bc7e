package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the session phase.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Input is what the player did during one frame.
type Input struct {
	Flap  bool // Flap key pressed
	Other bool // Any other key pressed
}

// StepResult reports the outcome of one Step.
type StepResult struct {
	State      State
	ScoreDelta int
	Events     core.Event
}

// ErrNilSource is returned by NewSession when no random source is given.
var ErrNilSource = errors.New("sim: nil random source")

// Session drives one avatar and one obstacle stream through the
// start, play, pause and game over phases.
type Session struct {
	cfg    config.FlappyConfig
	rng    Source
	avatar *Avatar
	stream *Stream

	state   State
	score   int
	skin    int
	elapsed float64 // Seconds of play in the current run
}

// NewSession validates cfg and builds a session waiting for the first flap.
func NewSession(cfg config.FlappyConfig, rng Source) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	s := &Session{cfg: cfg, rng: rng}
	s.reset()
	s.state = StateNotStarted
	return s, nil
}

// reset rebuilds the run. The skin is drawn before the stream so the
// sequence of random draws is stable across restarts.
func (s *Session) reset() {
	s.skin = s.rng.IntRange(0, s.cfg.Avatar.Skins-1)
	s.avatar = NewAvatar(s.cfg)
	s.stream = NewStream(s.cfg, s.rng)
	s.score = 0
	s.elapsed = 0
}

// Step advances the session by dt seconds with the given input.
func (s *Session) Step(dt float64, in Input) StepResult {
	var res StepResult

	switch s.state {
	case StateNotStarted:
		if in.Flap {
			s.state = StatePlaying
			res.Events |= core.EventStart
		}

	case StatePlaying:
		if in.Other {
			s.state = StatePaused
			res.Events |= core.EventPause
			break
		}
		s.tick(dt, in.Flap, &res)

	case StatePaused:
		if in.Flap || in.Other {
			s.state = StatePlaying
			res.Events |= core.EventResume
			s.tick(dt, in.Flap, &res)
		}

	case StateGameOver:
		if in.Flap {
			s.reset()
			s.state = StatePlaying
			res.Events |= core.EventRestart
		}
	}

	res.State = s.state
	return res
}

func (s *Session) tick(dt float64, flap bool, res *StepResult) {
	s.avatar.Tick(dt, flap, s.stream.Acceleration())
	if flap {
		res.Events |= core.EventFlap
	}

	delta := s.stream.Tick(dt, s.avatar.X)
	if delta > 0 {
		s.score += delta
		res.ScoreDelta = delta
		res.Events |= core.EventScore
	}
	s.elapsed += clampDelta(dt)

	if Collides(s.avatar, s.stream) {
		s.state = StateGameOver
		res.Events |= core.EventCrash
	}
}

// Restart abandons the current run and waits for the first flap again.
func (s *Session) Restart() {
	s.reset()
	s.state = StateNotStarted
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return s.score
}

// Skin returns the active skin index.
func (s *Session) Skin() int {
	return s.skin
}

// SetSkin selects a skin, clamped to the configured range.
func (s *Session) SetSkin(i int) {
	s.skin = core.Clamp(i, 0, s.cfg.Avatar.Skins-1)
}

// Avatar returns a copy of the avatar.
func (s *Session) Avatar() Avatar {
	return *s.avatar
}

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 {
	return s.stream.Speed()
}

// Distance returns how far the world has scrolled in the current run.
func (s *Session) Distance() float64 {
	return s.stream.Distance()
}

// Elapsed returns the seconds of play in the current run.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}
