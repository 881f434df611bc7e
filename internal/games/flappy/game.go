// Package flappy adapts the Flappy simulation to the terminal platform.
// It maps semantic input actions onto the session, projects world
// coordinates onto the character grid and tracks a run ID per run.
package flappy

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Game implements the Flappy game on top of a sim.Session.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	session *sim.Session
	snap    sim.Snapshot
	runID   uuid.UUID
	events  core.Event // Events of the most recent Step
}

// New validates cfg and returns a game that still needs Reset.
func New(cfg config.FlappyConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset starts a fresh session seeded from rc.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	// cfg was validated in New, so the session cannot fail.
	s, err := sim.NewSession(g.cfg, sim.NewSource(rc.Seed))
	if err != nil {
		panic(err)
	}
	g.session = s
	g.runID = uuid.Nil
	g.events = 0
	g.session.Snapshot(&g.snap)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	res := g.session.Step(dt, sim.Input{
		Flap:  in.Has(core.ActionJump),
		Other: in.Has(core.ActionOther),
	})

	if res.Events.Has(core.EventStart) || res.Events.Has(core.EventRestart) {
		g.runID = uuid.New()
	}
	g.events = res.Events
	g.session.Snapshot(&g.snap)

	return core.StepResult{State: g.State(), Events: res.Events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Started:  st != sim.StateNotStarted,
		GameOver: st == sim.StateGameOver,
		Paused:   st == sim.StatePaused,
	}
}

// Events returns the events raised by the most recent Step.
func (g *Game) Events() core.Event {
	return g.events
}

// RunID identifies the current run. It is uuid.Nil until the first flap.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}

// Snapshot returns the state captured after the most recent Step or Reset.
// The obstacle slice is reused on the next Step.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// SetSkin selects the avatar skin.
func (g *Game) SetSkin(i int) {
	g.session.SetSkin(i)
	g.session.Snapshot(&g.snap)
}
