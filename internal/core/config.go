package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether the first run has begun
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Event is a bit set of notable things that happened during one step.
type Event uint16

const (
	EventStart   Event = 1 << iota // first run began
	EventFlap                      // upward impulse applied
	EventScore                     // at least one obstacle passed
	EventCrash                     // run ended in a collision
	EventPause                     // game paused
	EventResume                    // game resumed
	EventRestart                   // new run after game over
)

// Has reports whether all bits of e are set.
func (ev Event) Has(e Event) bool {
	return ev&e == e && e != 0
}

// String returns a compact, stable description of the set bits.
func (ev Event) String() string {
	if ev == 0 {
		return "none"
	}
	names := []struct {
		e    Event
		name string
	}{
		{EventStart, "start"},
		{EventFlap, "flap"},
		{EventScore, "score"},
		{EventCrash, "crash"},
		{EventPause, "pause"},
		{EventResume, "resume"},
		{EventRestart, "restart"},
	}
	out := ""
	for _, n := range names {
		if ev.Has(n.e) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events Event
}
