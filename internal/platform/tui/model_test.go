package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets int
	inputs []core.InputFrame
	deltas []float64
	events core.Event
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame, dt float64) core.StepResult {
	cp := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			cp.Set(a)
		}
	}
	g.inputs = append(g.inputs, cp)
	g.deltas = append(g.deltas, dt)
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return core.GameState{Score: 3} }

type recordingPlayer struct {
	played []core.Event
}

func (p *recordingPlayer) Play(ev core.Event) { p.played = append(p.played, ev) }
func (p *recordingPlayer) Close()             {}

func newTestModel(g *fakeGame, p *recordingPlayer) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 1}, nil, p)
}

func TestModelFrameDelta(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g, &recordingPlayer{})

	start := time.Unix(1000, 0)
	ticks := []time.Time{
		start,
		start.Add(16 * time.Millisecond),
		start.Add(2 * time.Second),
		start.Add(time.Second),
	}
	for _, tick := range ticks {
		m, _ = m.Update(TickMsg(tick))
	}

	expected := []float64{0, 0.016, MaxFrameDelta.Seconds(), 0}
	if len(g.deltas) != len(expected) {
		t.Fatalf("got %d steps, expected %d", len(g.deltas), len(expected))
	}
	for i, want := range expected {
		if math.Abs(g.deltas[i]-want) > 1e-9 {
			t.Errorf("step %d: dt = %v, expected %v", i, g.deltas[i], want)
		}
	}
}

func TestModelInputReachesNextTick(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g, &recordingPlayer{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m, _ = m.Update(TickMsg(time.Unix(1, 0)))
	m, _ = m.Update(TickMsg(time.Unix(2, 0)))

	if !g.inputs[0].Has(core.ActionJump) || !g.inputs[0].Has(core.ActionOther) {
		t.Errorf("first step input = %v, expected jump and other", g.inputs[0].Actions)
	}
	if g.inputs[1].Has(core.ActionJump) || g.inputs[1].Has(core.ActionOther) {
		t.Errorf("input should be cleared after a tick, got %v", g.inputs[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &recordingPlayer{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelPlaysEventCues(t *testing.T) {
	g := &fakeGame{events: core.EventFlap | core.EventScore}
	p := &recordingPlayer{}
	var m tea.Model = newTestModel(g, p)

	m.Update(TickMsg(time.Unix(1, 0)))

	if len(p.played) != 1 || p.played[0] != g.events {
		t.Errorf("played = %v, expected [%v]", p.played, g.events)
	}
}

func TestModelViewAndResize(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g, &recordingPlayer{})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("Init should reset the game once, got %d", g.resets)
	}

	view := m.View()
	if !strings.Contains(view, "fake") || !strings.Contains(view, "q quit") {
		t.Errorf("view missing game or help line:\n%s", view)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	mm := m.(Model)
	if mm.screen.Width() != 40 || mm.screen.Height() != 9 {
		t.Errorf("screen = %dx%d after resize, expected 40x9", mm.screen.Width(), mm.screen.Height())
	}
	if g.resets != 1 {
		t.Error("resize should not reset the run")
	}
}
