package core

import "testing"

func TestEventHas(t *testing.T) {
	ev := EventFlap | EventScore

	if !ev.Has(EventFlap) {
		t.Error("expected EventFlap to be set")
	}
	if !ev.Has(EventFlap | EventScore) {
		t.Error("expected combined bits to be set")
	}
	if ev.Has(EventCrash) {
		t.Error("EventCrash should not be set")
	}
	if ev.Has(0) {
		t.Error("Has(0) should be false")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev       Event
		expected string
	}{
		{0, "none"},
		{EventStart, "start"},
		{EventFlap | EventCrash, "flap|crash"},
		{EventRestart | EventPause, "pause|restart"},
	}

	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.expected {
			t.Errorf("Event(%d).String() = %q, expected %q", tc.ev, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionOther)
	if !f.Has(ActionJump) || !f.Has(ActionOther) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove actions")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}
