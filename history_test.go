package chess

import "testing"

func TestHistorySentinelSelfReferential(t *testing.T) {
	h := NewHistory()
	if h.states[0].prevIndex != 0 {
		t.Errorf("sentinel.prevIndex = %d, want 0", h.states[0].prevIndex)
	}
	// Walking past the sentinel should keep landing on it, never panic.
	idx := h.Prev4(0)
	if idx != 0 {
		t.Errorf("Prev4 past the sentinel = %d, want 0", idx)
	}
}

func TestHistoryPushPop(t *testing.T) {
	h := NewHistory()
	i1 := h.Push(State{Key: 1})
	i2 := h.Push(State{Key: 2})
	if h.states[i2].prevIndex != i1 {
		t.Errorf("second push prevIndex = %d, want %d", h.states[i2].prevIndex, i1)
	}
	h.Pop()
	if h.top != i1 {
		t.Errorf("top after Pop = %d, want %d", h.top, i1)
	}
}

func TestHistoryCountRepetitions(t *testing.T) {
	h := NewHistory()
	h.Push(State{Key: 42})
	h.Push(State{Key: 99})
	h.Push(State{Key: 42})
	// Same side to move two plies back: key 42 repeats once.
	if n := h.CountRepetitions(42, 100); n != 1 {
		t.Errorf("CountRepetitions = %d, want 1", n)
	}
}

func TestHistoryResetClearsToSentinel(t *testing.T) {
	h := NewHistory()
	h.Push(State{Key: 1})
	h.Reset()
	if h.top != 0 || len(h.states) != 1 {
		t.Errorf("Reset left top=%d len=%d, want top=0 len=1", h.top, len(h.states))
	}
}
