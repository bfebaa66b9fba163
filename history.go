package chess

// History is a linear stack of State records (spec.md §4.8, §9).
// Index 0 is a self-referential sentinel (its prevIndex is 0), which
// lets Prev2/Prev4 walk backwards with no bounds checks: once a walk
// reaches the sentinel it just keeps resolving to itself.
type History struct {
	states []State
	top    int
}

// NewHistory returns an empty history with its sentinel installed.
func NewHistory() *History {
	h := &History{states: make([]State, 1, 128)}
	h.states[0] = State{prevIndex: 0}
	h.top = 0
	return h
}

// Push records s as the new top of history, chained to the previous
// top, and returns its index.
func (h *History) Push(s State) int {
	s.prevIndex = h.top
	h.states = append(h.states, s)
	h.top = len(h.states) - 1
	return h.top
}

// Pop removes the current top and rewinds to its predecessor.
func (h *History) Pop() {
	if h.top == 0 {
		return
	}
	prev := h.states[h.top].prevIndex
	h.states = h.states[:h.top]
	h.top = prev
}

// Prev2 steps back two plies from idx (same side to move). Never
// out of range: the sentinel at 0 traps further walking at 0.
func (h *History) Prev2(idx int) int {
	return h.states[h.states[idx].prevIndex].prevIndex
}

// Prev4 steps back four plies from idx.
func (h *History) Prev4(idx int) int {
	return h.Prev2(h.Prev2(idx))
}

// Reset clears the history back to just the sentinel, for "new game".
func (h *History) Reset() {
	h.states = h.states[:1]
	h.top = 0
}

// CountRepetitions counts prior same-side-to-move states with the
// given key, reachable by walking prev->prev links, bounded by the
// halfmove clock (states before the last irreversible move can never
// repeat the current position).
func (h *History) CountRepetitions(key uint64, halfmoveClock int) int {
	count := 0
	idx := h.top
	plies := 0
	for idx != 0 && plies < halfmoveClock {
		idx = h.Prev2(idx)
		plies += 2
		if idx == 0 {
			break
		}
		if h.states[idx].Key == key {
			count++
		}
	}
	return count
}
