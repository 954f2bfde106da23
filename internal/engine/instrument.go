package engine

import "go.uber.org/atomic"

// Instrumented wraps an Engine with atomic call counters for callers who
// want basic observability. It is deliberately not part of Engine itself
// — the base engine stays exactly as side-effect-free as spec §5
// requires, and counting is opt-in at the decorator boundary.
type Instrumented struct {
	*Engine

	calls atomic.Uint64
	runes atomic.Uint64
}

// Instrument wraps e, returning a decorator that counts Parse calls and
// input runes processed.
func Instrument(e *Engine) *Instrumented {
	return &Instrumented{Engine: e}
}

// Parse delegates to the wrapped Engine, recording call and rune counts.
func (i *Instrumented) Parse(text string) string {
	i.calls.Add(1)
	i.runes.Add(uint64(len([]rune(text))))
	return i.Engine.Parse(text)
}

// Calls returns the number of Parse calls observed so far.
func (i *Instrumented) Calls() uint64 { return i.calls.Load() }

// Runes returns the total number of input runes processed so far.
func (i *Instrumented) Runes() uint64 { return i.runes.Load() }
