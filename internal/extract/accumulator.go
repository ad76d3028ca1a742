package extract

// Accumulator owns the "current record under construction" while an adapter
// walks a schemaless source in input order. It is a small state machine:
// Start is the new-record signal, Field is a field-candidate event, and
// Flush is the end-of-input signal. What counts as a new-record signal is
// the adapter's business; the transitions here are shared.
type Accumulator struct {
	current *Draft
	done    []*Draft
}

// NewAccumulator returns an empty Accumulator. Each source unit gets a fresh
// instance; the current draft is never shared.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Start handles a new-record signal: the draft in progress is completed (if
// it passes the minimal-validity check) and d becomes the current draft.
func (a *Accumulator) Start(d *Draft) {
	a.Flush()
	a.current = d
}

// Current returns the draft in progress, or nil when none has started.
func (a *Accumulator) Current() *Draft {
	return a.current
}

// Field applies a field candidate to the draft in progress under the
// first-match-wins rule. Stray candidates arriving before the first record
// are dropped, not crashed on. It reports whether the value was stored.
func (a *Accumulator) Field(f Field, value string) bool {
	if a.current == nil {
		return false
	}
	return a.current.SetIfAbsent(f, value)
}

// Keep records a verbatim row/line on the draft in progress.
func (a *Accumulator) Keep(raw string) {
	if a.current != nil {
		a.current.Keep(raw)
	}
}

// Flush completes the draft in progress; it is kept only if it has a name.
// Safe to call at end of input and before every new-record signal.
func (a *Accumulator) Flush() {
	if a.current != nil && a.current.HasName() {
		a.done = append(a.done, a.current)
	}
	a.current = nil
}

// Drafts returns the completed drafts in input order.
func (a *Accumulator) Drafts() []*Draft {
	return a.done
}
