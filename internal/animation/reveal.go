package animation

// Reveal is a one-shot latch for a scroll-triggered entrance.
// It fires the first time the element is visible enough and never rearms.
type Reveal struct {
	viewport Viewport
	fired    bool
}

// NewReveal creates a latch for the given viewport settings
func NewReveal(v Viewport) *Reveal {
	return &Reveal{viewport: v}
}

// Observe records the visible fraction of the element (0..1).
// It returns true only on the observation that triggers the entrance.
func (r *Reveal) Observe(fraction float64) bool {
	if r.fired || fraction < r.viewport.Amount {
		return false
	}
	r.fired = true
	return true
}

// Revealed reports whether the entrance has played
func (r *Reveal) Revealed() bool { return r.fired }
