package interaction

// ScrollThreshold is the offset in logical pixels past which the header turns solid
const ScrollThreshold = 100

// ScrollDetector tracks whether the page is scrolled past the header threshold
type ScrollDetector struct {
	scrolled bool
	forced   bool
}

// NewScrollDetector evaluates the initial offset at mount,
// so a page loaded already scrolled starts in the scrolled state.
func NewScrollDetector(initialOffset float64) *ScrollDetector {
	d := &ScrollDetector{}
	d.Observe(initialOffset)
	return d
}

// NewSolidHeader returns a detector that always reports scrolled
func NewSolidHeader() *ScrollDetector {
	return &ScrollDetector{scrolled: true, forced: true}
}

// Observe records a scroll event and returns the new state
func (d *ScrollDetector) Observe(offset float64) bool {
	if d.forced {
		return true
	}
	d.scrolled = offset > ScrollThreshold
	return d.scrolled
}

// Solid reports whether the header is pinned to the scrolled look
func (d *ScrollDetector) Solid() bool { return d.forced }

// Scrolled reports the current state
func (d *ScrollDetector) Scrolled() bool { return d.scrolled }
