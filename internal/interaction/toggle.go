package interaction

// Toggle is an open/closed flag such as the mobile navigation menu
type Toggle struct {
	open bool
}

// Flip inverts the flag and returns the new value
func (t *Toggle) Flip() bool {
	t.open = !t.open
	return t.open
}

// Close forces the flag closed, as when a navigation link is followed
func (t *Toggle) Close() { t.open = false }

// Open reports the current value
func (t *Toggle) Open() bool { return t.open }
