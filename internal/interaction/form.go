package interaction

import (
	"sync"
	"time"
)

// ResetDelay is how long the confirmation shows before the form clears
const ResetDelay = 3 * time.Second

// FormSnapshot is a copy of the form state for rendering
type FormSnapshot struct {
	Fields    map[string]string `json:"fields"`
	Submitted bool              `json:"submitted"`
}

// Form is a controlled form with a transient submit confirmation.
// It cycles between editing and submitted; a scheduled reset returns it to
// editing with every field empty.
type Form struct {
	mu         sync.Mutex
	clock      Clock
	resetAfter time.Duration
	names      []string
	fields     map[string]string
	submitted  bool
	closed     bool
	pending    Timer
}

// NewForm creates a form with the given field names, all empty
func NewForm(clock Clock, resetAfter time.Duration, names ...string) *Form {
	if clock == nil {
		clock = SystemClock
	}
	f := &Form{
		clock:      clock,
		resetAfter: resetAfter,
		names:      append([]string(nil), names...),
		fields:     make(map[string]string, len(names)),
	}
	f.clear()
	return f
}

// Set updates one field. Unknown names are ignored and report false.
func (f *Form) Set(name, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.fields[name]; !ok || f.closed {
		return false
	}
	f.fields[name] = value
	return true
}

// Value returns the current value of a field
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[name]
}

// Submit moves the form to the submitted state and schedules the reset.
// It is a no-op returning false while a submission is already showing.
func (f *Form) Submit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted || f.closed {
		return false
	}
	f.submitted = true
	f.pending = f.clock.AfterFunc(f.resetAfter, f.reset)
	return true
}

// Submitted reports whether the confirmation is showing
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Snapshot returns a copy of the current state
func (f *Form) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		fields[k] = v
	}
	return FormSnapshot{Fields: fields, Submitted: f.submitted}
}

// Close tears the form down and cancels a pending reset.
// The state is frozen afterwards.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
}

func (f *Form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.submitted = false
	f.pending = nil
	f.clear()
}

func (f *Form) clear() {
	for _, name := range f.names {
		f.fields[name] = ""
	}
}
