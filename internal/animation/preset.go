package animation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Role says whether a preset animates an element or orchestrates children
type Role int

const (
	Leaf Role = iota
	Container
)

// State is a partial set of visual properties
type State struct {
	Opacity float64  `json:"opacity"`
	X       *Offset  `json:"x,omitempty"`
	Y       *Offset  `json:"y,omitempty"`
	Scale   *float64 `json:"scale,omitempty"`
}

// Transition describes timing. Durations and delays are in seconds.
type Transition struct {
	Type            string  `json:"type,omitempty"`
	Duration        float64 `json:"duration,omitempty"`
	Ease            Ease    `json:"ease,omitzero"`
	Delay           float64 `json:"delay,omitempty"`
	StaggerChildren float64 `json:"staggerChildren,omitempty"`
	DelayChildren   float64 `json:"delayChildren,omitempty"`
	Stiffness       float64 `json:"stiffness,omitempty"`
	Damping         float64 `json:"damping,omitempty"`
}

// Phase is a target state plus the transition used to reach it
type Phase struct {
	State
	Transition *Transition `json:"transition,omitempty"`
}

// Preset is a named hidden/visible animation pair
type Preset struct {
	Name       Name
	Role       Role
	Hidden     State
	Visible    State
	Transition Transition
	Exit       *Phase
}

// clone copies the pointer fields so callers never share registry state
func (s State) clone() State {
	if s.X != nil {
		x := *s.X
		s.X = &x
	}
	if s.Y != nil {
		y := *s.Y
		s.Y = &y
	}
	if s.Scale != nil {
		sc := *s.Scale
		s.Scale = &sc
	}
	return s
}

func (p Preset) clone() Preset {
	p.Hidden = p.Hidden.clone()
	p.Visible = p.Visible.clone()
	if p.Exit != nil {
		exit := Phase{State: p.Exit.State.clone()}
		if p.Exit.Transition != nil {
			t := *p.Exit.Transition
			exit.Transition = &t
		}
		p.Exit = &exit
	}
	return p
}

var (
	errStaggerOnLeaf    = errors.New("stagger timing on a leaf preset")
	errNegativeTiming   = errors.New("negative timing")
	errInvisibleVisible = errors.New("visible state is not fully opaque")
)

// Validate checks the timing invariants of a preset
func Validate(p Preset) error {
	t := p.Transition
	for _, v := range []float64{t.Duration, t.Delay, t.StaggerChildren, t.DelayChildren} {
		if v < 0 {
			return fmt.Errorf("%s: %w", p.Name, errNegativeTiming)
		}
	}
	if p.Role == Leaf && (t.StaggerChildren != 0 || t.DelayChildren != 0) {
		return fmt.Errorf("%s: %w", p.Name, errStaggerOnLeaf)
	}
	if p.Visible.Opacity != 1 {
		return fmt.Errorf("%s: %w", p.Name, errInvisibleVisible)
	}
	return nil
}

// MarshalJSON encodes the preset as a variants object keyed by phase
func (p Preset) MarshalJSON() ([]byte, error) {
	t := p.Transition
	variants := map[string]any{
		"hidden":  p.Hidden,
		"visible": Phase{State: p.Visible, Transition: &t},
	}
	if p.Exit != nil {
		variants["exit"] = p.Exit
	}
	return json.Marshal(variants)
}
