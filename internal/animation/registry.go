package animation

import "fmt"

// Name identifies a preset in the closed registry
type Name int

const (
	FadeInUp Name = iota
	FadeIn
	FadeInLeft
	FadeInRight
	StaggerContainer
	StaggerContainerSlow
	ScaleIn
	SlideUp
	SlideInLeft
	numPresets
)

var names = [numPresets]string{
	FadeInUp:             "fadeInUp",
	FadeIn:               "fadeIn",
	FadeInLeft:           "fadeInLeft",
	FadeInRight:          "fadeInRight",
	StaggerContainer:     "staggerContainer",
	StaggerContainerSlow: "staggerContainerSlow",
	ScaleIn:              "scaleIn",
	SlideUp:              "slideUp",
	SlideInLeft:          "slideInLeft",
}

// String returns the wire name used in markup and JSON
func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Valid reports whether n is a registered preset
func (n Name) Valid() bool { return n >= 0 && n < numPresets }

// MarshalText lets Name act as a JSON map key
func (n Name) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("animation: unknown preset %d", int(n))
	}
	return []byte(names[n]), nil
}

func scale(v float64) *float64 { return &v }

var registry = [numPresets]Preset{
	FadeInUp: {
		Hidden:     State{Opacity: 0, Y: Px(40)},
		Visible:    State{Opacity: 1, Y: Px(0)},
		Transition: Transition{Duration: 0.8, Ease: EaseOut},
	},
	FadeIn: {
		Hidden:     State{Opacity: 0},
		Visible:    State{Opacity: 1},
		Transition: Transition{Duration: 0.6, Ease: EaseOut},
	},
	FadeInLeft: {
		Hidden:     State{Opacity: 0, X: Px(-40)},
		Visible:    State{Opacity: 1, X: Px(0)},
		Transition: Transition{Duration: 0.8, Ease: EaseOut},
	},
	FadeInRight: {
		Hidden:     State{Opacity: 0, X: Px(40)},
		Visible:    State{Opacity: 1, X: Px(0)},
		Transition: Transition{Duration: 0.8, Ease: EaseOut},
	},
	StaggerContainer: {
		Role:       Container,
		Hidden:     State{Opacity: 0},
		Visible:    State{Opacity: 1},
		Transition: Transition{StaggerChildren: 0.1, DelayChildren: 0.1},
	},
	StaggerContainerSlow: {
		Role:       Container,
		Hidden:     State{Opacity: 0},
		Visible:    State{Opacity: 1},
		Transition: Transition{StaggerChildren: 0.2, DelayChildren: 0.2},
	},
	ScaleIn: {
		Hidden:     State{Opacity: 0, Scale: scale(0.95)},
		Visible:    State{Opacity: 1, Scale: scale(1)},
		Transition: Transition{Duration: 0.4, Ease: EaseOut},
	},
	SlideUp: {
		Hidden:     State{Opacity: 0, Y: Px(60)},
		Visible:    State{Opacity: 1, Y: Px(0)},
		Transition: Transition{Duration: 1, Ease: CubicBezier(0.25, 0.1, 0.25, 1)},
	},
	SlideInLeft: {
		Hidden:     State{Opacity: 0, X: Pct(-100)},
		Visible:    State{Opacity: 1, X: Px(0)},
		Transition: Transition{Duration: 0.5, Ease: EaseOut},
		Exit: &Phase{
			State:      State{Opacity: 0, X: Pct(-100)},
			Transition: &Transition{Duration: 0.3, Ease: EaseIn},
		},
	},
}

func init() {
	for i := range registry {
		registry[i].Name = Name(i)
	}
}

// Lookup returns the preset registered under n.
// An unregistered Name is a programming error and panics.
func Lookup(n Name) Preset {
	if !n.Valid() {
		panic(fmt.Sprintf("animation: unknown preset %d", int(n)))
	}
	return registry[n].clone()
}

// All returns every preset in registry order
func All() []Preset {
	out := make([]Preset, len(registry))
	for i, p := range registry {
		out[i] = p.clone()
	}
	return out
}
