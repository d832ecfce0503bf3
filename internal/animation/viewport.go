package animation

// Viewport controls when a scroll-triggered preset plays
type Viewport struct {
	Once   bool    `json:"once"`
	Amount float64 `json:"amount"`
}

// DefaultViewport plays once when 20% of the element is visible
func DefaultViewport() Viewport { return Viewport{Once: true, Amount: 0.2} }

// LargeElementViewport triggers earlier for tall elements
func LargeElementViewport() Viewport { return Viewport{Once: true, Amount: 0.1} }

var transitions = map[string]Transition{
	"fast":   {Duration: 0.15, Ease: EaseOut},
	"base":   {Duration: 0.3, Ease: EaseOut},
	"slow":   {Duration: 0.5, Ease: EaseOut},
	"spring": {Type: "spring", Stiffness: 300, Damping: 30},
}

// Transitions returns the shared timing presets for hover and UI feedback.
// The map is a fresh copy on every call.
func Transitions() map[string]Transition {
	out := make(map[string]Transition, len(transitions))
	for k, v := range transitions {
		out[k] = v
	}
	return out
}

// Hover is the scale-up applied to image cards on hover
type Hover struct {
	Scale      float64    `json:"scale"`
	Transition Transition `json:"transition"`
}

// ScaleOnHover is used by portfolio and team cards
func ScaleOnHover() Hover {
	return Hover{Scale: 1.05, Transition: Transition{Duration: 0.3, Ease: EaseOut}}
}

// Bundle is everything the browser runtime needs, in one document
type Bundle struct {
	Presets     map[Name]Preset       `json:"presets"`
	Viewports   map[string]Viewport   `json:"viewports"`
	Transitions map[string]Transition `json:"transitions"`
	Hover       Hover                 `json:"hover"`
}

// Export builds the public animation bundle
func Export() Bundle {
	presets := make(map[Name]Preset, len(registry))
	for _, p := range registry {
		presets[p.Name] = p.clone()
	}
	return Bundle{
		Presets: presets,
		Viewports: map[string]Viewport{
			"default": DefaultViewport(),
			"large":   LargeElementViewport(),
		},
		Transitions: Transitions(),
		Hover:       ScaleOnHover(),
	}
}
