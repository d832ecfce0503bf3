package animation

import (
	"encoding/json"
	"fmt"
)

// Ease is either a named easing curve or explicit cubic-bezier control points
type Ease struct {
	name   string
	bezier [4]float64
}

var (
	EaseOut = Ease{name: "easeOut"}
	EaseIn  = Ease{name: "easeIn"}
)

// CubicBezier builds an ease from control points (x1, y1, x2, y2)
func CubicBezier(x1, y1, x2, y2 float64) Ease {
	return Ease{bezier: [4]float64{x1, y1, x2, y2}}
}

// Named reports the curve name, empty for bezier eases
func (e Ease) Named() string { return e.name }

// Bezier returns the control points and whether the ease is a bezier curve
func (e Ease) Bezier() ([4]float64, bool) {
	return e.bezier, e.name == "" && !e.IsZero()
}

// IsZero reports whether no ease was set
func (e Ease) IsZero() bool {
	return e.name == "" && e.bezier == [4]float64{}
}

// String renders the ease in CSS form
func (e Ease) String() string {
	if e.name != "" {
		return e.name
	}
	b := e.bezier
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", b[0], b[1], b[2], b[3])
}

// MarshalJSON encodes named eases as strings and bezier eases as arrays
func (e Ease) MarshalJSON() ([]byte, error) {
	if e.name != "" {
		return json.Marshal(e.name)
	}
	return json.Marshal(e.bezier)
}
