package animation

import (
	"encoding/json"
	"strconv"
)

// Offset is a translation along one axis, in pixels or percent of the element
type Offset struct {
	Value   float64
	Percent bool
}

// Px returns a pixel offset
func Px(v float64) *Offset { return &Offset{Value: v} }

// Pct returns a percentage offset
func Pct(v float64) *Offset { return &Offset{Value: v, Percent: true} }

// String renders the offset the way the runtime accepts it
func (o Offset) String() string {
	s := strconv.FormatFloat(o.Value, 'f', -1, 64)
	if o.Percent {
		return s + "%"
	}
	return s
}

// MarshalJSON encodes pixel offsets as numbers and percentages as strings
func (o Offset) MarshalJSON() ([]byte, error) {
	if o.Percent {
		return json.Marshal(o.String())
	}
	return json.Marshal(o.Value)
}
