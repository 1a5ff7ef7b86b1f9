package spline

import (
	"fmt"
	"strconv"
)

// Kind tags the interpolation rule of the segment that starts at a key.
type Kind uint8

const (
	// Linear blends v_i and v_{i+1} proportionally. It is the zero Kind and
	// therefore the default mode of a Key.
	Linear Kind = iota

	// Step holds v_i until the normalized position reaches the threshold,
	// then yields v_{i+1}.
	Step

	// Cosine blends along (1 - cos(πs)) / 2, easing in and out of each key.
	Cosine

	// CatmullRom runs a cubic Hermite curve through the keys, with tangents
	// taken from the neighbouring keys.
	CatmullRom

	// Bezier uses the key's handle as the outgoing control point and the
	// mirror of the next key's handle as the incoming one.
	Bezier

	// StrokeBezier carries explicit in and out handles per key.
	StrokeBezier
)

var kindNames = [...]string{
	Linear:       "linear",
	Step:         "step",
	Cosine:       "cosine",
	CatmullRom:   "catmullrom",
	Bezier:       "bezier",
	StrokeBezier: "strokebezier",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Interpolation is the tagged interpolation mode of a key. Only the payload
// fields relevant to Kind are meaningful:
//
//   - Step: Threshold, the normalized position in [0, 1] from which the
//     segment yields the right value.
//   - Bezier: Out, the outgoing handle.
//   - StrokeBezier: In and Out, the incoming and outgoing handles.
//
// The zero value is Linear.
type Interpolation[V any] struct {
	Kind      Kind
	Threshold float64
	In        V
	Out       V
}

// StepMode returns a Step interpolation with the given threshold.
func StepMode[V any](threshold float64) Interpolation[V] {
	return Interpolation[V]{Kind: Step, Threshold: threshold}
}

// BezierMode returns a Bezier interpolation with the given outgoing handle.
func BezierMode[V any](handle V) Interpolation[V] {
	return Interpolation[V]{Kind: Bezier, Out: handle}
}

// StrokeBezierMode returns a StrokeBezier interpolation with explicit handles.
func StrokeBezierMode[V any](in, out V) Interpolation[V] {
	return Interpolation[V]{Kind: StrokeBezier, In: in, Out: out}
}

// String formats the mode with its payload, e.g. "step(0.5)" or "bezier([1 2])".
func (m Interpolation[V]) String() string {
	switch m.Kind {
	case Step:
		return fmt.Sprintf("step(%g)", m.Threshold)
	case Bezier:
		return fmt.Sprintf("bezier(%v)", m.Out)
	case StrokeBezier:
		return fmt.Sprintf("strokebezier(%v, %v)", m.In, m.Out)
	default:
		return m.Kind.String()
	}
}
