package spline

import (
	"sort"

	"github.com/tphakala/go-spline/internal/mathutil"
)

// Sampled is a sampled value together with the keys it was computed from.
// Left and Right point into the spline's storage and are only valid until the
// next mutation. Right is nil when the value comes from clamping past the last
// key, or from clamping a one-key spline.
type Sampled[T Float, V any] struct {
	Value V
	Left  *Key[T, V]
	Right *Key[T, V]
}

// Sample returns the value of the curve at t. It reports false when the
// spline has fewer than two keys or t lies outside [first, last). The upper
// bound is open: the last key starts no segment.
func (s *Spline[T, V]) Sample(t T) (V, bool) {
	value, _, ok := s.sample(t)
	return value, ok
}

// SampleWithKey is like Sample but also returns the keys bracketing t.
func (s *Spline[T, V]) SampleWithKey(t T) (Sampled[T, V], bool) {
	value, i, ok := s.sample(t)
	if !ok {
		return Sampled[T, V]{}, false
	}

	return Sampled[T, V]{Value: value, Left: &s.keys[i], Right: &s.keys[i+1]}, true
}

// ClampedSample is like Sample, but holds the first key's value for t at or
// before the first key and the last key's value for t at or after the last key.
// A one-key spline yields its key's value everywhere. Only an empty spline
// reports false.
func (s *Spline[T, V]) ClampedSample(t T) (V, bool) {
	sampled, ok := s.ClampedSampleWithKey(t)
	return sampled.Value, ok
}

// ClampedSampleWithKey is like ClampedSample but also returns the keys used.
func (s *Spline[T, V]) ClampedSampleWithKey(t T) (Sampled[T, V], bool) {
	if len(s.keys) == 0 {
		return Sampled[T, V]{}, false
	}

	if sampled, ok := s.SampleWithKey(t); ok {
		return sampled, true
	}

	first := &s.keys[0]
	if t <= first.Time {
		sampled := Sampled[T, V]{Value: first.Value, Left: first}
		if len(s.keys) > 1 {
			sampled.Right = &s.keys[1]
		}
		return sampled, true
	}

	last := &s.keys[len(s.keys)-1]
	return Sampled[T, V]{Value: last.Value, Left: last}, true
}

// sample locates the segment containing t and evaluates it.
// It returns the index of the segment's left key.
func (s *Spline[T, V]) sample(t T) (value V, left int, ok bool) {
	n := len(s.keys)
	if n < 2 {
		return value, 0, false
	}

	i := s.search(t)
	if i < 0 || i >= n-1 {
		return value, 0, false
	}

	return s.segment(i, t), i, true
}

// search returns the largest index i with keys[i].Time <= t, or -1.
// Among keys stacked at the same time this picks the last one.
func (s *Spline[T, V]) search(t T) int {
	return sort.Search(len(s.keys), func(i int) bool {
		return s.keys[i].Time > t
	}) - 1
}

// segment evaluates the segment [keys[i], keys[i+1]) at t, shaped by the
// left key's mode. Unknown kinds sample as Linear, the default mode.
func (s *Spline[T, V]) segment(i int, t T) V {
	k0, k1 := &s.keys[i], &s.keys[i+1]
	nt := mathutil.Normalize(t, k0.Time, k1.Time)

	switch k0.Mode.Kind {
	case Step:
		if float64(nt) < k0.Mode.Threshold {
			return k0.Value
		}
		return k1.Value

	case Cosine:
		return lerp[T, V](s.interp, k0.Value, k1.Value, mathutil.CosineEase(nt))

	case CatmullRom:
		return s.catmullRom(i, nt)

	case Bezier, StrokeBezier:
		return s.bezier(k0, k1, nt)

	default:
		return lerp[T, V](s.interp, k0.Value, k1.Value, nt)
	}
}

// bezier evaluates a Bézier-family segment. The left key contributes its
// outgoing handle; the right key contributes an incoming handle when it is
// Bézier-family itself, otherwise the segment is quadratic.
func (s *Spline[T, V]) bezier(k0, k1 *Key[T, V], nt T) V {
	ip := s.interp
	out := k0.Mode.Out

	switch k1.Mode.Kind {
	case Bezier:
		// Mirror the right key's outgoing handle around its value.
		in := ip.Sub(ip.Add(k1.Value, k1.Value), k1.Mode.Out)
		return ip.CubicBezier(k0.Value, out, in, k1.Value, nt)

	case StrokeBezier:
		return ip.CubicBezier(k0.Value, out, k1.Mode.In, k1.Value, nt)

	default:
		return ip.QuadraticBezier(k0.Value, out, k1.Value, nt)
	}
}

// catmullRom evaluates the segment starting at key i as a cubic Hermite curve
// with Catmull-Rom tangents. A missing neighbour at either end of the spline
// is replaced by a phantom key mirrored through the segment's end point, one
// segment length away.
func (s *Spline[T, V]) catmullRom(i int, nt T) V {
	ip := s.interp
	k0, k1 := &s.keys[i], &s.keys[i+1]
	dt := k1.Time - k0.Time
	delta := ip.Sub(k1.Value, k0.Value)

	var prevTime, nextTime T
	var prevValue, nextValue V

	if i > 0 {
		prevTime, prevValue = s.keys[i-1].Time, s.keys[i-1].Value
	} else {
		prevTime, prevValue = k0.Time-dt, ip.Sub(k0.Value, delta)
	}

	if i+2 < len(s.keys) {
		nextTime, nextValue = s.keys[i+2].Time, s.keys[i+2].Value
	} else {
		nextTime, nextValue = k1.Time+dt, ip.Add(k1.Value, delta)
	}

	m0 := tangent[T, V](ip, prevValue, k1.Value, prevTime, k1.Time, dt)
	m1 := tangent[T, V](ip, k0.Value, nextValue, k0.Time, nextTime, dt)

	return ip.CubicHermite(k0.Value, m0, k1.Value, m1, nt)
}

// tangent returns the finite-difference slope between (ta, a) and (tb, b),
// rescaled from per-time to per-segment units. A zero span gives a zero tangent.
func tangent[T Float, V any](ip LinearOps[T, V], a, b V, ta, tb, dt T) V {
	span := tb - ta
	if span <= 0 {
		return ip.Sub(a, a)
	}

	return ip.OuterMul(ip.OuterDiv(ip.Sub(b, a), span), dt)
}
