package spline

// Key is a control point: a value placed at a time, together with the mode
// that shapes the segment beginning at it. Keys are plain values; a spline
// never mutates a key it holds.
type Key[T Float, V any] struct {
	Time  T
	Value V
	Mode  Interpolation[V]
}

// NewKey builds a key from its three fields.
func NewKey[T Float, V any](t T, value V, mode Interpolation[V]) Key[T, V] {
	return Key[T, V]{Time: t, Value: value, Mode: mode}
}

// StepKey builds a key with Step interpolation.
func StepKey[T Float, V any](t T, value V, threshold float64) Key[T, V] {
	return NewKey(t, value, StepMode[V](threshold))
}

// LinearKey builds a key with Linear interpolation.
func LinearKey[T Float, V any](t T, value V) Key[T, V] {
	return NewKey(t, value, Interpolation[V]{Kind: Linear})
}

// CosineKey builds a key with Cosine interpolation.
func CosineKey[T Float, V any](t T, value V) Key[T, V] {
	return NewKey(t, value, Interpolation[V]{Kind: Cosine})
}

// CatmullRomKey builds a key with Catmull-Rom interpolation.
func CatmullRomKey[T Float, V any](t T, value V) Key[T, V] {
	return NewKey(t, value, Interpolation[V]{Kind: CatmullRom})
}

// BezierKey builds a key with Bezier interpolation and the given handle.
func BezierKey[T Float, V any](t T, value, handle V) Key[T, V] {
	return NewKey(t, value, BezierMode(handle))
}

// StrokeBezierKey builds a key with StrokeBezier interpolation.
func StrokeBezierKey[T Float, V any](t T, value, in, out V) Key[T, V] {
	return NewKey(t, value, StrokeBezierMode(in, out))
}

// Equal compares time, value and mode. Values and handles are compared with eq,
// which lets keys over non-comparable value types be checked structurally.
// Keys over comparable value types can also be compared with ==.
func (k Key[T, V]) Equal(other Key[T, V], eq func(a, b V) bool) bool {
	return k.Time == other.Time &&
		eq(k.Value, other.Value) &&
		k.Mode.Kind == other.Mode.Kind &&
		k.Mode.Threshold == other.Mode.Threshold &&
		eq(k.Mode.In, other.Mode.In) &&
		eq(k.Mode.Out, other.Mode.Out)
}
