// Package spline provides generic one-dimensional splines in pure Go.
//
// A spline is a time-ordered sequence of keys. Each key places a value at a
// time and carries the interpolation mode of the segment that begins at it,
// so modes can be mixed freely along one curve. Sampling answers "what is the
// value of the curve at time t?" for scalars, vectors and user-defined types.
//
// # Quick Start
//
//	s := spline.NewScalar(
//	    spline.StepKey(0.0, 0.0, 0.5),
//	    spline.LinearKey(1.0, 5.0),
//	    spline.CosineKey(2.0, 0.0),
//	    spline.Key[float64, float64]{Time: 3, Value: 1},
//	)
//
//	v, ok := s.Sample(1.5)        // 2.5, true
//	_, ok = s.Sample(3)           // false: the last key starts no segment
//	v, _ = s.ClampedSample(10)    // 1
//
// # Interpolation Modes
//
// The left key's mode shapes each segment [keys[i], keys[i+1]):
//
//   - [Step]: v_i while the normalized position is below the threshold, then v_{i+1}.
//   - [Linear]: straight blend; the default mode.
//   - [Cosine]: blend eased by (1 - cos(πs)) / 2.
//   - [CatmullRom]: cubic Hermite through the keys with tangents from the
//     neighbouring keys; missing neighbours at the ends are mirrored.
//   - [Bezier]: cubic Bézier from the key's handle and the mirrored handle
//     of the next key.
//   - [StrokeBezier]: cubic Bézier from explicit out and in handles.
//
// # Value Types
//
// Interpolation is decoupled from value types through capability tiers:
// [Additive], [LinearOps] and [Interpolator]. A spline samples with an
// Interpolator chosen at construction:
//
//   - [NewScalar] uses [Scalar] for float32 and float64 values.
//   - [NewVector] accepts any type implementing [Value], such as the types in
//     the vec subpackage, and derives the cubic primitives from its methods.
//   - [New] accepts any Interpolator, including one completed from LinearOps
//     with [Derive].
//
// A value type lacking a capability cannot be used to instantiate these
// constructors, so mismatches are reported by the compiler.
//
// Adapters for external vector types live in their own packages under
// adapter/, so a program only depends on the math libraries it imports.
//
// # Rendering
//
// [Render] samples a scalar spline into an evenly spaced buffer, suitable for
// automation envelopes and lookup tables.
//
// # Thread Safety
//
// Sampling never mutates a spline and is safe for concurrent use.
// [Spline.Add], [Spline.Remove] and [Spline.Replace] must not run
// concurrently with any other call on the same spline.
package spline
