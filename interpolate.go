package spline

import (
	"github.com/tphakala/go-spline/internal/mathutil"
)

// Float is the type constraint for time scalars.
type Float interface {
	~float32 | ~float64
}

// Additive is the capability of a value type to be added to and subtracted
// from itself. It is the base of every capability tier.
type Additive[V any] interface {
	// Add returns a + b.
	Add(a, b V) V

	// Sub returns a - b.
	Sub(a, b V) V
}

// LinearOps extends Additive with scaling by the time scalar T.
// Linear, Cosine and Catmull-Rom segments need this tier.
type LinearOps[T Float, V any] interface {
	Additive[V]

	// OuterMul returns v scaled by t.
	OuterMul(v V, t T) V

	// OuterDiv returns v divided by t.
	OuterDiv(v V, t T) V
}

// Interpolator is the full capability set a spline samples with: the linear
// tier plus the cubic blending primitives used by Catmull-Rom and the Bézier
// family. The parameter s is always the normalized segment position in [0, 1).
//
// Implementations must be stateless or safe for concurrent use; a spline
// shares its interpolator across all sampling calls.
type Interpolator[T Float, V any] interface {
	LinearOps[T, V]

	// CubicHermite blends end points p0, p1 with tangents m0, m1.
	// Tangents are expressed per unit of s, not per unit of time.
	CubicHermite(p0, m0, p1, m1 V, s T) V

	// QuadraticBezier evaluates the Bézier curve a, u, b.
	QuadraticBezier(a, u, b V, s T) V

	// CubicBezier evaluates the Bézier curve a, u, v, b.
	CubicBezier(a, u, v, b V, s T) V
}

// Derive completes a linear capability set into an Interpolator by building
// the cubic primitives from weighted sums. If ops already implements
// Interpolator it is returned unchanged.
func Derive[T Float, V any](ops LinearOps[T, V]) Interpolator[T, V] {
	if ip, ok := ops.(Interpolator[T, V]); ok {
		return ip
	}

	return derived[T, V]{LinearOps: ops}
}

// derived synthesizes the cubic tier from LinearOps.
type derived[T Float, V any] struct {
	LinearOps[T, V]
}

func (d derived[T, V]) CubicHermite(p0, m0, p1, m1 V, s T) V {
	h00, h10, h01, h11 := mathutil.Hermite(s)

	return weighted4[T, V](d.LinearOps, p0, h00, m0, h10, p1, h01, m1, h11)
}

func (d derived[T, V]) QuadraticBezier(a, u, b V, s T) V {
	b0, b1, b2 := mathutil.BernsteinQuadratic(s)

	return d.Add(d.Add(d.OuterMul(a, b0), d.OuterMul(u, b1)), d.OuterMul(b, b2))
}

func (d derived[T, V]) CubicBezier(a, u, v, b V, s T) V {
	b0, b1, b2, b3 := mathutil.BernsteinCubic(s)

	return weighted4[T, V](d.LinearOps, a, b0, u, b1, v, b2, b, b3)
}

// weighted4 returns wa*a + wb*b + wc*c + wd*d.
func weighted4[T Float, V any](ops LinearOps[T, V], a V, wa T, b V, wb T, c V, wc T, d V, wd T) V {
	return ops.Add(
		ops.Add(ops.OuterMul(a, wa), ops.OuterMul(b, wb)),
		ops.Add(ops.OuterMul(c, wc), ops.OuterMul(d, wd)),
	)
}

// lerp returns a + (b - a)*s.
func lerp[T Float, V any](ops LinearOps[T, V], a, b V, s T) V {
	return ops.Add(a, ops.OuterMul(ops.Sub(b, a), s))
}

// Scalar is the Interpolator for plain floating-point values, where the
// value type is the time type itself.
type Scalar[T Float] struct{}

var _ Interpolator[float64, float64] = Scalar[float64]{}

// Add returns a + b.
func (Scalar[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Scalar[T]) Sub(a, b T) T { return a - b }

// OuterMul returns v * t.
func (Scalar[T]) OuterMul(v, t T) T { return v * t }

// OuterDiv returns v / t.
func (Scalar[T]) OuterDiv(v, t T) T { return v / t }

// CubicHermite blends p0, p1 with tangents m0, m1.
func (Scalar[T]) CubicHermite(p0, m0, p1, m1, s T) T {
	h00, h10, h01, h11 := mathutil.Hermite(s)

	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

// QuadraticBezier evaluates the quadratic Bézier curve a, u, b.
func (Scalar[T]) QuadraticBezier(a, u, b, s T) T {
	b0, b1, b2 := mathutil.BernsteinQuadratic(s)

	return b0*a + b1*u + b2*b
}

// CubicBezier evaluates the cubic Bézier curve a, u, v, b.
func (Scalar[T]) CubicBezier(a, u, v, b, s T) T {
	b0, b1, b2, b3 := mathutil.BernsteinCubic(s)

	return b0*a + b1*u + b2*v + b3*b
}

// Value is the method set that makes a user type sample-able without writing
// an Interpolator: componentwise addition, subtraction and scaling by T.
// The vec package types satisfy it.
type Value[T Float, V any] interface {
	Add(V) V
	Sub(V) V
	Mul(T) V
	Div(T) V
}

// Methods adapts a type implementing Value to LinearOps. Pass it through
// Derive, or use NewVector, to obtain an Interpolator.
type Methods[T Float, V Value[T, V]] struct{}

// Add returns a.Add(b).
func (Methods[T, V]) Add(a, b V) V { return a.Add(b) }

// Sub returns a.Sub(b).
func (Methods[T, V]) Sub(a, b V) V { return a.Sub(b) }

// OuterMul returns v.Mul(t).
func (Methods[T, V]) OuterMul(v V, t T) V { return v.Mul(t) }

// OuterDiv returns v.Div(t).
func (Methods[T, V]) OuterDiv(v V, t T) V { return v.Div(t) }
