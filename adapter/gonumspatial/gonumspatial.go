// Package gonumspatial makes gonum's spatial vectors and quaternions
// sample-able by spline.
//
// Importing this package is the only step needed; the spline core does not
// depend on gonum.
package gonumspatial

import (
	"github.com/tphakala/go-spline"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R2 implements spline.LinearOps for r2.Vec.
type R2 struct{}

// Add returns a + b.
func (R2) Add(a, b r2.Vec) r2.Vec { return r2.Add(a, b) }

// Sub returns a - b.
func (R2) Sub(a, b r2.Vec) r2.Vec { return r2.Sub(a, b) }

// OuterMul returns v scaled by t.
func (R2) OuterMul(v r2.Vec, t float64) r2.Vec { return r2.Scale(t, v) }

// OuterDiv returns v divided by t.
func (R2) OuterDiv(v r2.Vec, t float64) r2.Vec { return r2.Vec{X: v.X / t, Y: v.Y / t} }

// R3 implements spline.LinearOps for r3.Vec.
type R3 struct{}

// Add returns a + b.
func (R3) Add(a, b r3.Vec) r3.Vec { return r3.Add(a, b) }

// Sub returns a - b.
func (R3) Sub(a, b r3.Vec) r3.Vec { return r3.Sub(a, b) }

// OuterMul returns v scaled by t.
func (R3) OuterMul(v r3.Vec, t float64) r3.Vec { return r3.Scale(t, v) }

// OuterDiv returns v divided by t.
func (R3) OuterDiv(v r3.Vec, t float64) r3.Vec {
	return r3.Vec{X: v.X / t, Y: v.Y / t, Z: v.Z / t}
}

// Quat implements spline.LinearOps for quat.Number, treating quaternions as
// 4-D vectors. Interpolated rotations are not renormalized.
type Quat struct{}

// Add returns a + b.
func (Quat) Add(a, b quat.Number) quat.Number { return quat.Add(a, b) }

// Sub returns a - b.
func (Quat) Sub(a, b quat.Number) quat.Number { return quat.Sub(a, b) }

// OuterMul returns q scaled by t.
func (Quat) OuterMul(q quat.Number, t float64) quat.Number { return quat.Scale(t, q) }

// OuterDiv returns q divided by t.
func (Quat) OuterDiv(q quat.Number, t float64) quat.Number {
	return quat.Number{Real: q.Real / t, Imag: q.Imag / t, Jmag: q.Jmag / t, Kmag: q.Kmag / t}
}

// NewR2 creates a spline over r2.Vec values.
func NewR2(keys ...spline.Key[float64, r2.Vec]) *spline.Spline[float64, r2.Vec] {
	return spline.New(spline.Derive[float64, r2.Vec](R2{}), keys...)
}

// NewR3 creates a spline over r3.Vec values.
func NewR3(keys ...spline.Key[float64, r3.Vec]) *spline.Spline[float64, r3.Vec] {
	return spline.New(spline.Derive[float64, r3.Vec](R3{}), keys...)
}

// NewQuat creates a spline over quat.Number values.
func NewQuat(keys ...spline.Key[float64, quat.Number]) *spline.Spline[float64, quat.Number] {
	return spline.New(spline.Derive[float64, quat.Number](Quat{}), keys...)
}
