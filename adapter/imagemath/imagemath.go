// Package imagemath makes the fixed-size vectors of golang.org/x/image/math
// sample-able by spline.
//
// The f64 and f32 vector types share their underlying arrays with the vec
// package, so arithmetic is delegated to vec through conversions.
package imagemath

import (
	"github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/vec"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// F64Vec2 implements spline.LinearOps for f64.Vec2.
type F64Vec2 struct{}

func (F64Vec2) Add(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2(vec.Vec2[float64](a).Add(vec.Vec2[float64](b)))
}

func (F64Vec2) Sub(a, b f64.Vec2) f64.Vec2 {
	return f64.Vec2(vec.Vec2[float64](a).Sub(vec.Vec2[float64](b)))
}

func (F64Vec2) OuterMul(v f64.Vec2, t float64) f64.Vec2 {
	return f64.Vec2(vec.Vec2[float64](v).Mul(t))
}

func (F64Vec2) OuterDiv(v f64.Vec2, t float64) f64.Vec2 {
	return f64.Vec2(vec.Vec2[float64](v).Div(t))
}

// F64Vec3 implements spline.LinearOps for f64.Vec3.
type F64Vec3 struct{}

func (F64Vec3) Add(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3(vec.Vec3[float64](a).Add(vec.Vec3[float64](b)))
}

func (F64Vec3) Sub(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3(vec.Vec3[float64](a).Sub(vec.Vec3[float64](b)))
}

func (F64Vec3) OuterMul(v f64.Vec3, t float64) f64.Vec3 {
	return f64.Vec3(vec.Vec3[float64](v).Mul(t))
}

func (F64Vec3) OuterDiv(v f64.Vec3, t float64) f64.Vec3 {
	return f64.Vec3(vec.Vec3[float64](v).Div(t))
}

// F64Vec4 implements spline.LinearOps for f64.Vec4.
type F64Vec4 struct{}

func (F64Vec4) Add(a, b f64.Vec4) f64.Vec4 {
	return f64.Vec4(vec.Vec4[float64](a).Add(vec.Vec4[float64](b)))
}

func (F64Vec4) Sub(a, b f64.Vec4) f64.Vec4 {
	return f64.Vec4(vec.Vec4[float64](a).Sub(vec.Vec4[float64](b)))
}

func (F64Vec4) OuterMul(v f64.Vec4, t float64) f64.Vec4 {
	return f64.Vec4(vec.Vec4[float64](v).Mul(t))
}

func (F64Vec4) OuterDiv(v f64.Vec4, t float64) f64.Vec4 {
	return f64.Vec4(vec.Vec4[float64](v).Div(t))
}

// F32Vec2 implements spline.LinearOps for f32.Vec2.
type F32Vec2 struct{}

func (F32Vec2) Add(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2(vec.Vec2[float32](a).Add(vec.Vec2[float32](b)))
}

func (F32Vec2) Sub(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2(vec.Vec2[float32](a).Sub(vec.Vec2[float32](b)))
}

func (F32Vec2) OuterMul(v f32.Vec2, t float32) f32.Vec2 {
	return f32.Vec2(vec.Vec2[float32](v).Mul(t))
}

func (F32Vec2) OuterDiv(v f32.Vec2, t float32) f32.Vec2 {
	return f32.Vec2(vec.Vec2[float32](v).Div(t))
}

// F32Vec3 implements spline.LinearOps for f32.Vec3.
type F32Vec3 struct{}

func (F32Vec3) Add(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3(vec.Vec3[float32](a).Add(vec.Vec3[float32](b)))
}

func (F32Vec3) Sub(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3(vec.Vec3[float32](a).Sub(vec.Vec3[float32](b)))
}

func (F32Vec3) OuterMul(v f32.Vec3, t float32) f32.Vec3 {
	return f32.Vec3(vec.Vec3[float32](v).Mul(t))
}

func (F32Vec3) OuterDiv(v f32.Vec3, t float32) f32.Vec3 {
	return f32.Vec3(vec.Vec3[float32](v).Div(t))
}

// F32Vec4 implements spline.LinearOps for f32.Vec4.
type F32Vec4 struct{}

func (F32Vec4) Add(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4(vec.Vec4[float32](a).Add(vec.Vec4[float32](b)))
}

func (F32Vec4) Sub(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4(vec.Vec4[float32](a).Sub(vec.Vec4[float32](b)))
}

func (F32Vec4) OuterMul(v f32.Vec4, t float32) f32.Vec4 {
	return f32.Vec4(vec.Vec4[float32](v).Mul(t))
}

func (F32Vec4) OuterDiv(v f32.Vec4, t float32) f32.Vec4 {
	return f32.Vec4(vec.Vec4[float32](v).Div(t))
}

// NewF64Vec2 creates a spline over f64.Vec2 values.
func NewF64Vec2(keys ...spline.Key[float64, f64.Vec2]) *spline.Spline[float64, f64.Vec2] {
	return spline.New(spline.Derive[float64, f64.Vec2](F64Vec2{}), keys...)
}

// NewF64Vec3 creates a spline over f64.Vec3 values.
func NewF64Vec3(keys ...spline.Key[float64, f64.Vec3]) *spline.Spline[float64, f64.Vec3] {
	return spline.New(spline.Derive[float64, f64.Vec3](F64Vec3{}), keys...)
}

// NewF64Vec4 creates a spline over f64.Vec4 values, e.g. RGBA colors.
func NewF64Vec4(keys ...spline.Key[float64, f64.Vec4]) *spline.Spline[float64, f64.Vec4] {
	return spline.New(spline.Derive[float64, f64.Vec4](F64Vec4{}), keys...)
}

// NewF32Vec2 creates a spline over f32.Vec2 values.
func NewF32Vec2(keys ...spline.Key[float32, f32.Vec2]) *spline.Spline[float32, f32.Vec2] {
	return spline.New(spline.Derive[float32, f32.Vec2](F32Vec2{}), keys...)
}

// NewF32Vec3 creates a spline over f32.Vec3 values.
func NewF32Vec3(keys ...spline.Key[float32, f32.Vec3]) *spline.Spline[float32, f32.Vec3] {
	return spline.New(spline.Derive[float32, f32.Vec3](F32Vec3{}), keys...)
}

// NewF32Vec4 creates a spline over f32.Vec4 values.
func NewF32Vec4(keys ...spline.Key[float32, f32.Vec4]) *spline.Spline[float32, f32.Vec4] {
	return spline.New(spline.Derive[float32, f32.Vec4](F32Vec4{}), keys...)
}
