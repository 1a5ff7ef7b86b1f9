// Package vec provides small generic vectors that satisfy spline.Value.
//
// The vectors are arrays, so components are addressed by index:
//
//	v := vec.Vec2[float64]{0, 1}
//	y := v[1]
package vec

import (
	"math"
)

// Float is the type constraint for vector components.
type Float interface {
	~float32 | ~float64
}

// Vec2 is a 2-D vector.
type Vec2[T Float] [2]T

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + w[0], v[1] + w[1]}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - w[0], v[1] - w[1]}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{v[0] * s, v[1] * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{v[0] / s, v[1] / s}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v[0]*w[0] + v[1]*w[1]
}

// Len returns the Euclidean length of the vector.
func (v Vec2[T]) Len() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vec2[T]) Lerp(w Vec2[T], t T) Vec2[T] {
	return v.Add(w.Sub(v).Mul(t))
}

// Vec3 is a 3-D vector.
type Vec3[T Float] [3]T

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the difference of two vectors.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// Div returns the vector divided by a scalar.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{v[0] / s, v[1] / s, v[2] / s}
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Len returns the Euclidean length of the vector.
func (v Vec3[T]) Len() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Lerp performs linear interpolation between two vectors.
func (v Vec3[T]) Lerp(w Vec3[T], t T) Vec3[T] {
	return v.Add(w.Sub(v).Mul(t))
}

// Vec4 is a 4-D vector, e.g. a homogeneous point or an RGBA color.
type Vec4[T Float] [4]T

// Add returns the sum of two vectors.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the difference of two vectors.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul returns the vector scaled by a scalar.
func (v Vec4[T]) Mul(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Div returns the vector divided by a scalar.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return Vec4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Dot returns the dot product of two vectors.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// Len returns the Euclidean length of the vector.
func (v Vec4[T]) Len() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Lerp performs linear interpolation between two vectors.
func (v Vec4[T]) Lerp(w Vec4[T], t T) Vec4[T] {
	return v.Add(w.Sub(v).Mul(t))
}
