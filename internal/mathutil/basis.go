// Package mathutil provides the polynomial basis functions used by spline interpolators.
package mathutil

import (
	"math"
)

// Float is the type constraint for the basis function parameter.
type Float interface {
	~float32 | ~float64
}

// Hermite returns the four cubic Hermite basis weights at s ∈ [0, 1].
//
// A Hermite segment with end points p0, p1 and tangents m0, m1 (already scaled
// to the segment length) evaluates to:
//
//	h00*p0 + h10*m0 + h01*p1 + h11*m1
//
// The weights satisfy h00(0) = 1, h01(1) = 1 and h10, h11 vanish at both ends.
func Hermite[F Float](s F) (h00, h10, h01, h11 F) {
	s2 := s * s
	s3 := s2 * s

	h00 = hermiteTwo*s3 - hermiteThree*s2 + 1
	h10 = s3 - hermiteTwo*s2 + s
	h01 = -hermiteTwo*s3 + hermiteThree*s2
	h11 = s3 - s2

	return h00, h10, h01, h11
}

// BernsteinQuadratic returns the quadratic Bernstein weights at s:
// (1-s)², 2(1-s)s, s².
func BernsteinQuadratic[F Float](s F) (b0, b1, b2 F) {
	ms := 1 - s

	return ms * ms, bernsteinQuadraticMiddle * ms * s, s * s
}

// BernsteinCubic returns the cubic Bernstein weights at s:
// (1-s)³, 3(1-s)²s, 3(1-s)s², s³.
func BernsteinCubic[F Float](s F) (b0, b1, b2, b3 F) {
	ms := 1 - s
	ms2 := ms * ms
	s2 := s * s

	return ms2 * ms, bernsteinCubicMiddle * ms2 * s, bernsteinCubicMiddle * ms * s2, s2 * s
}

// CosineEase maps s ∈ [0, 1] onto (1 - cos(πs)) / 2, the blending parameter
// of cosine interpolation. The result is 0 at s = 0 and 1 at s = 1.
func CosineEase[F Float](s F) F {
	return F((1 - math.Cos(math.Pi*float64(s))) / halfDivisor)
}

// Normalize returns the position of x within [lo, hi] as a fraction.
// A degenerate interval (hi <= lo) yields 0.
func Normalize[F Float](x, lo, hi F) F {
	if hi <= lo {
		return 0
	}

	return (x - lo) / (hi - lo)
}
