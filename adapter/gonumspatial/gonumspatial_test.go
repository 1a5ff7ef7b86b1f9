package gonumspatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-spline"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-12

func TestR2_LinearMidpoint(t *testing.T) {
	s := NewR2(
		spline.LinearKey(0.0, r2.Vec{X: 0, Y: 0}),
		spline.LinearKey(1.0, r2.Vec{X: 1, Y: 1}),
	)

	got, ok := s.Sample(0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.5, got.X, tolerance)
	assert.InDelta(t, 0.5, got.Y, tolerance)
}

func TestR2_StrokeBezierStraight(t *testing.T) {
	s := NewR2(
		spline.StrokeBezierKey(0.0, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 0, Y: 1}),
		spline.StrokeBezierKey(5.0, r2.Vec{X: 5, Y: 1}, r2.Vec{X: 5, Y: 1}, r2.Vec{X: 5, Y: 1}),
	)

	for _, at := range []float64{0, 1, 2, 3, 4, 5} {
		got, ok := s.ClampedSample(at)
		require.True(t, ok)
		assert.InDelta(t, 1.0, got.Y, tolerance, "t=%v", at)
	}
}

func TestR3_CatmullRomPassesThroughKeys(t *testing.T) {
	keys := []spline.Key[float64, r3.Vec]{
		spline.CatmullRomKey(0.0, r3.Vec{X: 0, Y: 0, Z: 0}),
		spline.CatmullRomKey(1.0, r3.Vec{X: 1, Y: 2, Z: 0}),
		spline.CatmullRomKey(2.0, r3.Vec{X: 2, Y: 0, Z: 1}),
		spline.CatmullRomKey(3.0, r3.Vec{X: 3, Y: 1, Z: 2}),
	}
	s := NewR3(keys...)

	for _, k := range keys[:len(keys)-1] {
		got, ok := s.Sample(k.Time)
		require.True(t, ok)
		assert.InDelta(t, k.Value.X, got.X, tolerance)
		assert.InDelta(t, k.Value.Y, got.Y, tolerance)
		assert.InDelta(t, k.Value.Z, got.Z, tolerance)
	}
}

func TestQuat_CosineMidpoint(t *testing.T) {
	s := NewQuat(
		spline.CosineKey(0.0, quat.Number{Real: 1}),
		spline.CosineKey(2.0, quat.Number{Kmag: 1}),
	)

	got, ok := s.Sample(1)
	require.True(t, ok)
	assert.InDelta(t, 0.5, got.Real, tolerance)
	assert.InDelta(t, 0.5, got.Kmag, tolerance)
	assert.InDelta(t, 0.0, got.Imag, tolerance)
}

func TestOuterDiv(t *testing.T) {
	assert.Equal(t, r2.Vec{X: 1, Y: 2}, R2{}.OuterDiv(r2.Vec{X: 2, Y: 4}, 2))
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, R3{}.OuterDiv(r3.Vec{X: 2, Y: 4, Z: 6}, 2))
	assert.Equal(t, quat.Number{Real: 1, Imag: 2, Jmag: 3, Kmag: 4},
		Quat{}.OuterDiv(quat.Number{Real: 2, Imag: 4, Jmag: 6, Kmag: 8}, 2))
}
