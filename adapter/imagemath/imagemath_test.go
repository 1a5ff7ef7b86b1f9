package imagemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-spline"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

func TestF64Vec2_Linear(t *testing.T) {
	s := NewF64Vec2(
		spline.LinearKey(0.0, f64.Vec2{0, 0}),
		spline.LinearKey(1.0, f64.Vec2{1, 1}),
	)

	got, ok := s.Sample(0.5)
	require.True(t, ok)
	assert.Equal(t, f64.Vec2{0.5, 0.5}, got)
}

func TestF64Vec3_Step(t *testing.T) {
	s := NewF64Vec3(
		spline.StepKey(0.0, f64.Vec3{1, 2, 3}, 0.5),
		spline.LinearKey(1.0, f64.Vec3{4, 5, 6}),
	)

	got, ok := s.Sample(0.25)
	require.True(t, ok)
	assert.Equal(t, f64.Vec3{1, 2, 3}, got)

	got, ok = s.Sample(0.75)
	require.True(t, ok)
	assert.Equal(t, f64.Vec3{4, 5, 6}, got)
}

func TestF64Vec4_ColorFade(t *testing.T) {
	red := f64.Vec4{1, 0, 0, 1}
	blue := f64.Vec4{0, 0, 1, 1}
	s := NewF64Vec4(spline.LinearKey(0.0, red), spline.LinearKey(4.0, blue))

	got, ok := s.Sample(1)
	require.True(t, ok)
	assert.InDelta(t, 0.75, got[0], 1e-12)
	assert.InDelta(t, 0.25, got[2], 1e-12)
	assert.InDelta(t, 1.0, got[3], 1e-12)

	got, ok = s.ClampedSample(10)
	require.True(t, ok)
	assert.Equal(t, blue, got)
}

func TestF32Vectors(t *testing.T) {
	s2 := NewF32Vec2(
		spline.LinearKey[float32](0, f32.Vec2{0, 2}),
		spline.LinearKey[float32](2, f32.Vec2{2, 0}),
	)
	got2, ok := s2.Sample(1)
	require.True(t, ok)
	assert.Equal(t, f32.Vec2{1, 1}, got2)

	s3 := NewF32Vec3(
		spline.BezierKey[float32](0, f32.Vec3{0, 0, 0}, f32.Vec3{0, 0, 0}),
		spline.LinearKey[float32](1, f32.Vec3{3, 3, 3}),
	)
	got3, ok := s3.ClampedSample(1)
	require.True(t, ok)
	assert.Equal(t, f32.Vec3{3, 3, 3}, got3)

	s4 := NewF32Vec4(
		spline.CosineKey[float32](0, f32.Vec4{0, 0, 0, 0}),
		spline.LinearKey[float32](1, f32.Vec4{1, 1, 1, 1}),
	)
	got4, ok := s4.Sample(0)
	require.True(t, ok)
	assert.Equal(t, f32.Vec4{0, 0, 0, 0}, got4)
}
