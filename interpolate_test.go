package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-spline/internal/testutil"
	"github.com/tphakala/go-spline/vec"
)

// linearOnly implements LinearOps but not the cubic tier.
type linearOnly struct{}

func (linearOnly) Add(a, b float64) float64 { return a + b }
func (linearOnly) Sub(a, b float64) float64 { return a - b }
func (linearOnly) OuterMul(v, t float64) float64 { return v * t }
func (linearOnly) OuterDiv(v, t float64) float64 { return v / t }

func TestDerive_ReturnsExistingInterpolator(t *testing.T) {
	ip := Derive[float64, float64](Scalar[float64]{})
	_, isScalar := ip.(Scalar[float64])
	assert.True(t, isScalar)
}

func TestDerive_MatchesScalar(t *testing.T) {
	derived := Derive[float64, float64](linearOnly{})
	scalar := Scalar[float64]{}

	for _, s := range []float64{0, 0.1, 0.25, 0.5, 0.8, 1} {
		assert.InDelta(t,
			scalar.CubicHermite(1, -2, 3, 0.5, s),
			derived.CubicHermite(1, -2, 3, 0.5, s),
			testutil.DefaultTolerance, "hermite s=%g", s)
		assert.InDelta(t,
			scalar.QuadraticBezier(1, 4, -1, s),
			derived.QuadraticBezier(1, 4, -1, s),
			testutil.DefaultTolerance, "quadratic s=%g", s)
		assert.InDelta(t,
			scalar.CubicBezier(1, 4, -1, 2, s),
			derived.CubicBezier(1, 4, -1, 2, s),
			testutil.DefaultTolerance, "cubic s=%g", s)
	}
}

func TestScalar_Endpoints(t *testing.T) {
	ip := Scalar[float64]{}

	assert.InDelta(t, 2.0, ip.CubicHermite(2, 5, 7, -3, 0), 0)
	assert.InDelta(t, 7.0, ip.CubicHermite(2, 5, 7, -3, 1), 0)
	assert.InDelta(t, 2.0, ip.QuadraticBezier(2, 5, 7, 0), 0)
	assert.InDelta(t, 7.0, ip.QuadraticBezier(2, 5, 7, 1), 0)
	assert.InDelta(t, 2.0, ip.CubicBezier(2, 5, -1, 7, 0), 0)
	assert.InDelta(t, 7.0, ip.CubicBezier(2, 5, -1, 7, 1), 0)
}

func TestScalar_Arithmetic(t *testing.T) {
	ip := Scalar[float32]{}

	assert.InDelta(t, 5.0, float64(ip.Add(2, 3)), 0)
	assert.InDelta(t, -1.0, float64(ip.Sub(2, 3)), 0)
	assert.InDelta(t, 6.0, float64(ip.OuterMul(2, 3)), 0)
	assert.InDelta(t, 0.5, float64(ip.OuterDiv(2, 4)), 0)
}

func TestMethods_Vec(t *testing.T) {
	ip := Derive[float64, vec.Vec2[float64]](Methods[float64, vec.Vec2[float64]]{})

	a := vec.Vec2[float64]{1, 2}
	b := vec.Vec2[float64]{3, 6}

	assert.Equal(t, vec.Vec2[float64]{4, 8}, ip.Add(a, b))
	assert.Equal(t, vec.Vec2[float64]{2, 4}, ip.Sub(b, a))
	assert.Equal(t, vec.Vec2[float64]{2, 4}, ip.OuterMul(a, 2))
	assert.Equal(t, vec.Vec2[float64]{1.5, 3}, ip.OuterDiv(b, 2))

	// A straight cubic: handles at thirds
	mid := ip.CubicBezier(
		vec.Vec2[float64]{0, 0},
		vec.Vec2[float64]{1, 1},
		vec.Vec2[float64]{2, 2},
		vec.Vec2[float64]{3, 3},
		0.5,
	)
	assert.InDelta(t, 1.5, mid[0], testutil.DefaultTolerance)
	assert.InDelta(t, 1.5, mid[1], testutil.DefaultTolerance)
}

func TestNew_CustomInterpolator(t *testing.T) {
	s := New(Derive[float64, float64](linearOnly{}),
		CatmullRomKey(0.0, 0.0),
		CatmullRomKey(1.0, 1.0),
		CatmullRomKey(2.0, 4.0),
		CatmullRomKey(3.0, 9.0),
	)
	ref := NewScalar(s.Keys()...)

	for tm := 0.0; tm < 3; tm += 0.1 {
		got, ok := s.Sample(tm)
		want, _ := ref.Sample(tm)
		assert.True(t, ok)
		assert.InDelta(t, want, got, testutil.DefaultTolerance, "t=%g", tm)
	}
}
