package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const vecTolerance = 1e-12

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2[float64]{1, 2}
	b := Vec2[float64]{3, -4}

	assert.Equal(t, Vec2[float64]{4, -2}, a.Add(b))
	assert.Equal(t, Vec2[float64]{-2, 6}, a.Sub(b))
	assert.Equal(t, Vec2[float64]{2, 4}, a.Mul(2))
	assert.Equal(t, Vec2[float64]{0.5, 1}, a.Div(2))
	assert.InDelta(t, -5.0, a.Dot(b), vecTolerance)
	assert.InDelta(t, 5.0, b.Len(), vecTolerance)
}

func TestVec2_Lerp(t *testing.T) {
	a := Vec2[float64]{0, 0}
	b := Vec2[float64]{1, 1}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec2[float64]{0.5, 0.5}, a.Lerp(b, 0.5))
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{4, 5, 6}

	assert.Equal(t, Vec3[float64]{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3[float64]{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3[float64]{3, 6, 9}, a.Mul(3))
	assert.Equal(t, Vec3[float64]{2, 2.5, 3}, b.Div(2))
	assert.InDelta(t, 32.0, a.Dot(b), vecTolerance)
	assert.InDelta(t, 3.0, Vec3[float64]{1, 2, 2}.Len(), vecTolerance)
}

func TestVec3_Cross(t *testing.T) {
	x := Vec3[float64]{1, 0, 0}
	y := Vec3[float64]{0, 1, 0}

	assert.Equal(t, Vec3[float64]{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vec3[float64]{0, 0, -1}, y.Cross(x))
}

func TestVec4_Arithmetic(t *testing.T) {
	a := Vec4[float32]{1, 2, 3, 4}
	b := Vec4[float32]{4, 3, 2, 1}

	assert.Equal(t, Vec4[float32]{5, 5, 5, 5}, a.Add(b))
	assert.Equal(t, Vec4[float32]{-3, -1, 1, 3}, a.Sub(b))
	assert.Equal(t, Vec4[float32]{0.5, 1, 1.5, 2}, a.Div(2))
	assert.InDelta(t, 20.0, float64(a.Dot(b)), 1e-6)
	assert.Equal(t, Vec4[float32]{2.5, 2.5, 2.5, 2.5}, a.Lerp(b, 0.5))
}

func TestVec_Indexable(t *testing.T) {
	v := Vec2[float64]{0, 1}
	assert.InDelta(t, 1.0, v[1], vecTolerance)

	c := Vec4[float64]{0.1, 0.2, 0.3, 1}
	assert.InDelta(t, 1.0, c[3], vecTolerance)
}
