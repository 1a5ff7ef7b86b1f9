package keyspec

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-spline"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want spline.Key[float64, float64]
	}{
		{"default linear", "0:1", spline.LinearKey(0.0, 1.0)},
		{"spaces", " 1.5 : -2 ", spline.LinearKey(1.5, -2.0)},
		{"exponent", "1e1:2.5e-1", spline.LinearKey(10.0, 0.25)},
		{"linear", "2:3:linear", spline.LinearKey(2.0, 3.0)},
		{"cosine", "2:3:cosine", spline.CosineKey(2.0, 3.0)},
		{"catmullrom", "2:3:CatmullRom", spline.CatmullRomKey(2.0, 3.0)},
		{"step default", "0:0:step", spline.StepKey(0.0, 0.0, 0.5)},
		{"step threshold", "0:0:step=0.75", spline.StepKey(0.0, 0.0, 0.75)},
		{"bezier", "0:1:bezier=4", spline.BezierKey(0.0, 1.0, 4.0)},
		{"strokebezier", "5:1:strokebezier=0.5,1.5", spline.StrokeBezierKey(5.0, 1.0, 0.5, 1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	specs := []string{
		"",
		"1",
		"1:2:linear:extra",
		"x:1",
		"1:y",
		"1:NaN",
		"Inf:1",
		"1:2:spline",
		"1:2:linear=3",
		"1:2:step=1.5",
		"1:2:step=-0.1",
		"1:2:step=abc",
		"1:2:bezier",
		"1:2:bezier=",
		"1:2:strokebezier=1",
		"1:2:strokebezier=1,x",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestParseAll_StopsAtFirstError(t *testing.T) {
	keys, err := ParseAll([]string{"0:0", "bad", "1:1"})
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Nil(t, keys)

	keys, err = ParseAll([]string{"0:0", "1:1"})
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestBuild_SortsKeys(t *testing.T) {
	s, err := Build([]string{"3:1", "0:0:step=0.5", "2:0:step=0.1", "1:5"})
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())

	keys := s.Keys()
	for i := 1; i < len(keys); i++ {
		assert.LessOrEqual(t, keys[i-1].Time, keys[i].Time)
	}

	got, ok := s.Sample(1.5)
	require.True(t, ok)
	assert.InDelta(t, 2.5, got, 1e-12)

	got, ok = s.Sample(0.2)
	require.True(t, ok)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestBuild_DuplicateTimesKeepOrder(t *testing.T) {
	s, err := Build([]string{"1:20", "0:0", "1:10"})
	require.NoError(t, err)

	keys := s.Keys()
	require.Len(t, keys, 3)
	assert.InDelta(t, 20.0, keys[1].Value, 0)
	assert.InDelta(t, 10.0, keys[2].Value, 0)
}

func TestBuild_Error(t *testing.T) {
	s, err := Build([]string{"0:0", "1"})
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Nil(t, s)
}

func TestList_Flag(t *testing.T) {
	var keys List
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&keys, "key", "key spec")

	err := fs.Parse([]string{"-key", "0:0", "-key", "1:1:cosine"})
	require.NoError(t, err)
	assert.Equal(t, List{"0:0", "1:1:cosine"}, keys)
	assert.Equal(t, "0:0 1:1:cosine", keys.String())

	require.Error(t, keys.Set("broken"))
	assert.Len(t, keys, 2)
}
