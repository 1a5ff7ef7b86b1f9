// Package keyspec parses spline keys written on the command line.
//
// A key is written as "t:v" or "t:v:mode", where mode is one of
//
//	linear
//	cosine
//	catmullrom
//	step or step=th
//	bezier=u
//	strokebezier=in,out
//
// Keys without a mode are Linear.
package keyspec

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"github.com/tphakala/go-spline"
)

// ErrInvalidKey indicates a key spec that cannot be parsed.
var ErrInvalidKey = errors.New("invalid key spec")

const (
	fieldSep = ":"
	paramSep = "="
	listSep  = ","

	minFields = 2
	maxFields = 3

	// defaultStepThreshold switches to the right value halfway through the segment.
	defaultStepThreshold = 0.5
)

// Parse parses a single key spec.
func Parse(s string) (spline.Key[float64, float64], error) {
	var key spline.Key[float64, float64]

	fields := strings.Split(strings.TrimSpace(s), fieldSep)
	if len(fields) < minFields || len(fields) > maxFields {
		return key, fmt.Errorf("%w: %q: want t:v[:mode]", ErrInvalidKey, s)
	}

	t, err := parseNumber(fields[0])
	if err != nil {
		return key, fmt.Errorf("%w: %q: time: %w", ErrInvalidKey, s, err)
	}

	v, err := parseNumber(fields[1])
	if err != nil {
		return key, fmt.Errorf("%w: %q: value: %w", ErrInvalidKey, s, err)
	}

	mode := spline.Interpolation[float64]{Kind: spline.Linear}
	if len(fields) == maxFields {
		mode, err = parseMode(fields[2])
		if err != nil {
			return key, fmt.Errorf("%w: %q: %w", ErrInvalidKey, s, err)
		}
	}

	return spline.NewKey(t, v, mode), nil
}

// ParseAll parses every spec, stopping at the first error.
func ParseAll(specs []string) ([]spline.Key[float64, float64], error) {
	keys := make([]spline.Key[float64, float64], 0, len(specs))
	for _, s := range specs {
		key, err := Parse(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// Build parses specs into a scalar spline. Specs may be given in any order;
// keys sharing a time keep the order in which they were written.
func Build(specs []string) (*spline.Spline[float64, float64], error) {
	keys, err := ParseAll(specs)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(keys, func(a, b spline.Key[float64, float64]) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	s := spline.NewScalar[float64]()
	for _, key := range keys {
		s.Add(key)
	}

	return s, nil
}

func parseMode(s string) (spline.Interpolation[float64], error) {
	name, param, hasParam := strings.Cut(strings.ToLower(strings.TrimSpace(s)), paramSep)

	switch name {
	case "linear", "cosine", "catmullrom":
		if hasParam {
			return spline.Interpolation[float64]{}, fmt.Errorf("mode %s takes no parameter", name)
		}
		return spline.Interpolation[float64]{Kind: namedKinds[name]}, nil

	case "step":
		th := defaultStepThreshold
		if hasParam {
			var err error
			if th, err = parseNumber(param); err != nil {
				return spline.Interpolation[float64]{}, fmt.Errorf("step threshold: %w", err)
			}
		}
		if th < 0 || th > 1 {
			return spline.Interpolation[float64]{}, fmt.Errorf("step threshold %g outside [0, 1]", th)
		}
		return spline.StepMode[float64](th), nil

	case "bezier":
		if !hasParam {
			return spline.Interpolation[float64]{}, errors.New("bezier needs a handle: bezier=u")
		}
		u, err := parseNumber(param)
		if err != nil {
			return spline.Interpolation[float64]{}, fmt.Errorf("bezier handle: %w", err)
		}
		return spline.BezierMode(u), nil

	case "strokebezier":
		in, out, ok := strings.Cut(param, listSep)
		if !hasParam || !ok {
			return spline.Interpolation[float64]{}, errors.New("strokebezier needs two handles: strokebezier=in,out")
		}
		a, err := parseNumber(in)
		if err != nil {
			return spline.Interpolation[float64]{}, fmt.Errorf("strokebezier in handle: %w", err)
		}
		b, err := parseNumber(out)
		if err != nil {
			return spline.Interpolation[float64]{}, fmt.Errorf("strokebezier out handle: %w", err)
		}
		return spline.StrokeBezierMode(a, b), nil

	default:
		return spline.Interpolation[float64]{}, fmt.Errorf("unknown mode %q", name)
	}
}

var namedKinds = map[string]spline.Kind{
	"linear":     spline.Linear,
	"cosine":     spline.Cosine,
	"catmullrom": spline.CatmullRom,
}

// parseNumber accepts any finite number cast understands.
func parseNumber(s string) (float64, error) {
	x, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%s is not finite", s)
	}

	return x, nil
}

// List is a repeatable flag collecting key specs.
type List []string

// String implements flag.Value.
func (l *List) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, " ")
}

// Set implements flag.Value. Each value is validated as it is added.
func (l *List) Set(s string) error {
	if _, err := Parse(s); err != nil {
		return err
	}
	*l = append(*l, s)
	return nil
}
