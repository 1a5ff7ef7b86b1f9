package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-spline/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Common errors returned by Render.
var (
	// ErrInvalidConfig indicates invalid render configuration parameters.
	ErrInvalidConfig = errors.New("invalid render configuration")

	// ErrEmptySpline indicates that the spline has no keys to render.
	ErrEmptySpline = errors.New("spline has no keys")
)

// RenderConfig describes how a scalar spline is rendered into a buffer.
type RenderConfig struct {
	// Start is the time of the first frame.
	Start float64

	// End is the time of the last frame. It must be greater than Start
	// when more than one frame is rendered.
	End float64

	// Frames is the number of evenly spaced samples, including both ends.
	// A single frame samples Start.
	Frames int

	// Gain scales every rendered sample. Zero means unity gain.
	Gain float64
}

// Validate checks if the configuration is valid.
func (c *RenderConfig) Validate() error {
	if c.Frames < minFrames {
		return fmt.Errorf("%w: frames must be at least %d", ErrInvalidConfig, minFrames)
	}

	if !isFinite(c.Start) || !isFinite(c.End) {
		return fmt.Errorf("%w: start and end must be finite", ErrInvalidConfig)
	}

	if c.Frames >= spanFrames && c.End <= c.Start {
		return fmt.Errorf("%w: end must be greater than start", ErrInvalidConfig)
	}

	if !isFinite(c.Gain) {
		return fmt.Errorf("%w: gain must be finite", ErrInvalidConfig)
	}

	return nil
}

// Render clamped-samples a scalar spline at cfg.Frames evenly spaced times
// over [cfg.Start, cfg.End] and scales the result by cfg.Gain.
func Render[F float32 | float64](s *Spline[F, F], cfg RenderConfig) ([]F, error) {
	if s == nil || s.IsEmpty() {
		return nil, ErrEmptySpline
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	times := make([]float64, cfg.Frames)
	if cfg.Frames < spanFrames {
		times[0] = cfg.Start
	} else {
		floats.Span(times, cfg.Start, cfg.End)
	}

	output := make([]F, cfg.Frames)
	for i, t := range times {
		// Cannot fail: the spline is not empty.
		output[i], _ = s.ClampedSample(F(t))
	}

	gain := cfg.Gain
	if gain == 0 {
		gain = unityGain
	}

	if gain != unityGain {
		simdops.For[F]().Scale(output, output, F(gain))
	}

	return output, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
