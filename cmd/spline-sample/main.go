package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/keyspec"
)

var errNoKeys = errors.New("no keys given, use -key t:v[:mode] or -demo")

func main() {
	// Command-line flags
	var keys keyspec.List
	flag.Var(&keys, "key", "Key as t:v[:mode]; repeat for more keys. Modes: linear, cosine, catmullrom, step[=th], bezier=u, strokebezier=in,out")
	var (
		from    = flag.Float64("from", math.NaN(), "First sample time (default: first key)")
		to      = flag.Float64("to", math.NaN(), "Last sample time (default: last key)")
		step    = flag.Float64("step", defaultStep, "Sampling interval")
		clamped = flag.Bool("clamped", false, "Clamp samples outside the keys instead of printing "+outOfRange)
		demo    = flag.Bool("demo", false, "Sample a spline that uses every interpolation mode")
		verbose = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	specs := []string(keys)
	if *demo {
		specs = demoKeys
	}

	if len(specs) == 0 {
		log.Fatal(errNoKeys)
	}

	s, err := keyspec.Build(specs)
	if err != nil {
		log.Fatalf("Failed to build spline: %v", err)
	}

	if *verbose {
		for i, k := range s.Keys() {
			log.Printf("key %d: t=%g v=%g mode=%s", i, k.Time, k.Value, k.Mode)
		}
	}

	rng, err := resolveRange(s, *from, *to, *step)
	if err != nil {
		log.Fatalf("Invalid range: %v", err)
	}

	if *verbose {
		log.Printf("sampling [%g, %g] every %g (%d rows, clamped=%v)", rng.from, rng.to, rng.step, rng.rows, *clamped)
	}

	writeSamples(os.Stdout, s, rng, *clamped)
}

// sampleRange is a validated set of sampling times.
type sampleRange struct {
	from, to, step float64
	rows           int
}

// resolveRange fills NaN bounds from the spline's keys and validates the result.
func resolveRange(s *spline.Spline[float64, float64], from, to, step float64) (sampleRange, error) {
	start, end, _ := s.Bounds()
	if math.IsNaN(from) {
		from = start
	}
	if math.IsNaN(to) {
		to = end
	}

	if math.IsInf(from, 0) || math.IsInf(to, 0) {
		return sampleRange{}, errors.New("bounds must be finite")
	}
	if to < from {
		return sampleRange{}, fmt.Errorf("to (%g) is before from (%g)", to, from)
	}
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return sampleRange{}, fmt.Errorf("step must be positive, got %g", step)
	}

	rows := int(math.Floor((to-from)/step)) + 1
	if rows > maxRows {
		return sampleRange{}, fmt.Errorf("%d rows exceeds the limit of %d", rows, maxRows)
	}

	return sampleRange{from: from, to: to, step: step, rows: rows}, nil
}

// writeSamples prints one "t value" row per sampling time.
func writeSamples(w io.Writer, s *spline.Spline[float64, float64], rng sampleRange, clamped bool) {
	for i := range rng.rows {
		t := rng.from + float64(i)*rng.step

		var (
			v  float64
			ok bool
		)
		if clamped {
			v, ok = s.ClampedSample(t)
		} else {
			v, ok = s.Sample(t)
		}

		if !ok {
			fmt.Fprintf(w, "%g\t%s\n", t, outOfRange)
			continue
		}
		fmt.Fprintf(w, "%g\t%g\n", t, v)
	}
}
