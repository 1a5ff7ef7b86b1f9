// Command envelope-wav applies a gain envelope to a WAV file.
//
// The envelope is a spline over time in seconds. Every frame is multiplied by
// the envelope's clamped value at the frame's time, so the first and last keys
// hold their gain before and after the keyed range.
//
// Usage:
//
//	envelope-wav -key 0:0 -key 0.5:1 input.wav output.wav                 # 500 ms fade in
//	envelope-wav -key 0:1 -key 2:1:cosine -key 3:0 input.wav output.wav  # cosine fade out after 2 s
//	envelope-wav -key 0:1:step=0.5 -key 1:0.5 -gain 0.8 in.wav out.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/keyspec"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var keys keyspec.List
	flag.Var(&keys, "key", "Envelope key as seconds:gain[:mode]; repeat for more keys")
	gain := flag.Float64("gain", defaultGain, "Gain applied on top of the envelope")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs || len(keys) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -key t:g [-key t:g ...] [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("insufficient arguments")
	}

	if *gain <= 0 {
		return fmt.Errorf("gain must be positive, got %g", *gain)
	}

	envelope, err := keyspec.Build(keys)
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Envelope: %d keys, gain %g", envelope.Len(), *gain)
	}

	stats, err := applyEnvelope(inputPath, outputPath, envelope, *gain, *verbose)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d frames (%d Hz, %d channels, %d-bit)\n",
		stats.frames, stats.rate, stats.channels, stats.bitDepth)
	if stats.clipped > 0 {
		fmt.Printf("Clipped %d samples\n", stats.clipped)
	}
	if *verbose && stats.frames > 0 {
		log.Printf("Mean gain: %.4f", stats.meanGain)
	}

	return nil
}

// envelopeStats summarizes a processed file.
type envelopeStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int64
	clipped  int
	meanGain float64
}

// applyEnvelope streams inputPath to outputPath, scaling every frame by the
// envelope. The output has the input's format.
func applyEnvelope(
	inputPath, outputPath string,
	envelope *spline.Spline[float64, float64],
	gain float64,
	verbose bool,
) (stats *envelopeStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	maxVal, _ := fullScale(input.bitDepth)

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// The header is only complete once the encoder is closed
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buf := &audio.IntBuffer{
		Data:           make([]int, bufferFrames*input.channels),
		Format:         input.format,
		SourceBitDepth: input.bitDepth,
	}
	renderer := &envelopeRenderer{
		envelope: envelope,
		rate:     float64(input.rate),
		gain:     gain,
	}
	stats = &envelopeStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
	}
	progress := newProgressTracker(input.totalFrames, verbose)

	for {
		buf.Data = buf.Data[:cap(buf.Data)]
		n, err := input.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}

		// n counts interleaved samples; a trailing partial frame is dropped
		frames := n / input.channels
		if frames == 0 {
			break
		}
		buf.Data = buf.Data[:frames*input.channels]

		gains, err := renderer.render(stats.frames, frames)
		if err != nil {
			return nil, err
		}
		stats.clipped += applyGains(buf.Data, gains, input.channels, maxVal)

		if err := output.Write(buf); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.frames += int64(frames)
		progress.reportIfNeeded(stats.frames)
	}

	if stats.frames > 0 {
		stats.meanGain = renderer.gainSum / float64(stats.frames)
	}

	return stats, nil
}
