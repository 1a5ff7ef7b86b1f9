package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/simdops"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	rate        int
	channels    int
	bitDepth    int
	totalFrames int64
	format      *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if _, ok := fullScale(bitDepth); !ok {
		_ = inputFile.Close()
		return nil, fmt.Errorf("unsupported bit depth %d (want 16, 24 or 32)", bitDepth)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// Total length is only used for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}

	return &wavInputInfo{
		file:        inputFile,
		decoder:     decoder,
		rate:        format.SampleRate,
		channels:    format.NumChannels,
		bitDepth:    bitDepth,
		totalFrames: int64(duration.Seconds() * float64(format.SampleRate)),
		format:      format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates the output file and a PCM encoder for it.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, pcmAudioFormat),
	}, nil
}

// Write encodes an interleaved buffer.
func (w *wavOutputWriter) Write(buf *audio.IntBuffer) error {
	return w.encoder.Write(buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// fullScale returns the largest positive sample value for the given bit depth.
func fullScale(bitDepth int) (float64, bool) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, true
	case bitsPerSample24:
		return maxInt24, true
	case bitsPerSample32:
		return maxInt32, true
	default:
		return 0, false
	}
}

// envelopeRenderer renders the gain envelope one chunk of frames at a time.
type envelopeRenderer struct {
	envelope *spline.Spline[float64, float64]
	rate     float64
	gain     float64
	gainSum  float64
}

// render returns the gain for frames [offset, offset+frames). Frame i is
// sampled at time i/rate seconds.
func (r *envelopeRenderer) render(offset int64, frames int) ([]float64, error) {
	cfg := spline.RenderConfig{
		Start:  float64(offset) / r.rate,
		End:    float64(offset+int64(frames)-1) / r.rate,
		Frames: frames,
		Gain:   r.gain,
	}

	gains, err := spline.Render(r.envelope, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render envelope at frame %d: %w", offset, err)
	}

	r.gainSum += simdops.For[float64]().Sum(gains)
	return gains, nil
}

// applyGains scales interleaved samples in place, one gain per frame, and
// clips the result to the sample range of the bit depth.
func applyGains(data []int, gains []float64, channels int, maxVal float64) (clipped int) {
	minVal := -maxVal - 1

	for frame, g := range gains {
		base := frame * channels
		for ch := range channels {
			v := math.Round(float64(data[base+ch]) * g)
			switch {
			case v > maxVal:
				v = maxVal
				clipped++
			case v < minVal:
				v = minVal
				clipped++
			}
			data[base+ch] = int(v)
		}
	}

	return clipped
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalFrames  int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalFrames int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalFrames: totalFrames,
		verbose:     verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int64) {
	if !p.verbose || p.totalFrames == 0 {
		return
	}

	progress := int(float64(currentFrames) / float64(p.totalFrames) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
