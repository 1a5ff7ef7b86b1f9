package main

const (
	// Number of frames processed per chunk
	bufferFrames = 16384

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale sample values
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV audio format tag for integer PCM
	pcmAudioFormat = 1

	// Progress reporting
	progressInterval = 10 // Print progress every N%
	percentScale     = 100

	// CLI defaults
	defaultGain     = 1.0
	minRequiredArgs = 2
)
