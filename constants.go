package spline

// Render defaults
const (
	unityGain  = 1.0 // Gain applied when RenderConfig.Gain is zero
	minFrames  = 1   // Smallest renderable buffer
	spanFrames = 2   // Frames needed to spread samples over [Start, End]
)
