package main

// Default command-line flag values
const (
	defaultStep = 0.25 // Sampling interval in key time units
)

// Safety limit on the number of printed rows
const (
	maxRows = 1_000_000
)

// Output formatting
const (
	outOfRange = "-" // Printed when a sample has no value
)

// Demo keys, one for each interpolation mode
var demoKeys = []string{
	"0:0:step=0.5",
	"1:5:linear",
	"2:0:cosine",
	"3:4:catmullrom",
	"4:1:bezier=3",
	"5:2:strokebezier=1,3",
	"6:0:strokebezier=-1,1",
	"7:2",
}
