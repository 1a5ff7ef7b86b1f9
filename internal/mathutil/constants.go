package mathutil

// Bernstein and Hermite polynomial coefficients.
const (
	bernsteinCubicMiddle     = 3.0 // 3(1-s)²s and 3(1-s)s² terms
	bernsteinQuadraticMiddle = 2.0 // 2(1-s)s term

	hermiteTwo   = 2.0
	hermiteThree = 3.0
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
