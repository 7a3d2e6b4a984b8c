package math

import (
	"math"

	"github.com/chewxy/math32"
)

// Rad2Deg converts radians to degrees.
const Rad2Deg = 180 / math.Pi

// Below this the angle between two vectors is reported as zero.
const epsilonNormalSqrt = 1e-15

// angle returns the unsigned angle in degrees given a dot product and the
// squared lengths of both operands.
func angle(dot, sqrA, sqrB float32) float32 {
	denom := math32.Sqrt(sqrA * sqrB)
	if denom < epsilonNormalSqrt {
		return 0
	}
	return math32.Acos(clamp(dot/denom, -1, 1)) * Rad2Deg
}

// sign treats zero as positive.
func sign(x float32) float32 {
	if x >= 0 {
		return 1
	}
	return -1
}

func clamp(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, x))
}

func clamp01(t float32) float32 {
	return clamp(t, 0, 1)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// roundToInt rounds half to even.
func roundToInt(x float32) int {
	return int(math.RoundToEven(float64(x)))
}

func ceilToInt(x float32) int {
	return int(math32.Ceil(x))
}

func floorToInt(x float32) int {
	return int(math32.Floor(x))
}
