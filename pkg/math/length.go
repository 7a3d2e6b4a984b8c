package math

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is any component type a vector in this package is built from.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// sumSquares returns the squared magnitude of a vector given its components.
func sumSquares[T Scalar](components ...T) T {
	var sum T
	for _, c := range components {
		sum += c * c
	}
	return sum
}

// magnitude returns the Euclidean norm of the given components. Squares are
// summed in float64, so no finite float32 input underflows or overflows.
func magnitude[T Scalar](components ...T) float64 {
	var sum float64
	for _, c := range components {
		f := float64(c)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// Displacer is implemented by every vector type in this package.
type Displacer[V any] interface {
	Sub(other V) V
}

// Normalizer is implemented by the float vector types.
type Normalizer[V any] interface {
	Displacer[V]
	Normalize() V
}

// LengthComparer orders vectors by length without taking a square root.
type LengthComparer[V any] interface {
	IsShorterThan(other V) bool
	IsLongerThan(other V) bool
	IsSameLengthAs(other V) bool
}

// Direction returns the displacement from origin to destination.
func Direction[V Displacer[V]](origin, destination V) V {
	return destination.Sub(origin)
}

// DirectionNormalized returns the unit direction from origin to destination.
// Equal points yield the zero vector.
func DirectionNormalized[V Normalizer[V]](origin, destination V) V {
	return destination.Sub(origin).Normalize()
}

// IsShorter reports whether a is strictly shorter than b.
func IsShorter[V LengthComparer[V]](a, b V) bool {
	return a.IsShorterThan(b)
}

// IsLonger reports whether a is strictly longer than b.
func IsLonger[V LengthComparer[V]](a, b V) bool {
	return a.IsLongerThan(b)
}

// IsSameLength reports whether a and b have exactly the same squared length.
// There is no tolerance: two lengths that differ by one ulp are different.
func IsSameLength[V LengthComparer[V]](a, b V) bool {
	return a.IsSameLengthAs(b)
}
