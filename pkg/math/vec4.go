package math

import (
	"math"

	"github.com/chewxy/math32"
)

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Mul multiplies two vectors component-wise.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSqr returns the squared magnitude.
func (v Vec4) LengthSqr() float32 {
	return sumSquares(v.X, v.Y, v.Z, v.W)
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return float32(magnitude(v.X, v.Y, v.Z, v.W))
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec4) Normalize() Vec4 {
	l := magnitude(v.X, v.Y, v.Z, v.W)
	if l == 0 {
		return Vec4{}
	}
	return Vec4{
		float32(float64(v.X) / l),
		float32(float64(v.Y) / l),
		float32(float64(v.Z) / l),
		float32(float64(v.W) / l),
	}
}

// Distance returns the distance to another point.
func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates between v and other, with t clamped to [0, 1].
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return v.LerpUnclamped(other, clamp01(t))
}

// LerpUnclamped interpolates between v and other without clamping t.
func (v Vec4) LerpUnclamped(other Vec4, t float32) Vec4 {
	return Vec4{
		lerp(v.X, other.X, t),
		lerp(v.Y, other.Y, t),
		lerp(v.Z, other.Z, t),
		lerp(v.W, other.W, t),
	}
}

// Max returns the component-wise maximum.
func (v Vec4) Max(other Vec4) Vec4 {
	return Vec4{
		math32.Max(v.X, other.X),
		math32.Max(v.Y, other.Y),
		math32.Max(v.Z, other.Z),
		math32.Max(v.W, other.W),
	}
}

// Min returns the component-wise minimum.
func (v Vec4) Min(other Vec4) Vec4 {
	return Vec4{
		math32.Min(v.X, other.X),
		math32.Min(v.Y, other.Y),
		math32.Min(v.Z, other.Z),
		math32.Min(v.W, other.W),
	}
}

// Project projects v onto onNormal. A zero normal yields the zero vector.
func (v Vec4) Project(onNormal Vec4) Vec4 {
	sqr := onNormal.LengthSqr()
	if sqr < math.SmallestNonzeroFloat32 {
		return Vec4{}
	}
	return onNormal.Scale(v.Dot(onNormal) / sqr)
}

// IsShorterThan reports whether v is strictly shorter than other.
func (v Vec4) IsShorterThan(other Vec4) bool {
	return v.LengthSqr() < other.LengthSqr()
}

// IsLongerThan reports whether v is strictly longer than other.
func (v Vec4) IsLongerThan(other Vec4) bool {
	return v.LengthSqr() > other.LengthSqr()
}

// IsSameLengthAs reports whether v and other have exactly equal squared length.
func (v Vec4) IsSameLengthAs(other Vec4) bool {
	return v.LengthSqr() == other.LengthSqr()
}

// DirectionTo returns the displacement from v to destination.
func (v Vec4) DirectionTo(destination Vec4) Vec4 {
	return Direction(v, destination)
}

// DirectionNormalizedTo returns the unit direction from v to destination.
func (v Vec4) DirectionNormalizedTo(destination Vec4) Vec4 {
	return DirectionNormalized(v, destination)
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
