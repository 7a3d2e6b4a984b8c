// Package math provides fixed-arity vector types for game development.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies two vectors component-wise.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSqr returns the squared magnitude.
func (v Vec2) LengthSqr() float32 {
	return sumSquares(v.X, v.Y)
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(magnitude(v.X, v.Y))
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec2) Normalize() Vec2 {
	l := magnitude(v.X, v.Y)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{
		float32(float64(v.X) / l),
		float32(float64(v.Y) / l),
	}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Angle returns the unsigned angle in degrees between v and other.
func (v Vec2) Angle(other Vec2) float32 {
	return angle(v.Dot(other), v.LengthSqr(), other.LengthSqr())
}

// SignedAngle returns the angle in degrees from v to other.
// Counter-clockwise is positive.
func (v Vec2) SignedAngle(other Vec2) float32 {
	return v.Angle(other) * sign(v.X*other.Y-v.Y*other.X)
}

// ClampLength returns v scaled down to maxLength if it is longer.
func (v Vec2) ClampLength(maxLength float32) Vec2 {
	if v.LengthSqr() > maxLength*maxLength {
		return v.Normalize().Scale(maxLength)
	}
	return v
}

// Lerp interpolates between v and other, with t clamped to [0, 1].
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return v.LerpUnclamped(other, clamp01(t))
}

// LerpUnclamped interpolates between v and other without clamping t.
func (v Vec2) LerpUnclamped(other Vec2, t float32) Vec2 {
	return Vec2{lerp(v.X, other.X, t), lerp(v.Y, other.Y, t)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{math32.Max(v.X, other.X), math32.Max(v.Y, other.Y)}
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{math32.Min(v.X, other.X), math32.Min(v.Y, other.Y)}
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Reflect reflects v off the plane defined by normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	return normal.Scale(-2 * normal.Dot(v)).Add(v)
}

// IsShorterThan reports whether v is strictly shorter than other.
func (v Vec2) IsShorterThan(other Vec2) bool {
	return v.LengthSqr() < other.LengthSqr()
}

// IsLongerThan reports whether v is strictly longer than other.
func (v Vec2) IsLongerThan(other Vec2) bool {
	return v.LengthSqr() > other.LengthSqr()
}

// IsSameLengthAs reports whether v and other have exactly equal squared length.
func (v Vec2) IsSameLengthAs(other Vec2) bool {
	return v.LengthSqr() == other.LengthSqr()
}

// DirectionTo returns the displacement from v to destination.
func (v Vec2) DirectionTo(destination Vec2) Vec2 {
	return Direction(v, destination)
}

// DirectionNormalizedTo returns the unit direction from v to destination.
func (v Vec2) DirectionNormalizedTo(destination Vec2) Vec2 {
	return DirectionNormalized(v, destination)
}

// RoundToInt rounds each component to the nearest integer, halves to even.
func (v Vec2) RoundToInt() Vec2i {
	return Vec2i{roundToInt(v.X), roundToInt(v.Y)}
}

// CeilToInt rounds each component up.
func (v Vec2) CeilToInt() Vec2i {
	return Vec2i{ceilToInt(v.X), ceilToInt(v.Y)}
}

// FloorToInt rounds each component down.
func (v Vec2) FloorToInt() Vec2i {
	return Vec2i{floorToInt(v.X), floorToInt(v.Y)}
}
