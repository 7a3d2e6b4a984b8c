package math

import (
	"math"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul multiplies two vectors component-wise.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSqr returns the squared magnitude.
func (v Vec3) LengthSqr() float32 {
	return sumSquares(v.X, v.Y, v.Z)
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(magnitude(v.X, v.Y, v.Z))
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := magnitude(v.X, v.Y, v.Z)
	if l == 0 {
		return Vec3{}
	}
	return Vec3{
		float32(float64(v.X) / l),
		float32(float64(v.Y) / l),
		float32(float64(v.Z) / l),
	}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Angle returns the unsigned angle in degrees between v and other.
func (v Vec3) Angle(other Vec3) float32 {
	return angle(v.Dot(other), v.LengthSqr(), other.LengthSqr())
}

// SignedAngle returns the angle in degrees from v to other around axis.
// The sign follows the right-hand rule about axis.
func (v Vec3) SignedAngle(other, axis Vec3) float32 {
	return v.Angle(other) * sign(axis.Dot(v.Cross(other)))
}

// ClampLength returns v scaled down to maxLength if it is longer.
func (v Vec3) ClampLength(maxLength float32) Vec3 {
	if v.LengthSqr() > maxLength*maxLength {
		return v.Normalize().Scale(maxLength)
	}
	return v
}

// Lerp interpolates between v and other, with t clamped to [0, 1].
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.LerpUnclamped(other, clamp01(t))
}

// LerpUnclamped interpolates between v and other without clamping t.
func (v Vec3) LerpUnclamped(other Vec3, t float32) Vec3 {
	return Vec3{lerp(v.X, other.X, t), lerp(v.Y, other.Y, t), lerp(v.Z, other.Z, t)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{math32.Max(v.X, other.X), math32.Max(v.Y, other.Y), math32.Max(v.Z, other.Z)}
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{math32.Min(v.X, other.X), math32.Min(v.Y, other.Y), math32.Min(v.Z, other.Z)}
}

// Reflect reflects v off the plane defined by normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return normal.Scale(-2 * normal.Dot(v)).Add(v)
}

// Project projects v onto onNormal. A zero normal yields the zero vector.
func (v Vec3) Project(onNormal Vec3) Vec3 {
	sqr := onNormal.LengthSqr()
	if sqr < math.SmallestNonzeroFloat32 {
		return Vec3{}
	}
	return onNormal.Scale(v.Dot(onNormal) / sqr)
}

// ProjectOnPlane projects v onto the plane with the given normal.
// A zero normal leaves v unchanged.
func (v Vec3) ProjectOnPlane(planeNormal Vec3) Vec3 {
	sqr := planeNormal.LengthSqr()
	if sqr < math.SmallestNonzeroFloat32 {
		return v
	}
	return v.Sub(planeNormal.Scale(v.Dot(planeNormal) / sqr))
}

// IsShorterThan reports whether v is strictly shorter than other.
func (v Vec3) IsShorterThan(other Vec3) bool {
	return v.LengthSqr() < other.LengthSqr()
}

// IsLongerThan reports whether v is strictly longer than other.
func (v Vec3) IsLongerThan(other Vec3) bool {
	return v.LengthSqr() > other.LengthSqr()
}

// IsSameLengthAs reports whether v and other have exactly equal squared length.
func (v Vec3) IsSameLengthAs(other Vec3) bool {
	return v.LengthSqr() == other.LengthSqr()
}

// DirectionTo returns the displacement from v to destination.
func (v Vec3) DirectionTo(destination Vec3) Vec3 {
	return Direction(v, destination)
}

// DirectionNormalizedTo returns the unit direction from v to destination.
func (v Vec3) DirectionNormalizedTo(destination Vec3) Vec3 {
	return DirectionNormalized(v, destination)
}

// RoundToInt rounds each component to the nearest integer, halves to even.
func (v Vec3) RoundToInt() Vec3i {
	return Vec3i{roundToInt(v.X), roundToInt(v.Y), roundToInt(v.Z)}
}

// CeilToInt rounds each component up.
func (v Vec3) CeilToInt() Vec3i {
	return Vec3i{ceilToInt(v.X), ceilToInt(v.Y), ceilToInt(v.Z)}
}

// FloorToInt rounds each component down.
func (v Vec3) FloorToInt() Vec3i {
	return Vec3i{floorToInt(v.X), floorToInt(v.Y), floorToInt(v.Z)}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}
