package math

// Vec2i is a 2D integer vector.
type Vec2i struct {
	X, Y int
}

// Vec3i is a 3D integer vector.
type Vec3i struct {
	X, Y, Z int
}

// Add returns the component-wise sum.
func (v Vec2i) Add(other Vec2i) Vec2i {
	return Vec2i{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference.
func (v Vec2i) Sub(other Vec2i) Vec2i {
	return Vec2i{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies two vectors component-wise.
func (v Vec2i) Mul(other Vec2i) Vec2i {
	return Vec2i{v.X * other.X, v.Y * other.Y}
}

// Max returns the component-wise maximum.
func (v Vec2i) Max(other Vec2i) Vec2i {
	return Vec2i{max(v.X, other.X), max(v.Y, other.Y)}
}

// Min returns the component-wise minimum.
func (v Vec2i) Min(other Vec2i) Vec2i {
	return Vec2i{min(v.X, other.X), min(v.Y, other.Y)}
}

// LengthSqr returns the squared magnitude. It is computed in int and wraps once
// the sum exceeds math.MaxInt; keep components within ±1<<30 for exact results.
// The length comparators share that bound.
func (v Vec2i) LengthSqr() int {
	return sumSquares(v.X, v.Y)
}

// Length returns the magnitude, computed in float64 so it never wraps.
func (v Vec2i) Length() float32 {
	return float32(magnitude(v.X, v.Y))
}

// Distance returns the distance to another point.
func (v Vec2i) Distance(other Vec2i) float32 {
	return float32(magnitude(float64(other.X)-float64(v.X), float64(other.Y)-float64(v.Y)))
}

// IsShorterThan reports whether v is strictly shorter than other.
func (v Vec2i) IsShorterThan(other Vec2i) bool {
	return v.LengthSqr() < other.LengthSqr()
}

// IsLongerThan reports whether v is strictly longer than other.
func (v Vec2i) IsLongerThan(other Vec2i) bool {
	return v.LengthSqr() > other.LengthSqr()
}

// IsSameLengthAs reports whether v and other have the same squared length.
func (v Vec2i) IsSameLengthAs(other Vec2i) bool {
	return v.LengthSqr() == other.LengthSqr()
}

// DirectionTo returns the displacement from v to destination.
func (v Vec2i) DirectionTo(destination Vec2i) Vec2i {
	return Direction(v, destination)
}

// Float converts v to a float vector.
func (v Vec2i) Float() Vec2 {
	return Vec2{float32(v.X), float32(v.Y)}
}

// Add returns the component-wise sum.
func (v Vec3i) Add(other Vec3i) Vec3i {
	return Vec3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference.
func (v Vec3i) Sub(other Vec3i) Vec3i {
	return Vec3i{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies two vectors component-wise.
func (v Vec3i) Mul(other Vec3i) Vec3i {
	return Vec3i{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Max returns the component-wise maximum.
func (v Vec3i) Max(other Vec3i) Vec3i {
	return Vec3i{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Min returns the component-wise minimum.
func (v Vec3i) Min(other Vec3i) Vec3i {
	return Vec3i{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// LengthSqr returns the squared magnitude. It is computed in int and wraps once
// the sum exceeds math.MaxInt; keep components within ±1<<30 for exact results.
// The length comparators share that bound.
func (v Vec3i) LengthSqr() int {
	return sumSquares(v.X, v.Y, v.Z)
}

// Length returns the magnitude, computed in float64 so it never wraps.
func (v Vec3i) Length() float32 {
	return float32(magnitude(v.X, v.Y, v.Z))
}

// Distance returns the distance to another point.
func (v Vec3i) Distance(other Vec3i) float32 {
	return float32(magnitude(float64(other.X)-float64(v.X), float64(other.Y)-float64(v.Y), float64(other.Z)-float64(v.Z)))
}

// IsShorterThan reports whether v is strictly shorter than other.
func (v Vec3i) IsShorterThan(other Vec3i) bool {
	return v.LengthSqr() < other.LengthSqr()
}

// IsLongerThan reports whether v is strictly longer than other.
func (v Vec3i) IsLongerThan(other Vec3i) bool {
	return v.LengthSqr() > other.LengthSqr()
}

// IsSameLengthAs reports whether v and other have the same squared length.
func (v Vec3i) IsSameLengthAs(other Vec3i) bool {
	return v.LengthSqr() == other.LengthSqr()
}

// DirectionTo returns the displacement from v to destination.
func (v Vec3i) DirectionTo(destination Vec3i) Vec3i {
	return Direction(v, destination)
}

// Float converts v to a float vector.
func (v Vec3i) Float() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
