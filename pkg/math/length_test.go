package math

import (
	"math"
	"testing"
)

func TestLengthComparison(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		// sqrt(5) vs 5
		{"Vec2 shorter", IsShorter(Vec2{1, 2}, Vec2{3, 4}), true},
		{"Vec2 not shorter", IsShorter(Vec2{3, 4}, Vec2{1, 2}), false},
		{"Vec2 same length", IsSameLength(Vec2{3, 4}, Vec2{5, 0}), true},
		{"Vec3 same length", (Vec3{1, 2, 2}).IsSameLengthAs(Vec3{0, 3, 0}), true},
		{"Vec4 same length", (Vec4{1, 2, 3, 4}).IsSameLengthAs(Vec4{1, 2, 3, 4}), true},
		// 9 > 8 squared
		{"Vec2 longer", IsLonger(Vec2{3, 0}, Vec2{2, 2}), true},
		{"Vec4 longer", (Vec4{10, 10, 10, 10}).IsLongerThan(Vec4{1, 1, 1, 1}), true},
		{"Vec2i shorter", IsShorter(Vec2i{1, 2}, Vec2i{3, 4}), true},
		{"Vec2i same length", IsSameLength(Vec2i{3, 4}, Vec2i{0, 5}), true},
		{"Vec3i longer", IsLonger(Vec3i{2, 2, 2}, Vec3i{0, 0, 3}), true},
		{"Vec3i longer at bound", IsLonger(Vec3i{1 << 30, 1 << 30, 1 << 30}, Vec3i{1 << 30, 1 << 30, 0}), true},
		// No tolerance: one ulp apart is a different length.
		{"one ulp apart", (Vec2{1, 0}).IsSameLengthAs(Vec2{math.Nextafter32(1, 2), 0}), false},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	a, b := Vec2{0.1, 0.2}, Vec2{0.2, 0.1}
	if got, want := a.IsSameLengthAs(b), a.LengthSqr() == b.LengthSqr(); got != want {
		t.Errorf("IsSameLengthAs(%v, %v) = %v, want %v", a, b, got, want)
	}

	nan := Vec2{float32(math.NaN()), 0}
	one := Vec2{1, 0}
	if nan.IsShorterThan(one) || nan.IsLongerThan(one) || nan.IsSameLengthAs(one) || nan.IsSameLengthAs(nan) {
		t.Errorf("NaN vector should compare false with everything")
	}
}

func checkOrdering[V LengthComparer[V]](t *testing.T, a, b V) {
	t.Helper()

	held := 0
	for _, ok := range []bool{IsShorter(a, b), IsLonger(a, b), IsSameLength(a, b)} {
		if ok {
			held++
		}
	}
	if held != 1 {
		t.Errorf("%v vs %v: %d orderings hold, want exactly 1", a, b, held)
	}
	if IsShorter(a, b) != IsLonger(b, a) {
		t.Errorf("IsShorter(%v, %v) != IsLonger(%v, %v)", a, b, b, a)
	}
	if !IsSameLength(a, a) {
		t.Errorf("IsSameLength(%v, %v) = false", a, a)
	}
}

func TestLengthOrderingProperties(t *testing.T) {
	vec2s := []Vec2{{0, 0}, {1, 2}, {3, 4}, {5, 0}, {-2, -2}, {0.5, 1e-3}, {-1e6, 7}}
	for _, a := range vec2s {
		for _, b := range vec2s {
			checkOrdering(t, a, b)
		}
	}

	vec3s := []Vec3{{0, 0, 0}, {1, 2, 2}, {0, 3, 0}, {-4, 1, 0.25}}
	for _, a := range vec3s {
		for _, b := range vec3s {
			checkOrdering(t, a, b)
		}
	}

	vec4s := []Vec4{{}, {1, 1, 1, 1}, {2, 0, 0, 0}, {0, -3, 1, 9}}
	for _, a := range vec4s {
		for _, b := range vec4s {
			checkOrdering(t, a, b)
		}
	}

	ints := []Vec3i{{}, {1, 2, 2}, {3, 0, 0}, {-5, 4, 1}}
	for _, a := range ints {
		for _, b := range ints {
			checkOrdering(t, a, b)
		}
	}
}

func TestDirection(t *testing.T) {
	if got := Direction(Vec2{1, 1}, Vec2{4, 6}); got != (Vec2{3, 5}) {
		t.Errorf("Direction() = %v, want (3, 5)", got)
	}
	if got := (Vec3{1, 2, 3}).DirectionTo(Vec3{5, 4, 0}); got != (Vec3{4, 2, -3}) {
		t.Errorf("Vec3.DirectionTo() = %v, want (4, 2, -3)", got)
	}
	if got := (Vec2i{2, 0}).DirectionTo(Vec2i{0, 3}); got != (Vec2i{-2, 3}) {
		t.Errorf("Vec2i.DirectionTo() = %v, want (-2, 3)", got)
	}
}

func TestDirectionNormalized(t *testing.T) {
	if got := DirectionNormalized(Vec2{1, 1}, Vec2{4, 1}); got != (Vec2{1, 0}) {
		t.Errorf("DirectionNormalized() = %v, want (1, 0)", got)
	}
	if got := (Vec3{1, 1, 1}).DirectionNormalizedTo(Vec3{4, 1, 1}); got != (Vec3{1, 0, 0}) {
		t.Errorf("Vec3.DirectionNormalizedTo() = %v, want (1, 0, 0)", got)
	}

	d := (Vec2{1, 1}).DirectionNormalizedTo(Vec2{4, 6})
	if abs(d.X-float32(3/math.Sqrt(34))) > 1e-4 || abs(d.Y-float32(5/math.Sqrt(34))) > 1e-4 {
		t.Errorf("DirectionNormalizedTo((4, 6)) = %v, want (3, 5)/sqrt(34)", d)
	}
}

func TestDirectionSamePoint(t *testing.T) {
	p2 := Vec2{7, -3}
	if Direction(p2, p2) != (Vec2{}) || DirectionNormalized(p2, p2) != (Vec2{}) {
		t.Errorf("direction from %v to itself should be zero", p2)
	}
	p3 := Vec3{1, 1, 1}
	if p3.DirectionTo(p3) != (Vec3{}) || p3.DirectionNormalizedTo(p3) != (Vec3{}) {
		t.Errorf("direction from %v to itself should be zero", p3)
	}
	p4 := Vec4{1, 2, 3, 4}
	if p4.DirectionTo(p4) != (Vec4{}) || p4.DirectionNormalizedTo(p4) != (Vec4{}) {
		t.Errorf("direction from %v to itself should be zero", p4)
	}
}

func TestDirectionNormalizedUnitLength(t *testing.T) {
	points := []Vec3{{0, 0, 0}, {1, 2, 3}, {-4, 0.5, 9}, {100, -100, 0.01}, {0.001, 0, 0}}
	for _, p := range points {
		for _, q := range points {
			if p == q {
				continue
			}
			if l := DirectionNormalized(p, q).Length(); abs(l-1) > 1e-4 {
				t.Errorf("DirectionNormalized(%v, %v).Length() = %v, want 1", p, q, l)
			}
		}
	}

	// Squares of these underflow or overflow float32.
	extremes := []Vec2{
		{3e-23, 0},
		{1e-21, 0},
		{1e-21, 1e-21},
		{math.SmallestNonzeroFloat32, 0},
		{1e20, 0},
		{3e19, 4e19},
		{-3e38, 1e38},
	}
	for _, q := range extremes {
		d := DirectionNormalized(Vec2{}, q)
		if l := d.Length(); abs(l-1) > 1e-4 {
			t.Errorf("DirectionNormalized(0, %v) = %v with length %v, want 1", q, d, l)
		}
	}
	if got := DirectionNormalized(Vec2{}, Vec2{3e19, 4e19}); abs(got.X-0.6) > 1e-6 || abs(got.Y-0.8) > 1e-6 {
		t.Errorf("DirectionNormalized(0, (3e19, 4e19)) = %v, want (0.6, 0.8)", got)
	}
	if l := DirectionNormalized(Vec3{}, Vec3{1e-22, 1e-22, 1e-22}).Length(); abs(l-1) > 1e-4 {
		t.Errorf("tiny Vec3 direction length = %v, want 1", l)
	}
	if l := DirectionNormalized(Vec4{}, Vec4{1e20, 1e20, 1e20, 1e20}).Length(); abs(l-1) > 1e-4 {
		t.Errorf("huge Vec4 direction length = %v, want 1", l)
	}

	p := Vec4{1, 2, 3, 4}
	q := Vec4{-1, 0, 3, 8}
	if l := p.DirectionNormalizedTo(q).Length(); abs(l-1) > 1e-4 {
		t.Errorf("Vec4.DirectionNormalizedTo().Length() = %v, want 1", l)
	}
}

func TestVecIntLargeComponents(t *testing.T) {
	if got := (Vec2i{4_000_000_000, 0}).Length(); got != 4e9 {
		t.Errorf("Vec2i.Length() = %v, want 4e9", got)
	}
	if got := (Vec2i{-3_000_000_000, 0}).Distance(Vec2i{3_000_000_000, 0}); got != 6e9 {
		t.Errorf("Vec2i.Distance() = %v, want 6e9", got)
	}
	if got := (Vec3i{0, 0, 0}).Distance(Vec3i{2_000_000_000, 2_000_000_000, 1_000_000_000}); got != 3e9 {
		t.Errorf("Vec3i.Distance() = %v, want 3e9", got)
	}
}
