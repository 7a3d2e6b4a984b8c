package query

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vecext/pkg/math"
)

// Vector is a query operand of 2, 3 or 4 components.
type Vector []float32

// ParseVector parses "x,y[,z[,w]]", optionally wrapped in () or [].
func ParseVector(s string) (Vector, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	parts := strings.Split(trimmed, ",")
	if len(parts) < 2 || len(parts) > 4 {
		return nil, fmt.Errorf("%w: %q has %d components", ErrBadVector, s, len(parts))
	}

	v := make(Vector, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadVector, s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// String formats v with the shortest exact representation of each component.
func (v Vector) String() string {
	return v.Format(-1)
}

// Format formats v as "(x, y)" with the given number of decimals; -1 means shortest.
func (v Vector) Format(precision int) string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = formatFloat(c, precision)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// UnmarshalYAML accepts either "1, 2" or [1, 2].
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseVector(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*v = parsed
		return nil
	case yaml.SequenceNode:
		var components []float32
		if err := node.Decode(&components); err != nil {
			return fmt.Errorf("line %d: %w: %v", node.Line, ErrBadVector, err)
		}
		if len(components) < 2 || len(components) > 4 {
			return fmt.Errorf("line %d: %w: %d components", node.Line, ErrBadVector, len(components))
		}
		*v = components
		return nil
	default:
		return fmt.Errorf("line %d: %w: expected string or sequence", node.Line, ErrBadVector)
	}
}

// MarshalYAML writes v as a flow sequence.
func (v Vector) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: formatFloat(c, -1),
		})
	}
	return node, nil
}

// at returns component i, or zero past the end.
func (v Vector) at(i int) float32 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func (v Vector) vec2() math.Vec2 {
	return math.Vec2{X: v.at(0), Y: v.at(1)}
}

func (v Vector) vec3() math.Vec3 {
	return math.Vec3{X: v.at(0), Y: v.at(1), Z: v.at(2)}
}

func (v Vector) vec4() math.Vec4 {
	return math.Vec4{X: v.at(0), Y: v.at(1), Z: v.at(2), W: v.at(3)}
}

func (v Vector) vec2i() math.Vec2i {
	return math.Vec2i{X: int(v.at(0)), Y: int(v.at(1))}
}

func (v Vector) vec3i() math.Vec3i {
	return math.Vec3i{X: int(v.at(0)), Y: int(v.at(1)), Z: int(v.at(2))}
}

// integral reports whether every component is a whole number.
func (v Vector) integral() bool {
	for _, c := range v {
		if c != c || c != float32(int64(c)) {
			return false
		}
	}
	return true
}

func fromVec2(v math.Vec2) Vector { return Vector{v.X, v.Y} }
func fromVec3(v math.Vec3) Vector { return Vector{v.X, v.Y, v.Z} }
func fromVec4(v math.Vec4) Vector { return Vector{v.X, v.Y, v.Z, v.W} }

func fromVec2i(v math.Vec2i) Vector { return fromVec2(v.Float()) }
func fromVec3i(v math.Vec3i) Vector { return fromVec3(v.Float()) }

func formatFloat(f float32, precision int) string {
	return strconv.FormatFloat(float64(f), 'f', precision, 32)
}
