// Package query evaluates vector operations described as data.
//
// A Query names an operation and its operands; the arity of the first operand
// picks Vec2, Vec3 or Vec4 (or Vec2i/Vec3i when Int is set).
package query

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrUnknownOp      = errors.New("unknown operation")
	ErrArity          = errors.New("vectors must have 2, 3 or 4 components")
	ErrArityMismatch  = errors.New("operands have different arity")
	ErrMissingOperand = errors.New("missing operand")
	ErrNotInteger     = errors.New("integer query with fractional component")
	ErrUnsupported    = errors.New("operation not defined for this vector type")
	ErrBadVector      = errors.New("malformed vector")
)

// Op names a vector operation.
type Op string

const (
	OpShorter             Op = "shorter"
	OpLonger              Op = "longer"
	OpSameLength          Op = "same-length"
	OpDirection           Op = "direction"
	OpDirectionNormalized Op = "direction-normalized"
	OpLength              Op = "length"
	OpDistance            Op = "distance"
	OpDot                 Op = "dot"
	OpAngle               Op = "angle"
	OpSignedAngle         Op = "signed-angle"
	OpClampLength         Op = "clamp-length"
	OpLerp                Op = "lerp"
	OpLerpUnclamped       Op = "lerp-unclamped"
	OpMax                 Op = "max"
	OpMin                 Op = "min"
	OpScale               Op = "scale"
	OpReflect             Op = "reflect"
	OpPerpendicular       Op = "perpendicular"
	OpCross               Op = "cross"
	OpProject             Op = "project"
	OpProjectOnPlane      Op = "project-on-plane"
	OpRound               Op = "round"
	OpCeil                Op = "ceil"
	OpFloor               Op = "floor"
)

type opInfo struct {
	summary string
	binary  bool // needs B
}

var ops = map[Op]opInfo{
	OpShorter:             {"a is strictly shorter than b", true},
	OpLonger:              {"a is strictly longer than b", true},
	OpSameLength:          {"a and b have exactly equal squared length", true},
	OpDirection:           {"displacement from a to b", true},
	OpDirectionNormalized: {"unit direction from a to b, zero if a == b", true},
	OpLength:              {"length of a", false},
	OpDistance:            {"distance between a and b", true},
	OpDot:                 {"dot product", true},
	OpAngle:               {"unsigned angle in degrees", true},
	OpSignedAngle:         {"signed angle in degrees (3D needs -axis)", true},
	OpClampLength:         {"a limited to length t", false},
	OpLerp:                {"interpolate a to b by t clamped to [0,1]", true},
	OpLerpUnclamped:       {"interpolate a to b by t", true},
	OpMax:                 {"component-wise maximum", true},
	OpMin:                 {"component-wise minimum", true},
	OpScale:               {"component-wise product", true},
	OpReflect:             {"reflect a off the plane with normal b", true},
	OpPerpendicular:       {"a rotated 90 degrees counter-clockwise (2D)", false},
	OpCross:               {"cross product (3D)", true},
	OpProject:             {"project a onto b", true},
	OpProjectOnPlane:      {"project a onto the plane with normal b (3D)", true},
	OpRound:               {"round to integers, halves to even", false},
	OpCeil:                {"round up to integers", false},
	OpFloor:               {"round down to integers", false},
}

// Ops returns every supported operation in name order.
func Ops() []Op {
	out := make([]Op, 0, len(ops))
	for op := range ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Summary describes op in a few words.
func (op Op) Summary() string {
	return ops[op].summary
}

// Query is one operation with its operands.
type Query struct {
	Op   Op      `yaml:"op"`
	A    Vector  `yaml:"a"`
	B    Vector  `yaml:"b,omitempty"`
	Axis Vector  `yaml:"axis,omitempty"`
	T    float32 `yaml:"t,omitempty"`
	Int  bool    `yaml:"int,omitempty"`
}

func (q Query) String() string {
	var sb strings.Builder
	sb.WriteString(string(q.Op))
	sb.WriteString(" ")
	sb.WriteString(q.A.String())
	if len(q.B) > 0 {
		sb.WriteString(" ")
		sb.WriteString(q.B.String())
	}
	if len(q.Axis) > 0 {
		sb.WriteString(" axis=")
		sb.WriteString(q.Axis.String())
	}
	if q.T != 0 {
		sb.WriteString(" t=")
		sb.WriteString(formatFloat(q.T, -1))
	}
	return sb.String()
}

// validate checks operand shapes before evaluation.
func (q Query) validate() error {
	info, ok := ops[q.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOp, q.Op)
	}
	if len(q.A) < 2 || len(q.A) > 4 {
		return fmt.Errorf("%s: %w (a has %d)", q.Op, ErrArity, len(q.A))
	}
	if info.binary {
		if len(q.B) == 0 {
			return fmt.Errorf("%s: %w: b", q.Op, ErrMissingOperand)
		}
		if len(q.B) != len(q.A) {
			return fmt.Errorf("%s: %w: a has %d, b has %d", q.Op, ErrArityMismatch, len(q.A), len(q.B))
		}
	}
	if q.Op == OpSignedAngle && len(q.A) == 3 && len(q.Axis) != 3 {
		return fmt.Errorf("%s: %w: 3D signed angle needs a 3-component axis", q.Op, ErrMissingOperand)
	}
	if q.Int {
		if len(q.A) > 3 {
			return fmt.Errorf("%s: %w: integer vectors have 2 or 3 components", q.Op, ErrArity)
		}
		if !q.A.integral() || !q.B.integral() {
			return fmt.Errorf("%s: %w", q.Op, ErrNotInteger)
		}
	}
	return nil
}

// Result is the outcome of one query. Exactly one of Bool, Scalar, Vector or
// Error is set.
type Result struct {
	Op     Op       `yaml:"op"`
	Bool   *bool    `yaml:"bool,omitempty"`
	Scalar *float32 `yaml:"scalar,omitempty"`
	Vector Vector   `yaml:"vector,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

// Failed reports whether the query could not be evaluated.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Format renders the value with the given number of decimals.
func (r Result) Format(precision int) string {
	switch {
	case r.Error != "":
		return "error: " + r.Error
	case r.Bool != nil:
		return strconv.FormatBool(*r.Bool)
	case r.Scalar != nil:
		return formatFloat(*r.Scalar, precision)
	default:
		return r.Vector.Format(precision)
	}
}

func boolResult(op Op, b bool) Result {
	return Result{Op: op, Bool: &b}
}

func scalarResult(op Op, f float32) Result {
	return Result{Op: op, Scalar: &f}
}

func vectorResult(op Op, v Vector) Result {
	return Result{Op: op, Vector: v}
}
