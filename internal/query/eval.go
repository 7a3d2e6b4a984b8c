package query

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/vecext/internal/logger"
	"github.com/Faultbox/vecext/pkg/math"
)

// Evaluate runs q. Only malformed queries fail; the vector math itself is total.
func Evaluate(q Query) (Result, error) {
	if err := q.validate(); err != nil {
		return Result{Op: q.Op}, err
	}

	var (
		res Result
		err error
	)
	switch {
	case q.Int && len(q.A) == 2:
		res, err = eval2i(q)
	case q.Int:
		res, err = eval3i(q)
	case len(q.A) == 2:
		res, err = eval2(q)
	case len(q.A) == 3:
		res, err = eval3(q)
	default:
		res, err = eval4(q)
	}
	if err != nil {
		return Result{Op: q.Op}, err
	}

	if ce := logger.Log.Check(zap.DebugLevel, "evaluated"); ce != nil {
		ce.Write(zap.Stringer("query", q), zap.String("result", res.Format(-1)))
	}
	return res, nil
}

func unsupported(q Query, kind string) error {
	return fmt.Errorf("%s: %w: %s", q.Op, ErrUnsupported, kind)
}

func eval2(q Query) (Result, error) {
	a, b := q.A.vec2(), q.B.vec2()

	switch q.Op {
	case OpShorter:
		return boolResult(q.Op, a.IsShorterThan(b)), nil
	case OpLonger:
		return boolResult(q.Op, a.IsLongerThan(b)), nil
	case OpSameLength:
		return boolResult(q.Op, a.IsSameLengthAs(b)), nil
	case OpDirection:
		return vectorResult(q.Op, fromVec2(math.Direction(a, b))), nil
	case OpDirectionNormalized:
		return vectorResult(q.Op, fromVec2(math.DirectionNormalized(a, b))), nil
	case OpLength:
		return scalarResult(q.Op, a.Length()), nil
	case OpDistance:
		return scalarResult(q.Op, a.Distance(b)), nil
	case OpDot:
		return scalarResult(q.Op, a.Dot(b)), nil
	case OpAngle:
		return scalarResult(q.Op, a.Angle(b)), nil
	case OpSignedAngle:
		return scalarResult(q.Op, a.SignedAngle(b)), nil
	case OpClampLength:
		return vectorResult(q.Op, fromVec2(a.ClampLength(q.T))), nil
	case OpLerp:
		return vectorResult(q.Op, fromVec2(a.Lerp(b, q.T))), nil
	case OpLerpUnclamped:
		return vectorResult(q.Op, fromVec2(a.LerpUnclamped(b, q.T))), nil
	case OpMax:
		return vectorResult(q.Op, fromVec2(a.Max(b))), nil
	case OpMin:
		return vectorResult(q.Op, fromVec2(a.Min(b))), nil
	case OpScale:
		return vectorResult(q.Op, fromVec2(a.Mul(b))), nil
	case OpReflect:
		return vectorResult(q.Op, fromVec2(a.Reflect(b))), nil
	case OpPerpendicular:
		return vectorResult(q.Op, fromVec2(a.Perpendicular())), nil
	case OpRound:
		return vectorResult(q.Op, fromVec2i(a.RoundToInt())), nil
	case OpCeil:
		return vectorResult(q.Op, fromVec2i(a.CeilToInt())), nil
	case OpFloor:
		return vectorResult(q.Op, fromVec2i(a.FloorToInt())), nil
	}
	return Result{}, unsupported(q, "Vec2")
}

func eval3(q Query) (Result, error) {
	a, b := q.A.vec3(), q.B.vec3()

	switch q.Op {
	case OpShorter:
		return boolResult(q.Op, a.IsShorterThan(b)), nil
	case OpLonger:
		return boolResult(q.Op, a.IsLongerThan(b)), nil
	case OpSameLength:
		return boolResult(q.Op, a.IsSameLengthAs(b)), nil
	case OpDirection:
		return vectorResult(q.Op, fromVec3(math.Direction(a, b))), nil
	case OpDirectionNormalized:
		return vectorResult(q.Op, fromVec3(math.DirectionNormalized(a, b))), nil
	case OpLength:
		return scalarResult(q.Op, a.Length()), nil
	case OpDistance:
		return scalarResult(q.Op, a.Distance(b)), nil
	case OpDot:
		return scalarResult(q.Op, a.Dot(b)), nil
	case OpAngle:
		return scalarResult(q.Op, a.Angle(b)), nil
	case OpSignedAngle:
		return scalarResult(q.Op, a.SignedAngle(b, q.Axis.vec3())), nil
	case OpClampLength:
		return vectorResult(q.Op, fromVec3(a.ClampLength(q.T))), nil
	case OpLerp:
		return vectorResult(q.Op, fromVec3(a.Lerp(b, q.T))), nil
	case OpLerpUnclamped:
		return vectorResult(q.Op, fromVec3(a.LerpUnclamped(b, q.T))), nil
	case OpMax:
		return vectorResult(q.Op, fromVec3(a.Max(b))), nil
	case OpMin:
		return vectorResult(q.Op, fromVec3(a.Min(b))), nil
	case OpScale:
		return vectorResult(q.Op, fromVec3(a.Mul(b))), nil
	case OpReflect:
		return vectorResult(q.Op, fromVec3(a.Reflect(b))), nil
	case OpCross:
		return vectorResult(q.Op, fromVec3(a.Cross(b))), nil
	case OpProject:
		return vectorResult(q.Op, fromVec3(a.Project(b))), nil
	case OpProjectOnPlane:
		return vectorResult(q.Op, fromVec3(a.ProjectOnPlane(b))), nil
	case OpRound:
		return vectorResult(q.Op, fromVec3i(a.RoundToInt())), nil
	case OpCeil:
		return vectorResult(q.Op, fromVec3i(a.CeilToInt())), nil
	case OpFloor:
		return vectorResult(q.Op, fromVec3i(a.FloorToInt())), nil
	}
	return Result{}, unsupported(q, "Vec3")
}

func eval4(q Query) (Result, error) {
	a, b := q.A.vec4(), q.B.vec4()

	switch q.Op {
	case OpShorter:
		return boolResult(q.Op, a.IsShorterThan(b)), nil
	case OpLonger:
		return boolResult(q.Op, a.IsLongerThan(b)), nil
	case OpSameLength:
		return boolResult(q.Op, a.IsSameLengthAs(b)), nil
	case OpDirection:
		return vectorResult(q.Op, fromVec4(math.Direction(a, b))), nil
	case OpDirectionNormalized:
		return vectorResult(q.Op, fromVec4(math.DirectionNormalized(a, b))), nil
	case OpLength:
		return scalarResult(q.Op, a.Length()), nil
	case OpDistance:
		return scalarResult(q.Op, a.Distance(b)), nil
	case OpDot:
		return scalarResult(q.Op, a.Dot(b)), nil
	case OpLerp:
		return vectorResult(q.Op, fromVec4(a.Lerp(b, q.T))), nil
	case OpLerpUnclamped:
		return vectorResult(q.Op, fromVec4(a.LerpUnclamped(b, q.T))), nil
	case OpMax:
		return vectorResult(q.Op, fromVec4(a.Max(b))), nil
	case OpMin:
		return vectorResult(q.Op, fromVec4(a.Min(b))), nil
	case OpScale:
		return vectorResult(q.Op, fromVec4(a.Mul(b))), nil
	case OpProject:
		return vectorResult(q.Op, fromVec4(a.Project(b))), nil
	}
	return Result{}, unsupported(q, "Vec4")
}

func eval2i(q Query) (Result, error) {
	a, b := q.A.vec2i(), q.B.vec2i()

	switch q.Op {
	case OpShorter:
		return boolResult(q.Op, a.IsShorterThan(b)), nil
	case OpLonger:
		return boolResult(q.Op, a.IsLongerThan(b)), nil
	case OpSameLength:
		return boolResult(q.Op, a.IsSameLengthAs(b)), nil
	case OpDirection:
		return vectorResult(q.Op, fromVec2i(math.Direction(a, b))), nil
	case OpLength:
		return scalarResult(q.Op, a.Length()), nil
	case OpDistance:
		return scalarResult(q.Op, a.Distance(b)), nil
	case OpMax:
		return vectorResult(q.Op, fromVec2i(a.Max(b))), nil
	case OpMin:
		return vectorResult(q.Op, fromVec2i(a.Min(b))), nil
	case OpScale:
		return vectorResult(q.Op, fromVec2i(a.Mul(b))), nil
	}
	return Result{}, unsupported(q, "Vec2i")
}

func eval3i(q Query) (Result, error) {
	a, b := q.A.vec3i(), q.B.vec3i()

	switch q.Op {
	case OpShorter:
		return boolResult(q.Op, a.IsShorterThan(b)), nil
	case OpLonger:
		return boolResult(q.Op, a.IsLongerThan(b)), nil
	case OpSameLength:
		return boolResult(q.Op, a.IsSameLengthAs(b)), nil
	case OpDirection:
		return vectorResult(q.Op, fromVec3i(math.Direction(a, b))), nil
	case OpLength:
		return scalarResult(q.Op, a.Length()), nil
	case OpDistance:
		return scalarResult(q.Op, a.Distance(b)), nil
	case OpMax:
		return vectorResult(q.Op, fromVec3i(a.Max(b))), nil
	case OpMin:
		return vectorResult(q.Op, fromVec3i(a.Min(b))), nil
	case OpScale:
		return vectorResult(q.Op, fromVec3i(a.Mul(b))), nil
	}
	return Result{}, unsupported(q, "Vec3i")
}
