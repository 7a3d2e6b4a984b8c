package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseVector(t *testing.T) {
	t.Run("Forms", func(t *testing.T) {
		for _, s := range []string{"1,2", "(1, 2)", "[1,2]", " 1 , 2 "} {
			v, err := ParseVector(s)
			require.NoError(t, err, s)
			assert.Equal(t, Vector{1, 2}, v, s)
		}

		v, err := ParseVector("(1.5, -2, 3e2, 0)")
		require.NoError(t, err)
		assert.Equal(t, Vector{1.5, -2, 300, 0}, v)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "1", "1,2,3,4,5", "a,b", "1,,2"} {
			_, err := ParseVector(s)
			assert.ErrorIs(t, err, ErrBadVector, s)
		}
	})
}

func TestVectorYAML(t *testing.T) {
	var q Query
	err := yaml.Unmarshal([]byte(`{op: shorter, a: "1, 2", b: [3, 4]}`), &q)
	require.NoError(t, err)
	assert.Equal(t, OpShorter, q.Op)
	assert.Equal(t, Vector{1, 2}, q.A)
	assert.Equal(t, Vector{3, 4}, q.B)

	out, err := yaml.Marshal(Result{Op: OpDirection, Vector: Vector{3, 5.5}})
	require.NoError(t, err)
	assert.Equal(t, "op: direction\nvector: [3, 5.5]\n", string(out))

	err = yaml.Unmarshal([]byte(`{op: shorter, a: [1]}`), &q)
	assert.ErrorIs(t, err, ErrBadVector)
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"shorter", Query{Op: OpShorter, A: Vector{1, 2}, B: Vector{3, 4}}, "true"},
		{"same length", Query{Op: OpSameLength, A: Vector{3, 4}, B: Vector{5, 0}}, "true"},
		{"longer", Query{Op: OpLonger, A: Vector{3, 0}, B: Vector{2, 2}}, "true"},
		{"direction", Query{Op: OpDirection, A: Vector{1, 1}, B: Vector{4, 6}}, "(3, 5)"},
		{"direction normalized", Query{Op: OpDirectionNormalized, A: Vector{1, 1}, B: Vector{4, 1}}, "(1, 0)"},
		{"direction normalized same point", Query{Op: OpDirectionNormalized, A: Vector{2, 2, 2}, B: Vector{2, 2, 2}}, "(0, 0, 0)"},
		{"direction 3d", Query{Op: OpDirection, A: Vector{1, 2, 3}, B: Vector{5, 4, 0}}, "(4, 2, -3)"},
		{"shorter 4d", Query{Op: OpShorter, A: Vector{1, 1, 1, 1}, B: Vector{10, 10, 10, 10}}, "true"},
		{"length", Query{Op: OpLength, A: Vector{3, 4}}, "5"},
		{"distance", Query{Op: OpDistance, A: Vector{1, 1, 1}, B: Vector{4, 5, 1}}, "5"},
		{"dot", Query{Op: OpDot, A: Vector{1, 2, 3, 4}, B: Vector{4, 3, 2, 1}}, "20"},
		{"lerp clamped", Query{Op: OpLerp, A: Vector{0, 0}, B: Vector{10, 20}, T: 1.5}, "(10, 20)"},
		{"lerp unclamped", Query{Op: OpLerpUnclamped, A: Vector{0, 0}, B: Vector{10, 20}, T: 1.5}, "(15, 30)"},
		{"max", Query{Op: OpMax, A: Vector{1, 5}, B: Vector{3, 2}}, "(3, 5)"},
		{"min", Query{Op: OpMin, A: Vector{1, 5}, B: Vector{3, 2}}, "(1, 2)"},
		{"scale", Query{Op: OpScale, A: Vector{1, 2, 3}, B: Vector{2, 2, 2}}, "(2, 4, 6)"},
		{"reflect", Query{Op: OpReflect, A: Vector{1, -1}, B: Vector{0, 1}}, "(1, 1)"},
		{"perpendicular", Query{Op: OpPerpendicular, A: Vector{2, 3}}, "(-3, 2)"},
		{"cross", Query{Op: OpCross, A: Vector{1, 0, 0}, B: Vector{0, 1, 0}}, "(0, 0, 1)"},
		{"project", Query{Op: OpProject, A: Vector{1, 2, 3}, B: Vector{0, 0, 2}}, "(0, 0, 3)"},
		{"project on plane", Query{Op: OpProjectOnPlane, A: Vector{1, 2, 3}, B: Vector{0, 0, 2}}, "(1, 2, 0)"},
		{"round", Query{Op: OpRound, A: Vector{3.4, 5.7}}, "(3, 6)"},
		{"ceil", Query{Op: OpCeil, A: Vector{3.1, 5.7, -0.5}}, "(4, 6, 0)"},
		{"floor", Query{Op: OpFloor, A: Vector{3.9, 5.2}}, "(3, 5)"},
		{"int shorter", Query{Op: OpShorter, A: Vector{1, 2}, B: Vector{3, 4}, Int: true}, "true"},
		{"int direction", Query{Op: OpDirection, A: Vector{1, 1, 1}, B: Vector{4, 6, 0}, Int: true}, "(3, 5, -1)"},
		{"int distance", Query{Op: OpDistance, A: Vector{0, 0}, B: Vector{3, 4}, Int: true}, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.query.Op, res.Op)
			assert.Equal(t, tt.want, res.Format(-1))
		})
	}
}

func TestEvaluateApprox(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  Vector // single component for scalar results
	}{
		{"angle", Query{Op: OpAngle, A: Vector{1, 0}, B: Vector{0, 1}}, Vector{90}},
		{"signed angle", Query{Op: OpSignedAngle, A: Vector{0, 1}, B: Vector{1, 0}}, Vector{-90}},
		{"signed angle 3d", Query{Op: OpSignedAngle, A: Vector{1, 0, 0}, B: Vector{0, 1, 0}, Axis: Vector{0, 0, 1}}, Vector{90}},
		{"signed angle 3d flipped axis", Query{Op: OpSignedAngle, A: Vector{1, 0, 0}, B: Vector{0, 1, 0}, Axis: Vector{0, 0, -1}}, Vector{-90}},
		{"clamp length", Query{Op: OpClampLength, A: Vector{3, 4}, T: 2.5}, Vector{1.5, 2}},
		{"clamp length under", Query{Op: OpClampLength, A: Vector{3, 4}, T: 10}, Vector{3, 4}},
		{"direction normalized 4d", Query{Op: OpDirectionNormalized, A: Vector{0, 0, 0, 0}, B: Vector{1, 1, 1, 1}}, Vector{0.5, 0.5, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.query)
			require.NoError(t, err)
			got := res.Vector
			if res.Scalar != nil {
				got = Vector{*res.Scalar}
			}
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-4)
			}
		})
	}
}

func TestResultFormat(t *testing.T) {
	yes := true
	f := float32(2.0 / 3.0)

	assert.Equal(t, "true", Result{Bool: &yes}.Format(4))
	assert.Equal(t, "0.6667", Result{Scalar: &f}.Format(4))
	assert.Equal(t, "(1.00, -0.50)", Result{Vector: Vector{1, -0.5}}.Format(2))
	assert.Equal(t, "error: boom", Result{Error: "boom"}.Format(4))
	assert.True(t, Result{Error: "boom"}.Failed())
	assert.False(t, Result{Bool: &yes}.Failed())
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  error
	}{
		{"unknown op", Query{Op: "teleport", A: Vector{1, 2}}, ErrUnknownOp},
		{"scalar operand", Query{Op: OpLength, A: Vector{1}}, ErrArity},
		{"missing b", Query{Op: OpDistance, A: Vector{1, 2}}, ErrMissingOperand},
		{"arity mismatch", Query{Op: OpShorter, A: Vector{1, 2}, B: Vector{1, 2, 3}}, ErrArityMismatch},
		{"3d signed angle without axis", Query{Op: OpSignedAngle, A: Vector{1, 0, 0}, B: Vector{0, 1, 0}}, ErrMissingOperand},
		{"cross in 2d", Query{Op: OpCross, A: Vector{1, 0}, B: Vector{0, 1}}, ErrUnsupported},
		{"round in 4d", Query{Op: OpRound, A: Vector{1, 2, 3, 4}}, ErrUnsupported},
		{"int 4d", Query{Op: OpShorter, A: Vector{1, 2, 3, 4}, B: Vector{1, 2, 3, 4}, Int: true}, ErrArity},
		{"int fractional", Query{Op: OpShorter, A: Vector{1.5, 2}, B: Vector{1, 2}, Int: true}, ErrNotInteger},
		{"int angle", Query{Op: OpAngle, A: Vector{1, 0}, B: Vector{0, 1}, Int: true}, ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.query)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.query.Op, res.Op)
		})
	}
}

func TestOps(t *testing.T) {
	all := Ops()
	assert.Len(t, all, len(ops))
	for i := 1; i < len(all); i++ {
		assert.Less(t, string(all[i-1]), string(all[i]))
	}
	for _, op := range all {
		assert.NotEmpty(t, op.Summary(), op)
	}
}

func TestQueryString(t *testing.T) {
	q := Query{Op: OpLerp, A: Vector{0, 0}, B: Vector{10, 20}, T: 0.5}
	assert.Equal(t, "lerp (0, 0) (10, 20) t=0.5", q.String())
}
