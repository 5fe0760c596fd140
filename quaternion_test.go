package rasperi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuaternionIdentityRotationIsNoOp(t *testing.T) {
	v := Vector{1, 2, 3}
	got := QuaternionIdentity().Rotate(v)
	require.InDelta(t, v.X, got.X, 1e-12)
	require.InDelta(t, v.Y, got.Y, 1e-12)
	require.InDelta(t, v.Z, got.Z, 1e-12)
}

func TestQuaternionAxisAngleRotatesQuarterTurn(t *testing.T) {
	q := AxisAngle(Vector{0, 0, 1}, math.Pi/2)
	got := q.Rotate(Vector{1, 0, 0})
	require.InDelta(t, 0, got.X, 1e-9)
	require.InDelta(t, 1, got.Y, 1e-9)
	require.InDelta(t, 0, got.Z, 1e-9)
}

func TestQuaternionRotatePreservesLength(t *testing.T) {
	q := AxisAngle(Vector{1, 1, 0}, 1.234)
	v := Vector{3, -5, 7}
	got := q.Rotate(v)
	require.InDelta(t, v.Length(), got.Length(), 1e-9)
}

func TestQuaternionMatrixAgreesWithRotate(t *testing.T) {
	q := AxisAngle(Vector{0, 1, 0}, 0.9)
	v := Vector{1, 0.5, -0.25}
	viaRotate := q.Rotate(v)
	viaMatrix := q.Matrix().MulDirection(v.Normalize()).MulScalar(v.Length())
	require.InDelta(t, viaRotate.X, viaMatrix.X, 1e-6)
	require.InDelta(t, viaRotate.Y, viaMatrix.Y, 1e-6)
	require.InDelta(t, viaRotate.Z, viaMatrix.Z, 1e-6)
}

func TestQuaternionMulComposesRotations(t *testing.T) {
	q1 := AxisAngle(Vector{0, 0, 1}, math.Pi/2)
	q2 := AxisAngle(Vector{0, 0, 1}, math.Pi/2)
	composed := q1.Mul(q2)
	got := composed.Rotate(Vector{1, 0, 0})
	require.InDelta(t, -1, got.X, 1e-9)
	require.InDelta(t, 0, got.Y, 1e-9)
}

func TestQuaternionConjugateInvertsRotation(t *testing.T) {
	q := AxisAngle(Vector{0, 1, 0}, 0.7)
	v := Vector{1, 2, 3}
	roundTrip := q.Conjugate().Rotate(q.Rotate(v))
	require.InDelta(t, v.X, roundTrip.X, 1e-9)
	require.InDelta(t, v.Y, roundTrip.Y, 1e-9)
	require.InDelta(t, v.Z, roundTrip.Z, 1e-9)
}
