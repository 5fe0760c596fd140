package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityMulPositionIsNoOp(t *testing.T) {
	v := Vector{3, -4, 5}
	require.Equal(t, v, Identity().MulPosition(v))
}

func TestTranslateMulPosition(t *testing.T) {
	m := Translate(Vector{1, 2, 3})
	require.Equal(t, Vector{4, 6, 8}, m.MulPosition(Vector{3, 4, 5}))
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	m := Translate(Vector{1, 2, 3}).Rotate(Vector{0, 1, 0}, 0.8).Scale(Vector{2, 3, 4})
	inv := m.Inverse()
	v := Vector{1, 1, 1}
	got := inv.MulPosition(m.MulPosition(v))
	require.InDelta(t, v.X, got.X, 1e-9)
	require.InDelta(t, v.Y, got.Y, 1e-9)
	require.InDelta(t, v.Z, got.Z, 1e-9)
}

func TestMatrixMulAssociative(t *testing.T) {
	a := Translate(Vector{1, 0, 0})
	b := Rotate(Vector{0, 0, 1}, 0.5)
	c := Scale(Vector{2, 2, 2})
	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	v := Vector{1, 2, 3}
	got1 := left.MulPosition(v)
	got2 := right.MulPosition(v)
	require.InDelta(t, got1.X, got2.X, 1e-9)
	require.InDelta(t, got1.Y, got2.Y, 1e-9)
	require.InDelta(t, got1.Z, got2.Z, 1e-9)
}

func TestPerspectiveRadiansMatchesPerspectiveDegrees(t *testing.T) {
	a := Perspective(90, 1, 0.1, 100)
	b := PerspectiveRadians(1.5707963267948966, 1, 0.1, 100)
	require.InDelta(t, a.X00, b.X00, 1e-9)
	require.InDelta(t, a.X11, b.X11, 1e-9)
}

func TestMulPositionWPreservesHomogeneousW(t *testing.T) {
	proj := Perspective(60, 1, 0.1, 100)
	w := proj.MulPositionW(Vector{0, 0, -5})
	require.Greater(t, w.W, 0.0)
}
