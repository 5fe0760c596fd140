package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxCenterAndSize(t *testing.T) {
	b := Box{Min: Vector{0, 0, 0}, Max: Vector{2, 4, 6}}
	require.Equal(t, Vector{2, 4, 6}, b.Size())
	require.Equal(t, Vector{1, 2, 3}, b.Center())
}

func TestBoxAnchor(t *testing.T) {
	b := Box{Min: Vector{0, 0, 0}, Max: Vector{10, 10, 10}}
	require.Equal(t, Vector{0, 0, 0}, b.Anchor(Vector{0, 0, 0}))
	require.Equal(t, Vector{10, 10, 10}, b.Anchor(Vector{1, 1, 1}))
}

func TestBoxExtendOfEmptyReturnsOther(t *testing.T) {
	b := Box{Min: Vector{1, 1, 1}, Max: Vector{2, 2, 2}}
	require.Equal(t, b, EmptyBox.Extend(b))
}

func TestBoxExtendUnionsBounds(t *testing.T) {
	a := Box{Min: Vector{0, 0, 0}, Max: Vector{1, 1, 1}}
	b := Box{Min: Vector{-1, 2, 0}, Max: Vector{0.5, 3, 5}}
	got := a.Extend(b)
	require.Equal(t, Vector{-1, 0, 0}, got.Min)
	require.Equal(t, Vector{1, 3, 5}, got.Max)
}

func TestBoxContains(t *testing.T) {
	b := Box{Min: Vector{0, 0, 0}, Max: Vector{1, 1, 1}}
	require.True(t, b.Contains(Vector{0.5, 0.5, 0.5}))
	require.False(t, b.Contains(Vector{1.5, 0.5, 0.5}))
}

func TestBoxIntersectsAndIntersection(t *testing.T) {
	a := Box{Min: Vector{0, 0, 0}, Max: Vector{2, 2, 2}}
	b := Box{Min: Vector{1, 1, 1}, Max: Vector{3, 3, 3}}
	require.True(t, a.Intersects(b))
	got := a.Intersection(b)
	require.Equal(t, Vector{1, 1, 1}, got.Min)
	require.Equal(t, Vector{2, 2, 2}, got.Max)
}

func TestBoxNonIntersectingReturnsEmpty(t *testing.T) {
	a := Box{Min: Vector{0, 0, 0}, Max: Vector{1, 1, 1}}
	b := Box{Min: Vector{5, 5, 5}, Max: Vector{6, 6, 6}}
	require.False(t, a.Intersects(b))
	require.Equal(t, EmptyBox, a.Intersection(b))
}

func TestBoxFitCameraFramesTheBox(t *testing.T) {
	b := Box{Min: Vector{-1, -1, -1}, Max: Vector{1, 1, 1}}
	eye, target, far := b.FitCamera(0.1)

	require.Equal(t, b.Center(), target)
	radius := b.Size().Length()
	require.Equal(t, target.Add(Vector{X: radius, Y: radius * 0.5, Z: radius}), eye)
	require.Equal(t, radius*10+10, far)
}

func TestBoxTranslateShiftsBothCorners(t *testing.T) {
	b := Box{Min: Vector{0, 0, 0}, Max: Vector{1, 1, 1}}
	got := b.Translate(Vector{5, -2, 0})
	require.Equal(t, Vector{5, -2, 0}, got.Min)
	require.Equal(t, Vector{6, -1, 1}, got.Max)
}
