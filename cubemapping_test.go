package rasperi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionToFaceAxes(t *testing.T) {
	cases := []struct {
		name string
		dir  Vector
		face CubeFace
	}{
		{"+X", Vector{1, 0, 0}, FacePositiveX},
		{"-X", Vector{-1, 0, 0}, FaceNegativeX},
		{"+Y", Vector{0, 1, 0}, FacePositiveY},
		{"-Y", Vector{0, -1, 0}, FaceNegativeY},
		{"+Z", Vector{0, 0, 1}, FacePositiveZ},
		{"-Z", Vector{0, 0, -1}, FaceNegativeZ},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fc := DirectionToFace(c.dir)
			require.Equal(t, c.face, fc.Face)
			require.InDelta(t, 0.5, fc.U, 1e-9)
			require.InDelta(t, 0.5, fc.V, 1e-9)
		})
	}
}

func TestDirectionToFaceTiePriority(t *testing.T) {
	// Equal magnitude on X and Y: X wins per the documented tie priority.
	fc := DirectionToFace(Vector{1, 1, 0})
	require.Equal(t, FacePositiveX, fc.Face)

	// Equal magnitude on Y and Z: Y wins.
	fc = DirectionToFace(Vector{0, 1, 1})
	require.Equal(t, FacePositiveY, fc.Face)
}

func TestFaceToDirectionRoundTrip(t *testing.T) {
	dirs := []Vector{
		{1, 0.3, -0.2},
		{-1, -0.7, 0.4},
		{0.1, 1, 0.6},
		{0.2, -1, -0.9},
		{-0.5, 0.1, 1},
		{0.4, -0.3, -1},
	}
	for _, d := range dirs {
		fc := DirectionToFace(d)
		back := FaceToDirection(fc.Face, fc.U, fc.V).Normalize()
		require.InDelta(t, 0, d.Normalize().Distance(back), 1e-6)
	}
}

func TestCubeFaceString(t *testing.T) {
	require.Equal(t, "+X", FacePositiveX.String())
	require.Equal(t, "-Z", FaceNegativeZ.String())
}

func TestDirectionToFaceCoversUnitSphere(t *testing.T) {
	// Sample a grid of directions and confirm every (face,u,v) falls
	// within [0,1] and every face is hit at least once.
	hit := map[CubeFace]bool{}
	for theta := 0.0; theta < 2*math.Pi; theta += 0.31 {
		for phi := 0.05; phi < math.Pi; phi += 0.29 {
			d := Vector{
				X: math.Sin(phi) * math.Cos(theta),
				Y: math.Cos(phi),
				Z: math.Sin(phi) * math.Sin(theta),
			}
			fc := DirectionToFace(d)
			require.GreaterOrEqual(t, fc.U, 0.0)
			require.LessOrEqual(t, fc.U, 1.0)
			require.GreaterOrEqual(t, fc.V, 0.0)
			require.LessOrEqual(t, fc.V, 1.0)
			hit[fc.Face] = true
		}
	}
	require.Len(t, hit, 6)
}
