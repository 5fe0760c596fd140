package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCameraMatrixComposesProjectionAndView(t *testing.T) {
	cam := NewPerspectiveCamera(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0}, 60, 1, 0.1, 100)
	require.Equal(t, cam.ProjectionMatrix().Mul(cam.ViewMatrix()), cam.Matrix())
}

func TestCubeCameraFacesPointOutwardFromOrigin(t *testing.T) {
	cam := NewCubeCamera(1)
	cases := []struct {
		face CubeFace
		dir  Vector
	}{
		{FacePositiveX, Vector{1, 0, 0}},
		{FaceNegativeX, Vector{-1, 0, 0}},
		{FacePositiveY, Vector{0, 1, 0}},
		{FaceNegativeY, Vector{0, -1, 0}},
		{FacePositiveZ, Vector{0, 0, 1}},
		{FaceNegativeZ, Vector{0, 0, -1}},
	}
	for _, c := range cases {
		// A point ten units out along the face's outward
		// direction should project near the screen center with a
		// positive depth under that face's view-projection matrix.
		m := cam.CameraMatrix(c.face)
		p := m.MulPositionW(c.dir.MulScalar(10))
		require.Greaterf(t, p.W, 0.0, "face %s", c.face)
		ndcX, ndcY := p.X/p.W, p.Y/p.W
		require.InDeltaf(t, 0, ndcX, 0.05, "face %s ndcX", c.face)
		require.InDeltaf(t, 0, ndcY, 0.05, "face %s ndcY", c.face)
	}
}

func TestCubeCameraSixDistinctViews(t *testing.T) {
	cam := NewCubeCamera(1)
	seen := map[Matrix]bool{}
	for f := CubeFace(0); f < 6; f++ {
		v := cam.ViewMatrix(f)
		require.False(t, seen[v], "cube camera views must be distinct per face")
		seen[v] = true
	}
}
