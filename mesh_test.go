package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func quadMesh() *Mesh {
	vertices := []Vertex{
		{Position: Vector{-1, -1, 0}},
		{Position: Vector{1, -1, 0}},
		{Position: Vector{1, 1, 0}},
		{Position: Vector{-1, 1, 0}},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return NewMesh(vertices, indices)
}

func TestMeshTriangleCountAndAccess(t *testing.T) {
	m := quadMesh()
	require.Equal(t, 2, m.TriangleCount())
	a, b, c := m.Triangle(1)
	require.Equal(t, Vector{-1, -1, 0}, a.Position)
	require.Equal(t, Vector{1, 1, 0}, b.Position)
	require.Equal(t, Vector{-1, 1, 0}, c.Position)
}

func TestMeshBoundingBoxAndCenter(t *testing.T) {
	m := quadMesh()
	box := m.BoundingBox()
	require.Equal(t, Vector{-1, -1, 0}, box.Min)
	require.Equal(t, Vector{1, 1, 0}, box.Max)
	require.Equal(t, Vector{0, 0, 0}, m.Center())
}

func TestMeshTransformMovesPositionsAndNormals(t *testing.T) {
	m := quadMesh()
	m.Vertices[0].Normal = Vector{0, 0, 1}

	moved := m.Transform(Translate(Vector{5, 0, 0}))
	require.Equal(t, Vector{4, -1, 0}, moved.Vertices[0].Position)
	// Original mesh is untouched by Transform (it copies first).
	require.Equal(t, Vector{-1, -1, 0}, m.Vertices[0].Position)

	rotated := m.Transform(Rotate(Vector{0, 0, 1}, 1.0))
	require.InDelta(t, 1.0, rotated.Vertices[0].Normal.Length(), 1e-9)
}

func TestMeshReverseWindingSwapsSecondAndThird(t *testing.T) {
	m := quadMesh()
	reversed := m.ReverseWinding()
	require.Equal(t, []uint32{0, 2, 1, 0, 3, 2}, reversed.Indices)
	require.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
}

func TestMeshSmoothNormalsAveragesSharedVertex(t *testing.T) {
	m := quadMesh()
	smoothed := m.SmoothNormals()
	for _, v := range smoothed.Vertices {
		require.InDelta(t, 1.0, v.Normal.Length(), 1e-9)
		require.InDelta(t, 0.0, v.Normal.X, 1e-9)
		require.InDelta(t, 0.0, v.Normal.Y, 1e-9)
	}
}

func TestMeshMoveToRepositionsAnchor(t *testing.T) {
	m := quadMesh()
	moved := m.MoveTo(Vector{10, 10, 10}, Vector{0.5, 0.5, 0.5})
	require.InDelta(t, 10, moved.Center().X, 1e-9)
	require.InDelta(t, 10, moved.Center().Y, 1e-9)
	require.InDelta(t, 10, moved.Center().Z, 1e-9)
}
