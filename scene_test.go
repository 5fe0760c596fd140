package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSceneBoundsOfEmptySceneIsEmptyBox(t *testing.T) {
	s := NewScene()
	require.Equal(t, EmptyBox, s.Bounds())
}

func TestSceneBoundsUnionsTransformedModels(t *testing.T) {
	s := NewScene()
	s.AddModel(Model{Mesh: quadMesh(), Transform: NewTransform()})
	s.AddModel(Model{Mesh: quadMesh(), Transform: NewTransform().Translate(Vector{10, 0, 0})})

	b := s.Bounds()
	require.InDelta(t, -1, b.Min.X, 1e-9)
	require.InDelta(t, 11, b.Max.X, 1e-9)
}

func TestSceneBoundsSkipsModelsWithNilMesh(t *testing.T) {
	s := NewScene()
	s.AddModel(Model{Mesh: nil})
	require.Equal(t, EmptyBox, s.Bounds())
}

func TestSceneRenderDrawsEveryModel(t *testing.T) {
	cam := NewPerspectiveCamera(Vector{0, 0, 5}, Vector{0, 0, 0}, Vector{0, 1, 0}, 60, 1, 0.1, 100)
	cfg := DefaultRenderConfig(64, 64)
	r := NewRasterizer(cfg, cam)

	s := NewScene()
	s.AddModel(Model{
		Mesh:      triangleMesh(),
		Material:  NewPhongMaterialSlot(NewPhongMaterial()),
		Transform: NewTransform(),
	})
	s.Render(r)

	require.NotEqual(t, Color{}, r.Framebuffer.GetColor(32, 32))
}
