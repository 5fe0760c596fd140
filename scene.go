package rasperi

// Model pairs a mesh with a material and its placement transform — the
// unit the external glTF importer produces, per spec's "list of
// models, each with name/mesh/material/transform" external-importer
// contract. Replaces the teacher's much larger node-graph Scene
// (skinning, morph targets, animation, glTF extension registry), none
// of which is in SPEC_FULL.md's scope.
type Model struct {
	Name      string
	Mesh      *Mesh
	Material  Material
	Transform Transform
}

// Scene is a flat collection of Models sharing one camera.
type Scene struct {
	Models []Model
	Camera *Camera
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) AddModel(m Model) {
	s.Models = append(s.Models, m)
}

// Bounds returns the union of every model's world-space bounding box.
func (s *Scene) Bounds() Box {
	box := EmptyBox
	for _, m := range s.Models {
		if m.Mesh == nil {
			continue
		}
		world := m.Mesh.BoundingBox().Transform(m.Transform.Matrix())
		box = box.Extend(world)
	}
	return box
}

// Render draws every model in the scene through r in order.
func (s *Scene) Render(r *Rasterizer) {
	for _, m := range s.Models {
		if m.Mesh == nil {
			continue
		}
		r.DrawMesh(m.Mesh, m.Transform, m.Material)
	}
}
