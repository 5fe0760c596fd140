package rasperi

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFScene reads a glTF 2.0 document from path and walks its node
// hierarchy, producing one Model per primitive of every mesh-carrying
// node, with the node's composed world transform stored in
// Model.Transform (the mesh itself stays in object space), grounded on
// the teacher's gltf.go (the only
// dependency the teacher itself actually imported). Animation, skins,
// morph targets and glTF extensions are not carried over — they belong
// to the teacher's scene.go/gltf_extensions.go/animation.go, which are
// out of SPEC_FULL.md's scope.
func LoadGLTFScene(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltfimport: opening %s: %w", path, err)
	}

	scene := NewScene()
	if doc.Scene == nil {
		return scene, nil
	}
	root := doc.Scenes[*doc.Scene]
	for _, nodeIdx := range root.Nodes {
		walkNode(doc, nodeIdx, NewTransform(), scene)
	}
	return scene, nil
}

func walkNode(doc *gltf.Document, nodeIdx uint32, parent Transform, scene *Scene) {
	node := doc.Nodes[nodeIdx]
	local := nodeLocalTransform(node)
	world := composeTransform(parent, local)

	if node.Mesh != nil {
		mesh := doc.Meshes[*node.Mesh]
		for i, prim := range mesh.Primitives {
			m, material, err := convertPrimitive(doc, prim)
			if err != nil {
				Diag.Errorf("gltfimport: node %q primitive %d: %v", node.Name, i, err)
				continue
			}
			name := node.Name
			if name == "" {
				name = mesh.Name
			}
			scene.AddModel(Model{Name: name, Mesh: m, Material: material, Transform: world})
		}
	}

	for _, child := range node.Children {
		walkNode(doc, child, world, scene)
	}
}

func nodeLocalTransform(node *gltf.Node) Transform {
	t := NewTransform()
	t.Position = Vector{float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2])}

	scale := Vector{float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2])}
	if scale == (Vector{}) {
		scale = Vector{1, 1, 1} // glTF's per-spec default scale
	}
	t.Scale = scale

	rot := Quaternion{
		V: Vector{float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2])},
		W: float64(node.Rotation[3]),
	}
	if rot == (Quaternion{}) {
		rot = QuaternionIdentity() // glTF's per-spec default rotation
	}
	t.Rotation = rot
	return t
}

// composeTransform folds a child's local TRS directly into its
// parent's TRS (rather than round-tripping through a 4x4 matrix and
// trying to decompose it back out, which is lossy under non-uniform
// scale): position is the parent's position plus the parent's rotated,
// scaled child position; rotation and scale compose directly.
func composeTransform(parent, local Transform) Transform {
	scaledLocalPos := parent.Scale.Mul(local.Position)
	rotatedPos := parent.Rotation.Rotate(scaledLocalPos)
	return Transform{
		Position: parent.Position.Add(rotatedPos),
		Rotation: parent.Rotation.Mul(local.Rotation),
		Scale:    parent.Scale.Mul(local.Scale),
	}
}

func convertPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*Mesh, Material, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, Material{}, fmt.Errorf("primitive missing POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, Material{}, fmt.Errorf("reading positions: %w", err)
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return nil, Material{}, fmt.Errorf("reading normals: %w", err)
		}
	}

	var texcoords [][2]float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		texcoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return nil, Material{}, fmt.Errorf("reading texcoords: %w", err)
		}
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		v := Vertex{
			Position: Vector{float64(p[0]), float64(p[1]), float64(p[2])},
			Color:    Color{1, 1, 1, 1},
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = Vector{float64(n[0]), float64(n[1]), float64(n[2])}
		}
		if i < len(texcoords) {
			uv := texcoords[i]
			v.Texcoord = Vector{float64(uv[0]), float64(uv[1]), 0}
		}
		vertices[i] = v
	}

	var indices32 []uint32
	if prim.Indices != nil {
		idx, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, Material{}, fmt.Errorf("reading indices: %w", err)
		}
		indices32 = idx
	} else {
		indices32 = make([]uint32, len(vertices))
		for i := range indices32 {
			indices32[i] = uint32(i)
		}
	}

	mesh := NewMesh(vertices, indices32)
	material := convertMaterial(doc, prim.Material)
	return mesh, material, nil
}

func convertMaterial(doc *gltf.Document, matIdx *uint32) Material {
	pbr := NewPBRMaterial()
	if matIdx == nil {
		return NewPBRMaterialSlot(pbr)
	}
	gm := doc.Materials[*matIdx]
	if gm.PBRMetallicRoughness != nil {
		mr := gm.PBRMetallicRoughness
		if mr.BaseColorFactor != nil {
			bc := mr.BaseColorFactor
			pbr.Albedo = Color{float64(bc[0]), float64(bc[1]), float64(bc[2]), float64(bc[3])}
		}
		if mr.MetallicFactor != nil {
			pbr.Metalness = float64(*mr.MetallicFactor)
		}
		if mr.RoughnessFactor != nil {
			pbr.Roughness = float64(*mr.RoughnessFactor)
		}
	}
	return NewPBRMaterialSlot(pbr)
}
