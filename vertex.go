package rasperi

// Vertex carries the per-vertex attributes the primitive rasterizer
// interpolates across a triangle or line: position (object space until
// the rasterizer projects it), normal, vertex color and texture
// coordinate. Grounded on the attribute set read per-vertex in
// rasperi_primitive_rasterizer_triangle.cpp.
type Vertex struct {
	Position Vector
	Normal   Vector
	Color    Color
	Texcoord Vector // Z unused; texcoords are 2D (U, V, 0)
}

func (v Vertex) Outside() bool {
	return false
}

func (a Vertex) interpolate(b, c Vertex, wa, wb, wc float64) Vertex {
	var result Vertex
	result.Position = a.Position.MulScalar(wa).Add(b.Position.MulScalar(wb)).Add(c.Position.MulScalar(wc))
	result.Normal = a.Normal.MulScalar(wa).Add(b.Normal.MulScalar(wb)).Add(c.Normal.MulScalar(wc))
	result.Color = a.Color.MulScalar(wa).Add(b.Color.MulScalar(wb)).Add(c.Color.MulScalar(wc))
	result.Texcoord = a.Texcoord.MulScalar(wa).Add(b.Texcoord.MulScalar(wb)).Add(c.Texcoord.MulScalar(wc))
	return result
}

func (a Vertex) Transform(m Matrix) Vertex {
	a.Position = m.MulPosition(a.Position)
	a.Normal = m.MulDirection(a.Normal)
	return a
}
