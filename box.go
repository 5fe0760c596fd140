package rasperi

// EmptyBox is the zero-volume box used as the fold seed by
// Scene.Bounds()/Mesh.BoundingBox() — Extend special-cases it so a
// union over zero models/vertices stays a box rather than always
// swallowing the origin.
var EmptyBox = Box{}

// Box is an axis-aligned world-space bounding volume: the shape
// Mesh.BoundingBox/Scene.Bounds produce and that Matrix.MulBox
// transforms when a mesh or scene moves.
type Box struct {
	Min, Max Vector
}

// Anchor returns the point inside the box at fractional coordinate
// anchor (0 = Min corner, 1 = Max corner per axis), the convention
// Mesh.MoveTo uses to place a model by an arbitrary pivot (its
// bounding-box center, a corner, its floor, ...) rather than always its
// geometric center.
func (a Box) Anchor(anchor Vector) Vector {
	return a.Min.Add(a.Size().Mul(anchor))
}

func (a Box) Center() Vector {
	return a.Anchor(Vector{0.5, 0.5, 0.5})
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

// Extend grows the box to also cover b, used to fold per-vertex and
// per-model boxes into one scene-wide bound.
func (a Box) Extend(b Box) Box {
	if a == EmptyBox {
		return b
	}
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Offset(x float64) Box {
	return Box{a.Min.SubScalar(x), a.Max.AddScalar(x)}
}

func (a Box) Translate(v Vector) Box {
	return Box{a.Min.Add(v), a.Max.Add(v)}
}

func (a Box) Contains(b Vector) bool {
	return a.Min.X <= b.X && a.Max.X >= b.X &&
		a.Min.Y <= b.Y && a.Max.Y >= b.Y &&
		a.Min.Z <= b.Z && a.Max.Z >= b.Z
}

func (a Box) Intersects(b Box) bool {
	return !(a.Min.X > b.Max.X || a.Max.X < b.Min.X || a.Min.Y > b.Max.Y ||
		a.Max.Y < b.Min.Y || a.Min.Z > b.Max.Z || a.Max.Z < b.Min.Z)
}

func (a Box) Intersection(b Box) Box {
	if !a.Intersects(b) {
		return EmptyBox
	}
	min := a.Min.Max(b.Min)
	max := a.Max.Min(b.Max)
	min, max = min.Min(max), min.Max(max)
	return Box{min, max}
}

// Transform re-bounds the box under m, recomputing Min/Max from the
// transformed corners (Matrix.MulBox) rather than just transforming
// the two existing corner points, which would be wrong under rotation.
func (a Box) Transform(m Matrix) Box {
	return m.MulBox(a)
}

// FitCamera derives a default eye position, look-at target and far
// clip distance that frame this box entirely, the bounding-volume math
// a glTF scene viewer needs to place a camera without per-asset tuning
// (cmd/rasperi-render has no other source of scale for an arbitrary
// imported scene). eye is offset above and to the side of the box so
// the default view isn't a flat head-on silhouette.
func (a Box) FitCamera(near float64) (eye, target Vector, far float64) {
	target = a.Center()
	radius := a.Size().Length()
	eye = target.Add(Vector{X: radius, Y: radius * 0.5, Z: radius})
	far = radius*10 + near*100
	return eye, target, far
}
