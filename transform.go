package rasperi

// Transform is a TRS (translate * rotate * scale) node transform,
// grounded on rasperi_transform.cpp: a position, a quaternion rotation
// and a per-axis scale composed into a single 4x4 matrix.
type Transform struct {
	Position Vector
	Rotation Quaternion
	Scale    Vector
}

func NewTransform() Transform {
	return Transform{
		Position: Vector{0, 0, 0},
		Rotation: QuaternionIdentity(),
		Scale:    Vector{1, 1, 1},
	}
}

// Matrix composes the transform into world space: scale first, then
// rotate, then translate.
func (t Transform) Matrix() Matrix {
	m := Scale(t.Scale)
	m = t.Rotation.Matrix().Mul(m)
	m = Translate(t.Position).Mul(m)
	return m
}

func (t Transform) Translate(v Vector) Transform {
	t.Position = t.Position.Add(v)
	return t
}

func (t Transform) Rotate(axis Vector, radians float64) Transform {
	t.Rotation = AxisAngle(axis, radians).Mul(t.Rotation)
	return t
}

func (t Transform) ScaleBy(v Vector) Transform {
	t.Scale = t.Scale.Mul(v)
	return t
}
