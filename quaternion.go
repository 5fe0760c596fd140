package rasperi

import "math"

// Quaternion is a rotation represented as V (the imaginary/vector part)
// plus W (the real part), adapted to this repo's float64 Vector type.
type Quaternion struct {
	V Vector
	W float64
}

func QuaternionIdentity() Quaternion {
	return Quaternion{Vector{0, 0, 0}, 1}
}

// AxisAngle builds a rotation of a radians around axis (normalized).
func AxisAngle(axis Vector, a float64) Quaternion {
	axis = axis.Normalize()
	s := math.Sin(a / 2)
	c := math.Cos(a / 2)
	return Quaternion{axis.MulScalar(s), c}
}

func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		V: Vector{
			X: q.W*r.V.X + q.V.X*r.W + q.V.Y*r.V.Z - q.V.Z*r.V.Y,
			Y: q.W*r.V.Y - q.V.X*r.V.Z + q.V.Y*r.W + q.V.Z*r.V.X,
			Z: q.W*r.V.Z + q.V.X*r.V.Y - q.V.Y*r.V.X + q.V.Z*r.W,
		},
		W: q.W*r.W - q.V.Dot(r.V),
	}
}

func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.V.Dot(q.V) + q.W*q.W)
}

func (q Quaternion) Unit() Quaternion {
	n := q.Norm()
	if n == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{q.V.DivScalar(n), q.W / n}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.V.Negate(), q.W}
}

// Matrix converts the (unit) quaternion into its equivalent 4x4
// rotation matrix, grounded on the standard quaternion-to-matrix
// derivation adapted from soypat-glgl/math/ms3's RotationMat3.
func (q Quaternion) Matrix() Matrix {
	q = q.Unit()
	x, y, z, w := q.V.X, q.V.Y, q.V.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, yy, zz := x*x2, y*y2, z*z2
	xy, xz, yz := x*y2, x*z2, y*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Matrix{
		1 - (yy + zz), xy - wz, xz + wy, 0,
		xy + wz, 1 - (xx + zz), yz - wx, 0,
		xz - wy, yz + wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}
}

// Rotate applies the quaternion's rotation to a vector directly
// (v' = v + 2w(q.V x v) + 2(q.V x (q.V x v))), without the
// length-normalizing side effect Matrix().MulDirection has.
func (q Quaternion) Rotate(v Vector) Vector {
	t := q.V.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(q.V.Cross(t))
}
