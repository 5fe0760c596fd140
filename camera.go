package rasperi

import "math"

// Camera is a perspective camera producing a view and a projection
// matrix, adapted from the teacher's NewPerspectiveCamera/GetViewMatrix/
// GetProjectionMatrix, trimmed of the orbit/first-person controllers
// and the frustum-culling scene renderer (out of this batch renderer's
// scope — §9 Open Question 1 leaves frustum handling unresolved).
type Camera struct {
	Eye, Center, Up Vector
	FOVDegrees      float64
	Aspect          float64
	Near, Far       float64
}

func NewPerspectiveCamera(eye, center, up Vector, fovDegrees, aspect, near, far float64) *Camera {
	return &Camera{
		Eye: eye, Center: center, Up: up,
		FOVDegrees: fovDegrees, Aspect: aspect, Near: near, Far: far,
	}
}

func (c *Camera) ViewMatrix() Matrix {
	return LookAt(c.Eye, c.Center, c.Up)
}

func (c *Camera) ProjectionMatrix() Matrix {
	return Perspective(c.FOVDegrees, c.Aspect, c.Near, c.Far)
}

func (c *Camera) Matrix() Matrix {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// CubeCamera is the shared rasterization rig used by the three IBL
// precomputation passes and the equirect-to-cubemap converter: six
// fixed per-face view matrices sharing one 90-degree-FOV projection,
// grounded bit-for-bit on rasperi_cube_camera.cpp's quaternion-composed
// face rotations (near 0.1, far 150.0).
type CubeCamera struct {
	projection Matrix
	views      [6]Matrix
}

func NewCubeCamera(aspectRatio float64) *CubeCamera {
	rotations := [6]Quaternion{
		// +X
		AxisAngle(Vector{0, 1, 0}, -math.Pi/2).Mul(AxisAngle(Vector{0, 0, 1}, math.Pi)),
		// -X
		AxisAngle(Vector{0, 1, 0}, math.Pi/2).Mul(AxisAngle(Vector{0, 0, 1}, math.Pi)),
		// +Y
		AxisAngle(Vector{1, 0, 0}, -math.Pi/2),
		// -Y
		AxisAngle(Vector{1, 0, 0}, math.Pi/2),
		// +Z
		AxisAngle(Vector{0, 1, 0}, math.Pi).Mul(AxisAngle(Vector{0, 0, 1}, math.Pi)),
		// -Z
		AxisAngle(Vector{0, 1, 0}, 0).Mul(AxisAngle(Vector{0, 0, 1}, math.Pi)),
	}

	const (
		fov  = math.Pi / 2
		near = 0.1
		far  = 150.0
	)

	cc := &CubeCamera{
		projection: PerspectiveRadians(fov, aspectRatio, near, far),
	}
	for i, q := range rotations {
		cc.views[i] = q.Matrix()
	}
	return cc
}

func (cc *CubeCamera) ViewMatrix(face CubeFace) Matrix {
	return cc.views[face]
}

func (cc *CubeCamera) ProjectionMatrix() Matrix {
	return cc.projection
}

// CameraMatrix returns the combined projection*view matrix for face.
func (cc *CubeCamera) CameraMatrix(face CubeFace) Matrix {
	return cc.projection.Mul(cc.views[face])
}
