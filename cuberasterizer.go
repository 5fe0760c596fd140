package rasperi

import "math"

// ndcCubeVertices/ndcCubeIndices describe a [-1,1]^3 cube, shared by
// every pass that walks all six CubeCamera faces pixel-by-pixel and
// needs, for each covered screen pixel, the corresponding object-space
// direction on the unit cube. Grounded on the CubeRasterizer helper
// class shared by rasperi_pbr_ibl_irradiance.cpp,
// rasperi_pbr_ibl_prefilter.cpp and
// rasperi_equirectangular_to_cubemap.cpp.
var ndcCubeVertices = [8]Vector{
	{-1, -1, -1}, {1, 1, -1}, {1, -1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var ndcCubeIndices = [36]int{
	2, 1, 0, 3, 0, 1,
	6, 5, 4, 4, 7, 6,
	0, 3, 7, 7, 4, 0,
	1, 2, 6, 5, 6, 2,
	5, 2, 0, 0, 4, 5,
	1, 6, 3, 7, 3, 6,
}

// CancelToken lets a long-running IBL pass be interrupted between
// cube faces/rows, per spec §5's cancellation requirement.
type CancelToken struct {
	cancelled bool
}

func (c *CancelToken) Cancel() {
	if c != nil {
		c.cancelled = true
	}
}

func (c *CancelToken) Cancelled() bool {
	return c != nil && c.cancelled
}

// CubeRasterize walks all six CubeCamera faces at resolution size x
// size, and for every screen pixel whose footprint covers the unit
// cube, invokes callback with the normalized object-space direction of
// that texel. It is the common skeleton behind the irradiance,
// prefilter and equirect-to-cubemap passes.
func CubeRasterize(size int, cancel *CancelToken, callback func(face CubeFace, u, v float64, dir Vector)) {
	cam := NewCubeCamera(1.0)

	for face := CubeFace(0); face < 6; face++ {
		if cancel.Cancelled() {
			return
		}
		mvp := cam.CameraMatrix(face)

		for i := 0; i < len(ndcCubeIndices); i += 3 {
			v1 := ndcCubeVertices[ndcCubeIndices[i+0]]
			v2 := ndcCubeVertices[ndcCubeIndices[i+1]]
			v3 := ndcCubeVertices[ndcCubeIndices[i+2]]

			p1, ok1 := projectCube(mvp, v1)
			p2, ok2 := projectCube(mvp, v2)
			p3, ok3 := projectCube(mvp, v3)
			if !ok1 || !ok2 || !ok3 {
				continue
			}

			s1 := viewportTransform(p1, size, size)
			s2 := viewportTransform(p2, size, size)
			s3 := viewportTransform(p3, size, size)

			area := edgeFunction2(s1, s2, s3)
			if area == 0 {
				continue
			}

			minX := clampInt(int(math.Floor(min3(s1.X, s2.X, s3.X))), 0, size-1)
			maxX := clampInt(int(math.Ceil(max3(s1.X, s2.X, s3.X))), 0, size-1)
			minY := clampInt(int(math.Floor(min3(s1.Y, s2.Y, s3.Y))), 0, size-1)
			maxY := clampInt(int(math.Ceil(max3(s1.Y, s2.Y, s3.Y))), 0, size-1)

			for y := minY; y <= maxY; y++ {
				if cancel.Cancelled() {
					return
				}
				for x := minX; x <= maxX; x++ {
					p := Vector{float64(x) + 0.5, float64(y) + 0.5, 0}
					w0 := edgeFunction2(s2, s3, p)
					w1 := edgeFunction2(s3, s1, p)
					w2 := edgeFunction2(s1, s2, p)
					if area > 0 {
						if w0 < 0 || w1 < 0 || w2 < 0 {
							continue
						}
					} else {
						if w0 > 0 || w1 > 0 || w2 > 0 {
							continue
						}
					}

					w0 /= area
					w1 /= area
					w2 /= area

					invZ1, invZ2, invZ3 := 1/p1.Z, 1/p2.Z, 1/p3.Z
					z := 1 / (w0*invZ1 + w1*invZ2 + w2*invZ3)

					q1 := v1.DivScalar(p1.Z)
					q2 := v2.DivScalar(p2.Z)
					q3 := v3.DivScalar(p3.Z)
					dir := q1.MulScalar(w0 * z).Add(q2.MulScalar(w1 * z)).Add(q3.MulScalar(w2 * z))

					fc := DirectionToFace(dir.Normalize())
					callback(fc.Face, fc.U, fc.V, dir.Normalize())
				}
			}
		}
	}
}

func projectCube(m Matrix, p Vector) (Vector, bool) {
	v := m.MulPositionW(p)
	if v.W == 0 {
		return Vector{}, false
	}
	return Vector{v.X / v.W, v.Y / v.W, v.Z / v.W}, true
}
