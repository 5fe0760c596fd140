package rasperi

import "math"

// FragmentShader computes the final color for an interpolated vertex,
// optionally returning Discard to skip the write. Matches the shape of
// shader.go's Shader.Fragment but is a plain function value rather than
// an interface, since this port has exactly two concrete shading
// models (Phong, PBR) selected via the tagged-union Material.
type FragmentShader func(v Vertex) Color

// RasterizeTriangle projects, clips-by-guard, and fills a single
// triangle into fb using the top-left fill rule and perspective-correct
// barycentric interpolation, grounded step-for-step on
// rasperi_primitive_rasterizer_triangle.cpp.
func RasterizeTriangle(fb *Framebuffer, mvp Matrix, a, b, c Vertex, shade FragmentShader) {
	RasterizeTriangleBand(fb, mvp, a, b, c, shade, 0, fb.Height-1)
}

// RasterizeTriangleBand is RasterizeTriangle restricted to screen rows
// [yLo, yHi]. The rasterizer's row-band concurrency (§5) calls this
// directly so that each worker goroutine only ever touches the rows it
// owns — no synchronization is needed across bands, and the per-pixel
// depth-test/color-write remains the only read-modify-write, which is
// confined to a single worker's rows.
func RasterizeTriangleBand(fb *Framebuffer, mvp Matrix, a, b, c Vertex, shade FragmentShader, yLo, yHi int) {
	// Step 1: project to clip space, guarding the w<=0 degenerate case
	// (spec §4.4.1 step 1; this port does not implement a frustum
	// clipper — §9 Open Question 1 is left unresolved upstream too).
	pa := mvp.MulPositionW(a.Position)
	pb := mvp.MulPositionW(b.Position)
	pc := mvp.MulPositionW(c.Position)
	if pa.W <= 0 || pb.W <= 0 || pc.W <= 0 {
		Diag.Warnf("rasterize_triangle: skipped degenerate triangle (w<=0)")
		return
	}

	ndcA := Vector{pa.X / pa.W, pa.Y / pa.W, pa.Z / pa.W}
	ndcB := Vector{pb.X / pb.W, pb.Y / pb.W, pb.Z / pb.W}
	ndcC := Vector{pc.X / pc.W, pc.Y / pc.W, pc.Z / pc.W}

	sa := viewportTransform(ndcA, fb.Width, fb.Height)
	sb := viewportTransform(ndcB, fb.Width, fb.Height)
	sc := viewportTransform(ndcC, fb.Width, fb.Height)

	area := edgeFunction2(sa, sb, sc)
	if area == 0 {
		return
	}

	minX := clampInt(int(math.Floor(min3(sa.X, sb.X, sc.X))), 0, fb.Width-1)
	maxX := clampInt(int(math.Ceil(max3(sa.X, sb.X, sc.X))), 0, fb.Width-1)
	minY := clampInt(int(math.Floor(min3(sa.Y, sb.Y, sc.Y))), 0, fb.Height-1)
	maxY := clampInt(int(math.Ceil(max3(sa.Y, sb.Y, sc.Y))), 0, fb.Height-1)
	minY = clampInt(minY, yLo, yHi)
	maxY = clampInt(maxY, yLo, yHi)
	if minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Vector{float64(x) + 0.5, float64(y) + 0.5, 0}

			w0 := edgeFunction2(sb, sc, p)
			w1 := edgeFunction2(sc, sa, p)
			w2 := edgeFunction2(sa, sb, p)

			if !topLeftCovers(sb, sc, w0, area) ||
				!topLeftCovers(sc, sa, w1, area) ||
				!topLeftCovers(sa, sb, w2, area) {
				continue
			}

			w0 /= area
			w1 /= area
			w2 /= area

			// Depth: z = 1/sum(w_k/p_k.z) over the NDC z values.
			// Attributes are perspective-correct: each vertex is weighted
			// by its reciprocal clip-space w, so they interpolate linearly
			// in view space rather than in screen space.
			invZA, invZB, invZC := 1/ndcA.Z, 1/ndcB.Z, 1/ndcC.Z
			z := 1 / (w0*invZA + w1*invZB + w2*invZC)
			if math.IsInf(z, 0) || math.IsNaN(z) {
				continue
			}

			depthIdx := y*fb.Width + x
			if z >= fb.Depth[depthIdx] {
				continue
			}

			invWA, invWB, invWC := 1/pa.W, 1/pb.W, 1/pc.W
			invW := w0*invWA + w1*invWB + w2*invWC
			wa := w0 * invWA / invW
			wb := w1 * invWB / invW
			wc := w2 * invWC / invW

			vert := a.interpolate(b, c, wa, wb, wc)
			color := shade(vert)
			if color == Discard {
				continue
			}

			fb.Depth[depthIdx] = z
			fb.Color[depthIdx] = color
		}
	}
}

func viewportTransform(ndc Vector, w, h int) Vector {
	return Vector{
		(ndc.X + 1) * 0.5 * float64(w-1),
		float64(h-1) - (ndc.Y+1)*0.5*float64(h-1),
		ndc.Z,
	}
}

func edgeFunction2(a, b, c Vector) float64 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

// topLeftCovers applies the top-left fill rule: a triangle edge shared
// between two triangles' tie-break pixels belongs to exactly one
// triangle, avoiding double-shading/gaps along shared edges (§4.4.2).
func topLeftCovers(from, to Vector, w, area float64) bool {
	edge := to.Sub(from)
	if area > 0 {
		if w > 0 {
			return true
		}
		if w < 0 {
			return false
		}
		return isTopLeftEdge(edge)
	}
	if w < 0 {
		return true
	}
	if w > 0 {
		return false
	}
	return isTopLeftEdge(edge)
}

func isTopLeftEdge(edge Vector) bool {
	return (edge.Y == 0 && edge.X > 0) || edge.Y > 0
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
