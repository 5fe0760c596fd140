package rasperi

import "math"

// RasterizeLine draws a single line segment with a simple perspective
// DDA walk and per-pixel depth test, the line-primitive counterpart to
// RasterizeTriangle (§4.4).
func RasterizeLine(fb *Framebuffer, mvp Matrix, a, b Vertex, shade FragmentShader) {
	pa := mvp.MulPositionW(a.Position)
	pb := mvp.MulPositionW(b.Position)
	if pa.W <= 0 || pb.W <= 0 {
		Diag.Warnf("rasterize_line: skipped degenerate line (w<=0)")
		return
	}

	ndcA := Vector{pa.X / pa.W, pa.Y / pa.W, pa.Z / pa.W}
	ndcB := Vector{pb.X / pb.W, pb.Y / pb.W, pb.Z / pb.W}
	sa := viewportTransform(ndcA, fb.Width, fb.Height)
	sb := viewportTransform(ndcB, fb.Width, fb.Height)

	steps := int(math.Max(math.Abs(sb.X-sa.X), math.Abs(sb.Y-sa.Y)))
	if steps == 0 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(sa.X + (sb.X-sa.X)*t))
		y := int(math.Round(sa.Y + (sb.Y-sa.Y)*t))
		if !fb.InBounds(x, y) {
			continue
		}
		// Perspective-correct depth interpolation, matching
		// RasterizeTriangle's z = 1/sum(w_k/p_k.z) convention.
		invZA, invZB := 1/sa.Z, 1/sb.Z
		z := 1 / ((1-t)*invZA + t*invZB)
		if math.IsInf(z, 0) || math.IsNaN(z) {
			continue
		}
		idx := y*fb.Width + x
		if z >= fb.Depth[idx] {
			continue
		}
		vert := a.interpolate(a, b, 1-t, 0, t)
		color := shade(vert)
		if color == Discard {
			continue
		}
		fb.Depth[idx] = z
		fb.Color[idx] = color
	}
}
