package rasperi

import "math"

// ComputeBRDFLUT builds the 2D split-sum BRDF integration LUT: for
// every (NdotV, roughness) texel, 1024 GGX-importance-sampled directions
// are accumulated into a scale/bias pair (A, B) via Smith-GGX with the
// IBL-specific k = roughness^2/2 (not the direct-lighting k used by
// ShadePBR's geometrySmith), grounded exactly on
// rasperi_pbr_ibl_brdf_integration.cpp's integrateBRDF.
func ComputeBRDFLUT(size int) *Texture2D[float64] {
	const sampleCount = 1024
	out := NewTexture2D[float64](size, size, 2)

	for y := 0; y < size; y++ {
		roughness := (float64(y) + 0.5) / float64(size)
		for x := 0; x < size; x++ {
			nDotV := (float64(x) + 0.5) / float64(size)
			a, b := integrateBRDF(nDotV, roughness, sampleCount)
			out.SetPixel(x, y, []float64{a, b})
		}
	}
	return out
}

func integrateBRDF(nDotV, roughness float64, sampleCount int) (float64, float64) {
	v := Vector{math.Sqrt(1 - nDotV*nDotV), 0, nDotV}
	n := Vector{0, 0, 1}

	var a, b float64
	for i := 0; i < sampleCount; i++ {
		xi := hammersley(i, sampleCount)
		h := importanceSampleGGX(xi, n, roughness)
		l := h.MulScalar(2 * v.Dot(h)).Sub(v).Normalize()

		nDotL := math.Max(l.Z, 0)
		nDotH := math.Max(h.Z, 0)
		vDotH := math.Max(v.Dot(h), 0)

		if nDotL <= 0 {
			continue
		}

		k := roughness * roughness / 2
		gVis := geometrySchlickGGXIBL(nDotV, k) * geometrySchlickGGXIBL(nDotL, k) * vDotH / (nDotH*nDotV + 1e-5)
		fc := math.Pow(1-vDotH, 5)

		a += (1 - fc) * gVis
		b += fc * gVis
	}
	return a / float64(sampleCount), b / float64(sampleCount)
}

// geometrySchlickGGXIBL is geometrySchlickGGX but named distinctly to
// make clear it is always called with the IBL k = roughness^2/2, never
// the direct-light k = (roughness+1)^2/8 ShadePBR uses.
func geometrySchlickGGXIBL(nDotV, k float64) float64 {
	return geometrySchlickGGX(nDotV, k)
}
