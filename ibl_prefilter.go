package rasperi

import "math"

// ComputePrefilter builds the prefiltered specular cubemap's mipmap
// chain: mip level L samples background with GGX importance sampling at
// roughness = L/(mipCount-1), grounded on
// rasperi_pbr_ibl_prefilter.cpp. Per §9 Open Question 2 and the
// original's own dead (#if 0) real-GGX callback, this implements the
// simpler uniform-per-mip-level form (no saTexel/saSample solid-angle
// mip bias).
func ComputePrefilter(background *SamplerCube, baseSize, mipCount int, cancel *CancelToken) *TextureCube[float64] {
	const sampleCount = 1024

	base := NewTextureCube[float64](baseSize, 4)
	levels := make([]*TextureCube[float64], mipCount)

	size := baseSize
	for mip := 0; mip < mipCount; mip++ {
		if cancel.Cancelled() {
			break
		}
		roughness := 0.0
		if mipCount > 1 {
			roughness = float64(mip) / float64(mipCount-1)
		}
		level := NewTextureCube[float64](size, 4)

		CubeRasterize(size, cancel, func(face CubeFace, u, v float64, n Vector) {
			vdir := n

			var prefiltered Vector
			totalWeight := 0.0
			for i := 0; i < sampleCount; i++ {
				xi := hammersley(i, sampleCount)
				h := importanceSampleGGX(xi, n, roughness)
				l := h.MulScalar(2 * vdir.Dot(h)).Sub(vdir).Normalize()

				nDotL := n.Dot(l)
				if nDotL <= 0 {
					continue
				}
				c := background.Sample(l)
				prefiltered = prefiltered.Add(Vector{c.R, c.G, c.B}.MulScalar(nDotL))
				totalWeight += nDotL
			}
			if totalWeight > 0 {
				prefiltered = prefiltered.DivScalar(totalWeight)
			}

			x, y := texelCoord(u, v, size)
			level.Face(face).SetPixel(x, y, []float64{prefiltered.X, prefiltered.Y, prefiltered.Z, 1})
		})

		levels[mip] = level
		if size > MinMipmapSize {
			size /= 2
		}
	}

	if len(levels) > 0 && levels[0] != nil {
		base = levels[0]
		for i := 1; i < len(levels); i++ {
			for f := CubeFace(0); f < 6; f++ {
				base.Face(f).Mipmaps = append(base.Face(f).Mipmaps, levels[i].Face(f))
			}
		}
	}
	return base
}

// hammersley generates the i-th point of a 2D low-discrepancy sequence
// over N samples (bit-reversed radical inverse in base 2), grounded on
// the Hammersley/GGX importance sampling in
// rasperi_pbr_ibl_brdf_integration.cpp.
func hammersley(i, n int) [2]float64 {
	return [2]float64{float64(i) / float64(n), radicalInverseVdC(uint32(i))}
}

func radicalInverseVdC(bits uint32) float64 {
	bits = (bits << 16) | (bits >> 16)
	bits = ((bits & 0x55555555) << 1) | ((bits & 0xAAAAAAAA) >> 1)
	bits = ((bits & 0x33333333) << 2) | ((bits & 0xCCCCCCCC) >> 2)
	bits = ((bits & 0x0F0F0F0F) << 4) | ((bits & 0xF0F0F0F0) >> 4)
	bits = ((bits & 0x00FF00FF) << 8) | ((bits & 0xFF00FF00) >> 8)
	return float64(bits) * 2.3283064365386963e-10 // / 0x100000000
}

func importanceSampleGGX(xi [2]float64, n Vector, roughness float64) Vector {
	a := roughness * roughness
	phi := 2 * pi * xi[0]
	cosTheta := math.Sqrt((1 - xi[1]) / (1 + (a*a-1)*xi[1]))
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	h := Vector{sinTheta * math.Cos(phi), sinTheta * math.Sin(phi), cosTheta}

	up := Vector{0, 1, 0}
	if math.Abs(n.Z) > 0.999 {
		up = Vector{1, 0, 0}
	}
	tangent := up.Cross(n).Normalize()
	bitangent := n.Cross(tangent)

	return tangent.MulScalar(h.X).Add(bitangent.MulScalar(h.Y)).Add(n.MulScalar(h.Z)).Normalize()
}
