package rasperi

import (
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"
)

// EquirectToCubemap converts an equirectangular HDR/LDR environment
// image into a TextureCube[float64] of the given face size, grounded
// on rasperi_equirectangular_to_cubemap.cpp's sampleSphericalMap +
// CubeRasterizer walk. Before sampling, the source image is downscaled
// with github.com/nfnt/resize to roughly the cube face's working
// resolution, mirroring the QImage::scaled step the original performs
// on its background image ahead of the IBL passes (see SPEC_FULL.md
// DOMAIN STACK).
func EquirectToCubemap(src *Texture2D[float64], faceSize int, cancel *CancelToken) *TextureCube[float64] {
	working := downscaleEquirect(src, faceSize*4)
	out := NewTextureCube[float64](faceSize, 4)

	CubeRasterize(faceSize, cancel, func(face CubeFace, u, v float64, dir Vector) {
		n := dir.Normalize()
		su, sv := sampleSphericalMap(n)
		c := working.PixelAt(su, sv)

		x, y := texelCoord(u, v, faceSize)
		out.Face(face).SetPixel(x, y, padChannels(c, 4))
	})
	return out
}

// sampleSphericalMap maps a direction to equirectangular UV, grounded
// exactly on the original's invAtan = (0.1591, 0.3183) constants.
func sampleSphericalMap(v Vector) (float64, float64) {
	const invAtanX = 0.1591
	const invAtanY = 0.3183
	u := math.Atan2(v.Z, v.X)*invAtanX + 0.5
	vv := math.Asin(clampFloat(v.Y, -1, 1))*invAtanY + 0.5
	return u, vv
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func padChannels(c []float64, n int) []float64 {
	if len(c) >= n {
		return c[:n]
	}
	out := make([]float64, n)
	copy(out, c)
	if n == 4 && len(c) < 4 {
		out[3] = 1
	}
	return out
}

// downscaleEquirect resizes a float64 HDR equirect texture down to the
// target width (preserving aspect) using github.com/nfnt/resize's
// Lanczos3 filter over an intermediate image.RGBA64 built from the
// float data, then decodes back into a Texture2D[float64].
func downscaleEquirect(src *Texture2D[float64], targetWidth int) *Texture2D[float64] {
	if targetWidth >= src.Width {
		return src
	}
	targetHeight := targetWidth * src.Height / src.Width

	img := image.NewRGBA64(image.Rect(0, 0, src.Width, src.Height))
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			p := src.Pixel(x, y)
			img.SetRGBA64(x, y, toRGBA64(p))
		}
	}

	resized := resize.Resize(uint(targetWidth), uint(targetHeight), img, resize.Lanczos3)

	out := NewTexture2D[float64](targetWidth, targetHeight, src.Channels)
	bounds := resized.Bounds()
	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			r, g, b, a := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.SetPixel(x, y, padChannels([]float64{
				float64(r) / 65535,
				float64(g) / 65535,
				float64(b) / 65535,
				float64(a) / 65535,
			}, src.Channels))
		}
	}
	return out
}

func toRGBA64(p []float64) color.RGBA64 {
	f := func(v float64) uint16 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint16(v * 65535)
	}
	return color.RGBA64{
		R: f(get(p, 0)),
		G: f(get(p, 1)),
		B: f(get(p, 2)),
		A: f(getOr(p, 3, 1)),
	}
}

func get(p []float64, i int) float64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}

func getOr(p []float64, i int, def float64) float64 {
	if i < len(p) {
		return p[i]
	}
	return def
}
