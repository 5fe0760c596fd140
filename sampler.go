package rasperi

import "math"

// WrapMode selects how out-of-[0,1] texture coordinates are resolved,
// named after advanced_texture.go's TextureWrap enum.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
)

// FilterMode selects the per-texel reconstruction filter, named after
// advanced_texture.go's TextureFilter enum (Mipmap selection is handled
// by the caller passing the already-selected mip level's Sampler2D).
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// Sampler2D wraps a float64 Texture2D with the wrap/filter/gamma policy
// described in spec §4.2, grounded on rasperi_sampler.cpp.
type Sampler2D struct {
	Texture *Texture2D[float64]
	Wrap    WrapMode
	Filter  FilterMode
	// Gamma, when true, linearizes sampled values by raising them to
	// the power 2.2 (sRGB-encoded source textures).
	Gamma bool
}

func NewSampler2D(t *Texture2D[float64]) *Sampler2D {
	return &Sampler2D{Texture: t, Wrap: WrapRepeat, Filter: FilterLinear}
}

func wrapCoord(c float64, mode WrapMode) float64 {
	switch mode {
	case WrapClamp:
		return clamp01(c)
	default: // WrapRepeat
		c = math.Mod(c, 1.0)
		if c < 0 {
			c += 1.0
		}
		return c
	}
}

// mapCoord flips v (textures are stored top-down, texcoords are
// bottom-up) before wrapping, matching rasperi_sampler.cpp's
// sampleRgbaNearest/sampleRgbaLinear's `1.0 - texCoord.y`.
func (s *Sampler2D) mapCoord(u, v float64) (float64, float64) {
	v = 1.0 - v
	return wrapCoord(u, s.Wrap), wrapCoord(v, s.Wrap)
}

func (s *Sampler2D) linearize(c []float64) []float64 {
	if !s.Gamma {
		return c
	}
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = SRGBToLinear(v)
	}
	return out
}

// Sample reads a texel at texture coordinate (u, v) with the
// configured wrap and filter modes, returning raw channel values
// (length Texture.Channels).
func (s *Sampler2D) Sample(u, v float64) []float64 {
	if s.Texture.IsNull() {
		return nil
	}
	u, v = s.mapCoord(u, v)

	switch s.Filter {
	case FilterNearest:
		return s.linearize(s.nearest(u, v))
	default:
		return s.linearize(s.bilinear(u, v))
	}
}

func (s *Sampler2D) nearest(u, v float64) []float64 {
	t := s.Texture
	x := int(math.Floor(u * float64(t.Width)))
	y := int(math.Floor(v * float64(t.Height)))
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)
	return t.Pixel(x, y)
}

// bilinear performs a 2x2 weighted blend centered on (u, v), grounded
// on the source's sampleRgbaLinear template.
func (s *Sampler2D) bilinear(u, v float64) []float64 {
	t := s.Texture
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x0c := clampInt(x0, 0, t.Width-1)
	x1c := clampInt(x0+1, 0, t.Width-1)
	y0c := clampInt(y0, 0, t.Height-1)
	y1c := clampInt(y0+1, 0, t.Height-1)

	p00 := t.Pixel(x0c, y0c)
	p10 := t.Pixel(x1c, y0c)
	p01 := t.Pixel(x0c, y1c)
	p11 := t.Pixel(x1c, y1c)

	out := make([]float64, t.Channels)
	for i := 0; i < t.Channels; i++ {
		top := p00[i]*(1-tx) + p10[i]*tx
		bottom := p01[i]*(1-tx) + p11[i]*tx
		out[i] = top*(1-ty) + bottom*ty
	}
	return out
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// SampleColor is a convenience wrapper returning the first four
// channels as a Color (0 for any missing channel, alpha defaults to 1).
func (s *Sampler2D) SampleColor(u, v float64) Color {
	c := s.Sample(u, v)
	col := Color{A: 1}
	if len(c) > 0 {
		col.R = c[0]
	}
	if len(c) > 1 {
		col.G = c[1]
	}
	if len(c) > 2 {
		col.B = c[2]
	}
	if len(c) > 3 {
		col.A = c[3]
	}
	return col
}

// SamplerCube wraps a TextureCube[float64] with the same bilinear
// reconstruction, resolving a direction to its face before sampling.
type SamplerCube struct {
	Texture *TextureCube[float64]
	Filter  FilterMode
}

func NewSamplerCube(t *TextureCube[float64]) *SamplerCube {
	return &SamplerCube{Texture: t, Filter: FilterLinear}
}

func (s *SamplerCube) Sample(dir Vector) Color {
	if s.Texture.IsNull() {
		return Color{}
	}
	fc := DirectionToFace(dir.Normalize())
	face := s.Texture.Face(fc.Face)
	sampler := &Sampler2D{Texture: face, Wrap: WrapClamp, Filter: s.Filter}
	return sampler.SampleColor(fc.U, 1-fc.V)
}
