package rasperi

import (
	"image"
	"image/color"
	"math"
)

// Framebuffer is the render target: an RGBA color buffer plus a
// matching depth buffer, grounded on rasperi_framebuffer.h. Unlike the
// source's generic memset-to-zero Framebuffer<T>::clear(), the depth
// buffer here clears to +Inf (so the first strictly-less-than test
// always passes) while the color buffer clears to zero, per spec §3's
// Framebuffer invariants.
type Framebuffer struct {
	Width, Height int
	Color         []Color
	Depth         []float64
}

func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]Color, width*height),
		Depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

func (fb *Framebuffer) Clear() {
	for i := range fb.Color {
		fb.Color[i] = Color{}
		fb.Depth[i] = math.Inf(1)
	}
}

func (fb *Framebuffer) index(x, y int) int {
	return y*fb.Width + x
}

func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

func (fb *Framebuffer) SetColor(x, y int, c Color) {
	fb.Color[fb.index(x, y)] = c
}

func (fb *Framebuffer) GetColor(x, y int) Color {
	return fb.Color[fb.index(x, y)]
}

func (fb *Framebuffer) SetDepth(x, y int, z float64) {
	fb.Depth[fb.index(x, y)] = z
}

func (fb *Framebuffer) GetDepth(x, y int) float64 {
	return fb.Depth[fb.index(x, y)]
}

// ToImage renders the color buffer into a stdlib image.NRGBA for
// output to PNG, grounded on rasperi_framebuffer.h's toQImage.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.GetColor(x, y).NRGBA8()
			img.SetNRGBA(x, y, color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]})
		}
	}
	return img
}
