package rasperi

import (
	"fmt"
	"math"
)

// Channel is the set of pixel component types Texture2D/TextureCube can
// hold: float64 for HDR/working buffers, uint8 for quantized LDR
// storage. Grounded on rasperi_texture_2d.h's Texture2D<T,C> template,
// adapted to Go generics with the channel count C carried as a runtime
// field (Go type parameters cannot be plain integers without the
// array-length trick, which would make every channel count a distinct
// instantiation for no benefit here).
type Channel interface {
	~float64 | ~uint8
}

// Texture2D is a generic 2D pixel buffer with an explicit channel count
// and an optional chain of progressively halved mipmaps.
type Texture2D[T Channel] struct {
	Width, Height int
	Channels      int
	Pixels        []T
	Mipmaps       []*Texture2D[T]
}

func NewTexture2D[T Channel](width, height, channels int) *Texture2D[T] {
	return &Texture2D[T]{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pixels:   make([]T, width*height*channels),
	}
}

func (t *Texture2D[T]) IsNull() bool {
	return t == nil || t.Width == 0 || t.Height == 0
}

func (t *Texture2D[T]) index(x, y int) int {
	return (y*t.Width + x) * t.Channels
}

// SetPixel writes c.Channels component values at integer coordinate
// (x, y). Out-of-range coordinates are ignored with a diagnostic,
// matching the source's bounds-checked pixel accessors.
func (t *Texture2D[T]) SetPixel(x, y int, c []T) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		Diag.Warnf("texture2d: set out of range (%d,%d) size=%dx%d", x, y, t.Width, t.Height)
		return
	}
	i := t.index(x, y)
	copy(t.Pixels[i:i+t.Channels], c)
}

// Pixel reads the component values at integer coordinate (x, y). Out of
// range reads return a zero pixel and emit a diagnostic.
func (t *Texture2D[T]) Pixel(x, y int) []T {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		Diag.Warnf("texture2d: get out of range (%d,%d) size=%dx%d", x, y, t.Width, t.Height)
		return make([]T, t.Channels)
	}
	i := t.index(x, y)
	out := make([]T, t.Channels)
	copy(out, t.Pixels[i:i+t.Channels])
	return out
}

// PixelAt reads with normalized coordinates in [0, 1], matching the
// source's normalized pixel() overload used by the equirect converter.
func (t *Texture2D[T]) PixelAt(u, v float64) []T {
	x := int(math.Floor(u * float64(t.Width-1)))
	y := int(math.Floor(v * float64(t.Height-1)))
	return t.Pixel(x, y)
}

func (t *Texture2D[T]) String() string {
	if len(t.Mipmaps) == 0 {
		return fmt.Sprintf("Texture2D[%dx%dx%d]", t.Width, t.Height, t.Channels)
	}
	return fmt.Sprintf("Texture2D[%dx%dx%d, %s]", t.Width, t.Height, t.Channels, t.mipmapSummary())
}
