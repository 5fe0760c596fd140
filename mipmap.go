package rasperi

import "fmt"

// MinMipmapSize is the smallest edge length a mipmap level may have;
// generation stops once a further halving would go below it. Grounded
// on rasperi_texture_mipmaps.h's MIN_MIPMAP_SIZE constant.
const MinMipmapSize = 16

// GenerateMipmaps validates the square/power-of-two/>=16 precondition
// and fills in t.Mipmaps with a chain of 2x2-box-filtered halvings down
// to (but not below) MinMipmapSize. On precondition failure it logs a
// diagnostic and leaves Mipmaps empty, matching the source's validated
// generate<T,C>().
func GenerateMipmaps[T Channel](t *Texture2D[T]) {
	if t.IsNull() {
		return
	}
	if t.Width != t.Height {
		Diag.Warnf("mipmap: texture must be square, got %dx%d", t.Width, t.Height)
		return
	}
	if !isPowerOfTwo(t.Width) {
		Diag.Warnf("mipmap: texture size must be a power of two, got %d", t.Width)
		return
	}
	if t.Width < MinMipmapSize {
		Diag.Warnf("mipmap: texture size must be at least %d, got %d", MinMipmapSize, t.Width)
		return
	}

	t.Mipmaps = nil
	current := t
	for current.Width > MinMipmapSize {
		next := scaleMinify(current)
		t.Mipmaps = append(t.Mipmaps, next)
		current = next
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// scaleMinify halves both dimensions via a 2x2 box filter, averaging
// four source texels per destination texel.
func scaleMinify[T Channel](src *Texture2D[T]) *Texture2D[T] {
	w, h := src.Width/2, src.Height/2
	dst := NewTexture2D[T](w, h, src.Channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			avg := average(src, x*2, y*2)
			dst.SetPixel(x, y, avg)
		}
	}
	return dst
}

// average computes the 4-texel mean of the 2x2 block at (x, y).
func average[T Channel](src *Texture2D[T], x, y int) []T {
	c := src.Channels
	sum := make([]float64, c)
	for _, p := range [][2]int{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
		px := src.Pixel(p[0], p[1])
		for i := 0; i < c; i++ {
			sum[i] += float64(px[i])
		}
	}
	out := make([]T, c)
	for i := 0; i < c; i++ {
		out[i] = T(sum[i] / 4)
	}
	return out
}

func (t *Texture2D[T]) mipmapSummary() string {
	return fmt.Sprintf("%d levels from %dx%d down to %dx%d", len(t.Mipmaps), t.Width, t.Height, MinMipmapSize, MinMipmapSize)
}
