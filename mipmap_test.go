package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMipmapsBoxFilterLaw(t *testing.T) {
	tex := NewTexture2D[float64](32, 32, 1)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			tex.SetPixel(x, y, []float64{float64(x + y)})
		}
	}

	GenerateMipmaps(tex)
	require.NotEmpty(t, tex.Mipmaps)
	require.Equal(t, 16, tex.Mipmaps[0].Width)

	// A 2x2 box filter average of a linear ramp at (0,0)-(1,0)-(0,1)-(1,1)
	// is the mean of {0,1,1,2} = 1.
	require.InDelta(t, 1.0, tex.Mipmaps[0].Pixel(0, 0)[0], 1e-9)
}

func TestGenerateMipmapsStopsAtMinSize(t *testing.T) {
	tex := NewTexture2D[float64](32, 32, 1)
	GenerateMipmaps(tex)
	last := tex.Mipmaps[len(tex.Mipmaps)-1]
	require.Equal(t, MinMipmapSize, last.Width)
}

func TestGenerateMipmapsRejectsNonSquare(t *testing.T) {
	tex := NewTexture2D[float64](32, 16, 1)
	GenerateMipmaps(tex)
	require.Empty(t, tex.Mipmaps)
}

func TestGenerateMipmapsRejectsNonPowerOfTwo(t *testing.T) {
	tex := NewTexture2D[float64](24, 24, 1)
	GenerateMipmaps(tex)
	require.Empty(t, tex.Mipmaps)
}

func TestGenerateMipmapsSkipsBelowMinSize(t *testing.T) {
	tex := NewTexture2D[float64](16, 16, 1)
	GenerateMipmaps(tex)
	require.Empty(t, tex.Mipmaps)
}
