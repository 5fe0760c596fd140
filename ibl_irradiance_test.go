package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func constantBackground(radiance Color) *SamplerCube {
	tc := NewTextureCube[float64](2, 4)
	for _, f := range tc.Faces {
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				f.SetPixel(x, y, []float64{radiance.R, radiance.G, radiance.B, radiance.A})
			}
		}
	}
	return NewSamplerCube(tc)
}

func TestComputeIrradianceOfConstantBackgroundReturnsThatRadiance(t *testing.T) {
	bg := constantBackground(Color{R: 0.5, G: 0.5, B: 0.5, A: 1})
	irr := ComputeIrradiance(bg, 2, nil)

	for _, f := range irr.Faces {
		p := f.Pixel(0, 0)
		// The hemisphere-weighted convolution of a constant-radiance
		// background returns (approximately) that same radiance, which
		// is the whole point of the pi-normalized accumulation.
		require.InDelta(t, 0.5, p[0], 0.1)
		require.InDelta(t, 0.5, p[1], 0.1)
		require.InDelta(t, 0.5, p[2], 0.1)
	}
}

func TestComputeIrradianceRespectsCancellation(t *testing.T) {
	bg := constantBackground(Color{R: 1, G: 1, B: 1, A: 1})
	cancel := &CancelToken{}
	cancel.Cancel()
	irr := ComputeIrradiance(bg, 2, cancel)
	require.NotNil(t, irr)
	// Cancelled before the first face, so no texel is ever written.
	for _, f := range irr.Faces {
		for _, c := range f.Pixels {
			require.Equal(t, 0.0, c)
		}
	}
}
