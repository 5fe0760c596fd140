package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeBRDFLUTProducesValidScaleBias(t *testing.T) {
	lut := ComputeBRDFLUT(8)
	require.Equal(t, 8, lut.Width)
	require.Equal(t, 8, lut.Height)
	require.Equal(t, 2, lut.Channels)

	for y := 0; y < lut.Height; y++ {
		for x := 0; x < lut.Width; x++ {
			p := lut.Pixel(x, y)
			// Both the Fresnel scale (A) and bias (B) terms are
			// energy-conserving weights; the split-sum approximation
			// keeps them within [0, 1] across the sampled domain.
			require.GreaterOrEqual(t, p[0], 0.0)
			require.LessOrEqual(t, p[0], 1.01)
			require.GreaterOrEqual(t, p[1], 0.0)
			require.LessOrEqual(t, p[1], 1.01)
		}
	}
}

func TestComputeBRDFLUTIsDeterministic(t *testing.T) {
	a := ComputeBRDFLUT(8)
	b := ComputeBRDFLUT(8)
	require.Equal(t, a.Pixels, b.Pixels)
}
