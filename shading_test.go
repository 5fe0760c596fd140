package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShadePhongFacingLightIsBrighterThanGrazing(t *testing.T) {
	mat := NewPhongMaterial()
	albedo := Color{1, 1, 1, 1}
	normal := Vector{0, 0, 1}
	eye := Vector{0, 0, 5}
	position := Vector{0, 0, 0}

	facing := ShadePhong(mat, position, normal, albedo, Light{Direction: Vector{0, 0, 1}, Color: Color{1, 1, 1, 1}}, eye)
	grazing := ShadePhong(mat, position, normal, albedo, Light{Direction: Vector{1, 0, 0}, Color: Color{1, 1, 1, 1}}, eye)

	require.Greater(t, facing.R, grazing.R)
}

func TestShadePhongBacklitIsAmbientOnly(t *testing.T) {
	mat := NewPhongMaterial()
	albedo := Color{1, 1, 1, 1}
	normal := Vector{0, 0, 1}
	eye := Vector{0, 0, 5}
	position := Vector{0, 0, 0}

	backlit := ShadePhong(mat, position, normal, albedo, Light{Direction: Vector{0, 0, -1}, Color: Color{1, 1, 1, 1}}, eye)
	require.InDelta(t, mat.Ambient.R, backlit.R, 1e-9)
}

func TestShadePBRWithoutIBLFallsBackToConstantAmbient(t *testing.T) {
	mat := NewPBRMaterial()
	normal := Vector{0, 0, 1}
	eye := Vector{0, 0, 5}
	position := Vector{0, 0, 0}

	result := ShadePBR(mat, position, normal, eye, Light{Direction: Vector{0, 0, -1}, Color: Color{1, 1, 1, 1}})
	// No direct contribution (light behind surface) and no IBL samplers
	// set, so the linear result is exactly the constant-ambient
	// fallback, scaled by AO, Reinhard tonemapped and gamma-encoded.
	linear := mat.Albedo.R * 0.03 * mat.AO
	want := LinearToSRGB(linear / (linear + 1))
	require.InDelta(t, want, result.R, 1e-9)
}

func TestShadePBRRoughSurfaceHasLowerSpecularPeak(t *testing.T) {
	position := Vector{0, 0, 0}
	normal := Vector{0, 0, 1}
	eye := Vector{0, 0, 5}
	light := Light{Direction: Vector{0, 0, 1}, Color: Color{1, 1, 1, 1}}

	smooth := NewPBRMaterial()
	smooth.Roughness = 0.05
	smooth.Metalness = 1

	rough := NewPBRMaterial()
	rough.Roughness = 0.95
	rough.Metalness = 1

	cSmooth := ShadePBR(smooth, position, normal, eye, light)
	cRough := ShadePBR(rough, position, normal, eye, light)

	// At the perfect mirror angle (light and eye both along the
	// normal), a lower roughness concentrates more energy at the peak.
	require.Greater(t, cSmooth.R, cRough.R)
}
