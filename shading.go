package rasperi

import "math"

// Light is a single directional light used by Phong shading, grounded
// on shader.go's PhongShader.LightDirection/ObjectColor fields.
type Light struct {
	Direction Vector // points from the surface toward the light
	Color     Color
}

// ShadePhong implements the Blinn-less classic Phong model described in
// spec §4.4.3: ambient + diffuse (N.L) + specular (R.V)^power, grounded
// on rasperi_primitive_rasterizer_triangle.cpp's inline Phong block.
// Unlike that source (which hardcodes the specular exponent to the
// literal 32), this follows the material's SpecularPower as the actual
// exponent, per spec's explicit formula.
func ShadePhong(mat *PhongMaterial, position, normal Vector, albedo Color, light Light, eye Vector) Color {
	n := normal.Normalize()
	l := light.Direction.Normalize()
	v := eye.Sub(position).Normalize()
	r := l.Negate().Reflect(n)

	diffuseTerm := math.Max(n.Dot(l), 0)
	specularTerm := 0.0
	if diffuseTerm > 0 {
		specularTerm = math.Pow(math.Max(r.Dot(v), 0), mat.SpecularPower)
	}

	ambient := mat.Ambient.Mul(albedo)
	diffuse := mat.Diffuse.Mul(albedo).Mul(light.Color).MulScalar(diffuseTerm)
	specular := mat.Specular.Mul(light.Color).MulScalar(specularTerm)

	return ambient.Add(diffuse).Add(specular).Opaque()
}

const (
	pi = math.Pi
)

// distributionGGX is the Trowbridge-Reitz normal distribution function.
func distributionGGX(n, h Vector, roughness float64) float64 {
	a := roughness * roughness
	a2 := a * a
	nDotH := math.Max(n.Dot(h), 0)
	denom := nDotH*nDotH*(a2-1) + 1
	return a2 / (pi * denom * denom)
}

// geometrySchlickGGX is the Smith-GGX geometry term for a caller-chosen
// k: geometrySmith passes the direct-lighting (roughness+1)^2/8, the
// IBL BRDF integration passes roughness^2/2.
func geometrySchlickGGX(nDotV, k float64) float64 {
	return nDotV / (nDotV*(1-k) + k)
}

func geometrySmith(n, v, l Vector, roughness float64) float64 {
	k := (roughness + 1) * (roughness + 1) / 8
	nDotV := math.Max(n.Dot(v), 0)
	nDotL := math.Max(n.Dot(l), 0)
	return geometrySchlickGGX(nDotV, k) * geometrySchlickGGX(nDotL, k)
}

func fresnelSchlick(cosTheta float64, f0 Vector) Vector {
	t := math.Pow(clamp01(1-cosTheta), 5)
	return f0.Add(Vector{1, 1, 1}.Sub(f0).MulScalar(t))
}

// ShadePBR implements the metallic-roughness Cook-Torrance direct-light
// term plus the IBL ambient contribution (irradiance diffuse +
// prefiltered-specular/BRDF-LUT specular), grounded on spec §4.4.4 and
// the BRDF-integration formulas in rasperi_pbr_ibl_brdf_integration.cpp.
func ShadePBR(mat *PBRMaterial, position, normal Vector, eye Vector, light Light) Color {
	n := normal.Normalize()
	v := eye.Sub(position).Normalize()
	l := light.Direction.Normalize()
	h := v.Add(l).Normalize()

	albedo := Vector{mat.Albedo.R, mat.Albedo.G, mat.Albedo.B}
	f0 := Vector{0.04, 0.04, 0.04}.MulScalar(1 - mat.Metalness).Add(albedo.MulScalar(mat.Metalness))

	ndf := distributionGGX(n, h, mat.Roughness)
	g := geometrySmith(n, v, l, mat.Roughness)
	f := fresnelSchlick(math.Max(h.Dot(v), 0), f0)

	nDotL := math.Max(n.Dot(l), 0)
	nDotV := math.Max(n.Dot(v), 0)
	denom := 4*nDotV*nDotL + 1e-4
	specular := f.MulScalar(ndf * g / denom)

	kS := f
	kD := Vector{1, 1, 1}.Sub(kS).MulScalar(1 - mat.Metalness)
	diffuse := kD.Mul(albedo).MulScalar(1 / pi)

	direct := diffuse.Add(specular).MulScalar(nDotL)

	ambient := iblAmbient(mat, n, v, f0, albedo)

	result := direct.Add(ambient).MulScalar(mat.AO)
	result = result.Div(result.AddScalar(1)) // Reinhard tonemap, c/(c+1) per channel
	return Color{
		LinearToSRGB(result.X),
		LinearToSRGB(result.Y),
		LinearToSRGB(result.Z),
		mat.Albedo.A,
	}
}

// iblAmbient adds the image-based diffuse (irradiance cubemap) and
// specular (prefiltered cubemap + split-sum BRDF LUT) contribution,
// when the material carries IBL references; otherwise contributes a
// small constant ambient term.
func iblAmbient(mat *PBRMaterial, n, v, f0, albedo Vector) Vector {
	if mat.Irradiance == nil || mat.Prefilter == nil || mat.BRDFLUT == nil {
		return albedo.MulScalar(0.03)
	}

	nDotV := math.Max(n.Dot(v), 0)
	f := fresnelSchlickRoughness(nDotV, f0, mat.Roughness)
	kS := f
	kD := Vector{1, 1, 1}.Sub(kS).MulScalar(1 - mat.Metalness)

	irradiance := mat.Irradiance.Sample(n)
	diffuse := kD.Mul(albedo).Mul(Vector{irradiance.R, irradiance.G, irradiance.B})

	r := v.Negate().Reflect(n)
	prefiltered := mat.Prefilter.Sample(r)
	envBRDF := mat.BRDFLUT.Sample(nDotV, mat.Roughness)
	specular := Vector{prefiltered.R, prefiltered.G, prefiltered.B}.Mul(
		f.MulScalar(envBRDF[0]).Add(Vector{1, 1, 1}.MulScalar(envBRDF[1])),
	)

	return diffuse.Add(specular)
}

func fresnelSchlickRoughness(cosTheta float64, f0 Vector, roughness float64) Vector {
	maxv := math.Max(1-roughness, f0.MaxComponent())
	t := math.Pow(clamp01(1-cosTheta), 5)
	return f0.Add(Vector{maxv, maxv, maxv}.Sub(f0).MulScalar(t))
}
