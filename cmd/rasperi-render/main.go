// Command rasperi-render loads a glTF scene and a Radiance .hdr environment,
// precomputes (or loads from cache) the IBL irradiance/prefilter/BRDF-LUT
// textures, rasterizes the scene and writes the result to a PNG file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/kuumies/rasperi"
)

var (
	app = kingpin.New("rasperi-render", "CPU software rasterizer with PBR image-based lighting.")

	scenePath  = app.Flag("scene", "Input glTF 2.0 scene file.").Required().String()
	envPath    = app.Flag("env", "Environment image: a Radiance .hdr equirectangular file.").Required().String()
	outPath    = app.Flag("out", "Output PNG path.").Default("out.png").String()
	width      = app.Flag("width", "Output image width.").Default("1280").Int()
	height     = app.Flag("height", "Output image height.").Default("720").Int()
	fov        = app.Flag("fov", "Vertical field of view in degrees.").Default("45").Float64()
	shading    = app.Flag("shading", "Shading mode: phong or pbr.").Default("pbr").Enum("phong", "pbr")
	normals    = app.Flag("normals", "Normal mode: authored or smooth.").Default("authored").Enum("authored", "smooth")
	iblSize    = app.Flag("ibl-size", "Cubemap face resolution for IBL precomputation.").Default("128").Int()
	cacheDir   = app.Flag("cache-dir", "Directory to read/write precomputed IBL cache files.").String()
	rowWorkers = app.Flag("row-workers", "Row-band worker count (0 = GOMAXPROCS).").Default("0").Int()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rasperi-render:", err)
		os.Exit(1)
	}
}

func run() error {
	scene, err := rasperi.LoadGLTFScene(*scenePath)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	background, irradiance, prefilter, brdfLUT, err := loadOrComputeIBL(*envPath, *cacheDir, *iblSize)
	if err != nil {
		return fmt.Errorf("preparing IBL: %w", err)
	}

	const near = 0.1
	eye, target, far := scene.Bounds().FitCamera(near)

	camera := rasperi.NewPerspectiveCamera(eye, target, rasperi.Vector{Y: 1},
		*fov, float64(*width)/float64(*height), near, far)

	cfg := rasperi.DefaultRenderConfig(*width, *height)
	cfg.RowWorkers = *rowWorkers
	if *normals == "smooth" {
		cfg.NormalMode = rasperi.NormalModeSmooth
	}

	r := rasperi.NewRasterizer(cfg, camera)

	irradianceSampler := rasperi.NewSamplerCube(irradiance)
	prefilterSampler := rasperi.NewSamplerCube(prefilter)
	brdfSampler := rasperi.NewSampler2D(brdfLUT)

	for i, m := range scene.Models {
		if *shading == "pbr" && m.Material.Kind == rasperi.MaterialPBR {
			scene.Models[i].Material.PBR.Irradiance = irradianceSampler
			scene.Models[i].Material.PBR.Prefilter = prefilterSampler
			scene.Models[i].Material.PBR.BRDFLUT = brdfSampler
		}
	}

	_ = background
	scene.Render(r)

	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	return writePNG(f, r.Framebuffer)
}

func loadOrComputeIBL(envPath, cacheDir string, size int) (background, irradiance, prefilter *rasperi.TextureCube[float64], brdfLUT *rasperi.Texture2D[float64], err error) {
	background, err = loadEnvironmentCubemap(envPath, size)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	backgroundSampler := rasperi.NewSamplerCube(background)

	if cacheDir != "" {
		if irr, pre, lut, ok := tryLoadCache(cacheDir); ok {
			return background, irr, pre, lut, nil
		}
	}

	irradiance = rasperi.ComputeIrradiance(backgroundSampler, size, nil)
	prefilter = rasperi.ComputePrefilter(backgroundSampler, size, 5, nil)
	brdfLUT = rasperi.ComputeBRDFLUT(size)

	if cacheDir != "" {
		if err := saveCache(cacheDir, irradiance, prefilter, brdfLUT); err != nil {
			rasperi.Diag.Warnf("cmd/rasperi-render: failed to write IBL cache: %v", err)
		}
	}
	return background, irradiance, prefilter, brdfLUT, nil
}

func loadEnvironmentCubemap(envPath string, size int) (*rasperi.TextureCube[float64], error) {
	f, err := os.Open(envPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	equirect, err := rasperi.ReadHDR(f)
	if err != nil {
		return nil, err
	}
	return rasperi.EquirectToCubemap(equirect, size, nil), nil
}

func tryLoadCache(dir string) (irr, pre *rasperi.TextureCube[float64], lut *rasperi.Texture2D[float64], ok bool) {
	irrF, err1 := os.Open(filepath.Join(dir, "irradiance.rcache"))
	preF, err2 := os.Open(filepath.Join(dir, "prefilter.rcache"))
	lutF, err3 := os.Open(filepath.Join(dir, "brdf.rcache"))
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, nil, nil, false
	}
	defer irrF.Close()
	defer preF.Close()
	defer lutF.Close()

	irr, e1 := rasperi.ReadTextureCube(irrF)
	pre, e2 := rasperi.ReadTextureCube(preF)
	lut, e3 := rasperi.ReadTexture2D(lutF)
	if e1 != nil || e2 != nil || e3 != nil {
		rasperi.Diag.Warnf("cmd/rasperi-render: IBL cache corrupt, recomputing")
		return nil, nil, nil, false
	}
	return irr, pre, lut, true
}

func saveCache(dir string, irr, pre *rasperi.TextureCube[float64], lut *rasperi.Texture2D[float64]) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	write := func(name string, fn func(f *os.File) error) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		defer f.Close()
		return fn(f)
	}
	if err := write("irradiance.rcache", func(f *os.File) error { return rasperi.WriteTextureCube(f, irr) }); err != nil {
		return err
	}
	if err := write("prefilter.rcache", func(f *os.File) error { return rasperi.WriteTextureCube(f, pre) }); err != nil {
		return err
	}
	return write("brdf.rcache", func(f *os.File) error { return rasperi.WriteTexture2D(f, lut) })
}
