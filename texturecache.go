package rasperi

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/bmp"
)

// CacheMagic is the on-disk magic number for the texture cache format,
// grounded on rasperi_double_map.cpp's MAGIC_NUMBER.
const CacheMagic uint32 = 0xDADCAC

// CubeCacheMagic is the on-disk magic number preceding a serialized
// TextureCube, distinct from the per-face CacheMagic so a reader can
// tell a cube stream from a lone Texture2D stream before committing to
// the six-face read loop.
const CubeCacheMagic uint32 = 0xDADCEB

// WriteTexture2D serializes t per §6: MAGIC, width, height, channels,
// byte_count, raw float64 pixel bytes, mipmap_count, then that many
// recursive mipmap entries (each itself a full Texture2D stream minus
// the outer magic).
func WriteTexture2D(w io.Writer, t *Texture2D[float64]) error {
	if err := binary.Write(w, binary.LittleEndian, CacheMagic); err != nil {
		return err
	}
	return writeTextureBody(w, t)
}

func writeTextureBody(w io.Writer, t *Texture2D[float64]) error {
	if err := writeU32s(w, uint32(t.Width), uint32(t.Height), uint32(t.Channels)); err != nil {
		return err
	}
	raw := make([]byte, len(t.Pixels)*8)
	for i, v := range t.Pixels {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(v))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(raw))); err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.Mipmaps))); err != nil {
		return err
	}
	for _, m := range t.Mipmaps {
		if err := writeTextureBody(w, m); err != nil {
			return err
		}
	}
	return nil
}

func writeU32s(w io.Writer, vs ...uint32) error {
	for _, v := range vs {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadTexture2D is the inverse of WriteTexture2D; a bad magic number or
// truncated stream is reported as an error per §7's cache-corruption
// case rather than panicking.
func ReadTexture2D(r io.Reader) (*Texture2D[float64], error) {
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("texturecache: reading magic: %w", err)
	}
	if magic != CacheMagic {
		return nil, fmt.Errorf("texturecache: bad magic 0x%x", magic)
	}
	return readTextureBody(r)
}

func readTextureBody(r io.Reader) (*Texture2D[float64], error) {
	var width, height, channels, byteCount uint32
	if err := readU32s(r, &width, &height, &channels); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &byteCount); err != nil {
		return nil, err
	}
	raw := make([]byte, byteCount)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("texturecache: short pixel read: %w", err)
	}

	t := NewTexture2D[float64](int(width), int(height), int(channels))
	for i := range t.Pixels {
		t.Pixels[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}

	var mipCount uint32
	if err := binary.Read(r, binary.LittleEndian, &mipCount); err != nil {
		return nil, err
	}
	for i := uint32(0); i < mipCount; i++ {
		m, err := readTextureBody(r)
		if err != nil {
			return nil, err
		}
		t.Mipmaps = append(t.Mipmaps, m)
	}
	return t, nil
}

func readU32s(r io.Reader, ps ...*uint32) error {
	for _, p := range ps {
		if err := binary.Read(r, binary.LittleEndian, p); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextureCube serializes a cubemap per §6: a cube magic plus face
// size/channel count, followed by six consecutive WriteTexture2D
// streams in fixed face order, grounded on rasperi_double_map.cpp's
// DoubleRgbCubeMap::write (which itself leads with a whole-cube magic
// and width/height before the per-face data).
func WriteTextureCube(w io.Writer, tc *TextureCube[float64]) error {
	if err := binary.Write(w, binary.LittleEndian, CubeCacheMagic); err != nil {
		return err
	}
	channels := 0
	if !tc.Faces[0].IsNull() {
		channels = tc.Faces[0].Channels
	}
	if err := writeU32s(w, uint32(tc.Size), uint32(channels)); err != nil {
		return err
	}
	for _, f := range tc.Faces {
		if err := WriteTexture2D(w, f); err != nil {
			return err
		}
	}
	return nil
}

func ReadTextureCube(r io.Reader) (*TextureCube[float64], error) {
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("texturecache: reading cube magic: %w", err)
	}
	if magic != CubeCacheMagic {
		return nil, fmt.Errorf("texturecache: bad cube magic 0x%x", magic)
	}
	var size, channels uint32
	if err := readU32s(r, &size, &channels); err != nil {
		return nil, fmt.Errorf("texturecache: reading cube header: %w", err)
	}

	var tc TextureCube[float64]
	tc.Size = int(size)
	for i := range tc.Faces {
		f, err := ReadTexture2D(r)
		if err != nil {
			return nil, fmt.Errorf("texturecache: face %d: %w", i, err)
		}
		if f.Width != int(size) || f.Height != int(size) {
			return nil, fmt.Errorf("texturecache: face %d size %dx%d does not match cube header %dx%d",
				i, f.Width, f.Height, size, size)
		}
		tc.Faces[i] = f
	}
	return &tc, nil
}

// CrossLayoutImage assembles a TextureCube into the classic unfolded
// "cross" layout for visualization/debugging: +Y top-center, -X/+Z/+X/-Z
// across the middle row, -Y bottom-center, grounded on
// rasperi_double_map.cpp's toQImage cross assembly. Each HDR texel is
// Reinhard tone-mapped (c/(c+1)) before 8-bit quantization.
func CrossLayoutImage(tc *TextureCube[float64]) *image.NRGBA {
	w := tc.Size
	out := image.NewNRGBA(image.Rect(0, 0, w*4, w*3))

	place := func(face CubeFace, ox, oy int) {
		f := tc.Face(face)
		for y := 0; y < w; y++ {
			for x := 0; x < w; x++ {
				p := f.Pixel(x, y)
				c := reinhardToColor(p)
				n := c.NRGBA8()
				out.SetNRGBA(ox+x, oy+y, color.NRGBA{R: n[0], G: n[1], B: n[2], A: n[3]})
			}
		}
	}

	place(FacePositiveY, w, 0)
	place(FaceNegativeX, 0, w)
	place(FacePositiveZ, w, w)
	place(FacePositiveX, 2*w, w)
	place(FaceNegativeZ, 3*w, w)
	place(FaceNegativeY, w, 2*w)

	return out
}

func reinhardToColor(p []float64) Color {
	tone := func(v float64) float64 { return v / (v + 1) }
	c := Color{A: 1}
	if len(p) > 0 {
		c.R = tone(p[0])
	}
	if len(p) > 1 {
		c.G = tone(p[1])
	}
	if len(p) > 2 {
		c.B = tone(p[2])
	}
	return c
}

// EncodeBMP writes img as a BMP file, used for the cross-layout/
// regression dumps the original produced via QImage::save, grounded on
// golang.org/x/image/bmp (the pack's own BMP codec, see SPEC_FULL.md).
func EncodeBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}
