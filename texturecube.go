package rasperi

// TextureCube is a generic cubemap: six Texture2D faces in the fixed
// order FacePositiveX..FaceNegativeZ, grounded on rasperi_texture_cube.h
// and the serialization layout of rasperi_double_map.cpp's
// DoubleRgbCubeMap (six same-size streams).
type TextureCube[T Channel] struct {
	Size  int
	Faces [6]*Texture2D[T]
}

func NewTextureCube[T Channel](size, channels int) *TextureCube[T] {
	tc := &TextureCube[T]{Size: size}
	for i := range tc.Faces {
		tc.Faces[i] = NewTexture2D[T](size, size, channels)
	}
	return tc
}

func (tc *TextureCube[T]) Face(f CubeFace) *Texture2D[T] {
	return tc.Faces[f]
}

func (tc *TextureCube[T]) IsNull() bool {
	return tc == nil || tc.Size == 0
}

// GenerateMipmaps builds a mipmap chain for every face independently.
func (tc *TextureCube[T]) GenerateMipmaps() {
	for _, f := range tc.Faces {
		GenerateMipmaps(f)
	}
}

// SampleDirection reads one texel for world direction dir by resolving
// it to a (face, u, v) address and truncating u*(size-1) and
// (1-v)*(size-1) to integer texel coordinates, the same mapping the
// cube passes write through.
func (tc *TextureCube[T]) SampleDirection(dir Vector) []T {
	fc := DirectionToFace(dir.Normalize())
	face := tc.Face(fc.Face)
	x := int(fc.U * float64(face.Width-1))
	y := int((1 - fc.V) * float64(face.Height-1))
	return face.Pixel(x, y)
}
