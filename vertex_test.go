package rasperi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexInterpolateWeightedSum(t *testing.T) {
	a := Vertex{Position: Vector{0, 0, 0}, Color: Color{R: 1}, Texcoord: Vector{0, 0, 0}}
	b := Vertex{Position: Vector{3, 0, 0}, Color: Color{G: 1}, Texcoord: Vector{1, 0, 0}}
	c := Vertex{Position: Vector{0, 3, 0}, Color: Color{B: 1}, Texcoord: Vector{0, 1, 0}}

	got := a.interpolate(b, c, 1.0/3, 1.0/3, 1.0/3)
	require.InDelta(t, 1, got.Position.X, 1e-9)
	require.InDelta(t, 1, got.Position.Y, 1e-9)
	require.InDelta(t, 1.0/3, got.Color.R, 1e-9)
	require.InDelta(t, 1.0/3, got.Color.G, 1e-9)
	require.InDelta(t, 1.0/3, got.Color.B, 1e-9)
}

func TestVertexInterpolateAtCornerReturnsThatCorner(t *testing.T) {
	a := Vertex{Position: Vector{1, 2, 3}, Normal: Vector{0, 0, 1}}
	b := Vertex{Position: Vector{4, 5, 6}}
	c := Vertex{Position: Vector{7, 8, 9}}

	got := a.interpolate(b, c, 1, 0, 0)
	require.Equal(t, a.Position, got.Position)
	require.Equal(t, a.Normal, got.Normal)
}

func TestVertexTransformAppliesToPositionAndNormal(t *testing.T) {
	v := Vertex{Position: Vector{1, 0, 0}, Normal: Vector{1, 0, 0}}
	m := Translate(Vector{5, 0, 0}).Mul(Rotate(Vector{0, 0, 1}, 1.5707963267948966))

	got := v.Transform(m)
	require.InDelta(t, 5, got.Position.X, 1e-9)
	require.InDelta(t, 1, got.Position.Y, 1e-9)
	// Normal rotates but is unaffected by translation.
	require.InDelta(t, 0, got.Normal.X, 1e-9)
	require.InDelta(t, 1, got.Normal.Y, 1e-9)
}

func TestVertexOutsideIsAlwaysFalse(t *testing.T) {
	require.False(t, Vertex{}.Outside())
}
