package main

import (
	"image/png"
	"io"

	"github.com/kuumies/rasperi"
)

func writePNG(w io.Writer, fb *rasperi.Framebuffer) error {
	return png.Encode(w, fb.ToImage())
}
