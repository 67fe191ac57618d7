package fractal

import (
	"bytes"
	"image"
)

// PixelGrid holds one gray byte per pixel, rows top to bottom.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []byte
}

func NewPixelGrid(width, height int) *PixelGrid {
	return &PixelGrid{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// Gray wraps the buffer as an image without copying it.
func (g *PixelGrid) Gray() *image.Gray {
	return &image.Gray{
		Pix:    g.Pix,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

func (g *PixelGrid) Equal(o *PixelGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.Width == o.Width && g.Height == o.Height && bytes.Equal(g.Pix, o.Pix)
}
