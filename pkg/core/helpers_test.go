package core

import (
	"image"
	"image/color"
	"testing"
)

func grayPix(t *testing.T, img image.Image) []byte {
	t.Helper()
	b := img.Bounds()
	pix := make([]byte, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pix = append(pix, color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}
	return pix
}
