package storage

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/1F47E/go-mandelreel/pkg/fractal"
)

// GrayPalette is the 256 entry linear ramp, index i is gray level i.
// Frame bytes are used as indexes as is, so both color policies keep
// their look: Direct goes black (fast escape) to white (the set),
// Inverted the other way around.
func GrayPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}

// SaveGIF writes frames as a looping animation, delay is in 100ths of a second.
// Zero frames still make a valid, empty gif.
func SaveGIF(path string, frames []*fractal.PixelGrid, delay int) error {
	return createFile(path, func(w io.Writer) error {
		return EncodeGIF(w, frames, delay)
	})
}

func EncodeGIF(w io.Writer, frames []*fractal.PixelGrid, delay int) error {
	if len(frames) == 0 {
		log.Warn("No frames to encode, writing empty gif")
		return writeEmptyGIF(w)
	}

	palette := GrayPalette()
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0, // forever
	}
	for i, frame := range frames {
		if len(frame.Pix) != frame.Width*frame.Height {
			return fmt.Errorf("frame %d: %d bytes for %dx%d", i, len(frame.Pix), frame.Width, frame.Height)
		}
		// frames may repeat in a palindrome, they share the same pixels
		anim.Image[i] = &image.Paletted{
			Pix:     frame.Pix,
			Stride:  frame.Width,
			Rect:    image.Rect(0, 0, frame.Width, frame.Height),
			Palette: palette,
		}
		anim.Delay[i] = delay
	}
	return gif.EncodeAll(w, anim)
}

// image/gif refuses to encode no images, write header and trailer by hand
func writeEmptyGIF(w io.Writer) error {
	buf := make([]byte, 0, 14)
	buf = append(buf, "GIF89a"...)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // width
	buf = binary.LittleEndian.AppendUint16(buf, 0) // height
	buf = append(buf,
		0x00, // no global color table
		0x00, // background color index
		0x00, // pixel aspect ratio
		0x3b, // trailer
	)
	_, err := w.Write(buf)
	return err
}
