package fractal

import (
	"fmt"
	"strings"

	"github.com/1F47E/go-mandelreel/pkg/config"
)

// ColorPolicy decides how an escape count becomes a gray byte.
type ColorPolicy int

const (
	// Inverted: fast escape is bright, the set is black. Used for stills.
	Inverted ColorPolicy = iota
	// Direct: fast escape is dark, the set is white. Used for animation frames.
	Direct
)

func (p ColorPolicy) String() string {
	switch p {
	case Inverted:
		return "inverted"
	case Direct:
		return "direct"
	}
	return fmt.Sprintf("ColorPolicy(%d)", int(p))
}

func ParseColorPolicy(s string) (ColorPolicy, error) {
	switch strings.ToLower(s) {
	case "inverted":
		return Inverted, nil
	case "direct":
		return Direct, nil
	}
	return 0, fmt.Errorf("unknown color policy %q, want inverted or direct", s)
}

func (p ColorPolicy) intensity(count int, escaped bool) byte {
	if p == Direct {
		if !escaped {
			return 255
		}
		return byte(count)
	}
	if !escaped {
		return 0
	}
	return byte(255 - count)
}

// RenderBand fills pix, a width x height strip mapped onto r.
// The mapping uses the band's own size and rect, not the full image ones.
func RenderBand(pix []byte, width, height int, r Rect, policy ColorPolicy) {
	if len(pix) != width*height {
		panic(fmt.Sprintf("band buffer is %d bytes, want %dx%d=%d", len(pix), width, height, width*height))
	}

	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			point := PixelToPoint(width, height, column, row, r)
			count, escaped := EscapeTime(point, config.MaxIterations)
			pix[column+row*width] = policy.intensity(count, escaped)
		}
	}
}
