package storage

import (
	"github.com/1F47E/go-mandelreel/pkg/fractal"
	xdraw "golang.org/x/image/draw"
)

// Downsample scales grid to width x height with a Catmull-Rom filter.
// Rendering k times larger and scaling back smooths the set boundary.
func Downsample(grid *fractal.PixelGrid, width, height int) *fractal.PixelGrid {
	if grid.Width == width && grid.Height == height {
		return grid
	}
	out := fractal.NewPixelGrid(width, height)
	dst := out.Gray()
	src := grid.Gray()
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return out
}

// Supersampled wraps a render so it works at k times the size and scales back.
func Supersampled(k int, render func(w, h int) (*fractal.PixelGrid, error)) func(w, h int) (*fractal.PixelGrid, error) {
	if k <= 1 {
		return render
	}
	return func(w, h int) (*fractal.PixelGrid, error) {
		big, err := render(w*k, h*k)
		if err != nil {
			return nil, err
		}
		return Downsample(big, w, h), nil
	}
}
