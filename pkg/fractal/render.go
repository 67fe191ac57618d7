package fractal

import (
	"errors"
	"fmt"

	"github.com/1F47E/go-mandelreel/pkg/logger"
	"github.com/1F47E/go-mandelreel/pkg/workers"
)

var (
	ErrInvalidSize    = errors.New("invalid image size")
	ErrInvalidWorkers = errors.New("invalid workers count")
)

// Band is a contiguous run of image rows given to one worker.
type Band struct {
	Top  int
	Rows int
}

// Bands splits height rows into at most n bands of ceil(height/n) rows,
// the last one taking what is left. Together they cover [0,height) once.
func Bands(height, n int) []Band {
	if height <= 0 || n <= 0 {
		panic(fmt.Sprintf("bands: height %d and count %d must be positive", height, n))
	}

	rowsPerBand := (height + n - 1) / n
	bands := make([]Band, 0, n)
	for top := 0; top < height; top += rowsPerBand {
		rows := rowsPerBand
		if top+rows > height {
			rows = height - top
		}
		bands = append(bands, Band{Top: top, Rows: rows})
	}
	return bands
}

// Render computes the width x height image of r, split across n workers.
// It only returns once every band is filled; if any band fails the whole
// grid is dropped.
func Render(width, height int, r Rect, policy ColorPolicy, n int) (*PixelGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	log := logger.Log.WithField("scope", "render")
	grid := NewPixelGrid(width, height)
	bands := Bands(height, n)
	jobs := make([]func(), len(bands))
	for i, b := range bands {
		pix := grid.Pix[b.Top*width : (b.Top+b.Rows)*width]
		rect := Rect{
			UpperLeft:  PixelToPoint(width, height, 0, b.Top, r),
			LowerRight: PixelToPoint(width, height, width, b.Top+b.Rows, r),
		}
		rows := b.Rows
		log.Debugf("band %d: rows %d-%d %s", i, b.Top, b.Top+b.Rows, rect)
		jobs[i] = func() {
			RenderBand(pix, width, rows, rect, policy)
		}
	}

	if err := workers.Run("render", jobs); err != nil {
		return nil, err
	}
	return grid, nil
}

// RenderImage renders a still between two corners, the plain argument form of Render.
func RenderImage(width, height int, upperLeft, lowerRight Point, policy ColorPolicy, n int) (*PixelGrid, error) {
	return Render(width, height, Rect{UpperLeft: upperLeft, LowerRight: lowerRight}, policy, n)
}
