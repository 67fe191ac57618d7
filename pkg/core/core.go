package core

import (
	"fmt"

	"github.com/1F47E/go-mandelreel/pkg/fractal"
	"github.com/1F47E/go-mandelreel/pkg/logger"
)

var log = logger.Log

// View is where and how big to render
type View struct {
	Width   int
	Height  int
	Rect    fractal.Rect
	Workers int
}

func (v View) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", fractal.ErrInvalidSize, v.Width, v.Height)
	}
	if v.Workers <= 0 {
		return fmt.Errorf("%w: %d", fractal.ErrInvalidWorkers, v.Workers)
	}
	return v.Rect.Validate()
}
