package core

import (
	"time"

	"github.com/1F47E/go-mandelreel/pkg/fractal"
	"github.com/1F47E/go-mandelreel/pkg/storage"
)

type StillOptions struct {
	View
	Policy fractal.ColorPolicy
	// Supersample renders k times larger and scales back, 1 is off
	Supersample int
	Out         string
}

// RenderStill renders a single image and saves it to opts.Out
func RenderStill(opts StillOptions) error {
	log := log.WithField("scope", "core still")
	if err := opts.Validate(); err != nil {
		return err
	}

	render := storage.Supersampled(opts.Supersample, func(w, h int) (*fractal.PixelGrid, error) {
		return fractal.RenderImage(w, h, opts.Rect.UpperLeft, opts.Rect.LowerRight, opts.Policy, opts.Workers)
	})

	log.Infof("Rendering %dx%d %s with %d workers", opts.Width, opts.Height, opts.Rect, opts.Workers)
	now := time.Now()
	grid, err := render(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	log.Debugf("Render done. Took time: %s", time.Since(now))

	err = storage.SaveImage(opts.Out, grid)
	if err != nil {
		return err
	}
	log.Infof("Image saved: %s", opts.Out)
	return nil
}
