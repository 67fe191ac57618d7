package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/1F47E/go-mandelreel/internal/video"
	p "github.com/1F47E/go-mandelreel/pkg/core/progress"
	"github.com/1F47E/go-mandelreel/pkg/fractal"
	"github.com/1F47E/go-mandelreel/pkg/storage"
)

type ZoomOptions struct {
	View
	Zoom        fractal.Zoom
	Supersample int
	// gif delay per frame, 100ths of a second
	Delay int
	Out   string
	// optional png dump of the display sequence
	FramesDir string
	// optional ffmpeg export, needs FramesDir
	VideoOut string
	FPS      int
	// remove FramesDir once the video is encoded
	CleanFrames bool
}

// 1. render every viewport, one parallel render per frame
// 2. lay frames out forward then backward
// 3. write the gif, then optionally the frames and the video
func RenderZoom(ctx context.Context, opts ZoomOptions) error {
	log := log.WithField("scope", "core zoom")

	// reject bad config before any rendering
	if err := opts.Zoom.Validate(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.VideoOut != "" && opts.FramesDir == "" {
		return fmt.Errorf("video export needs a frames dir")
	}

	frame := func(r fractal.Rect) (*fractal.PixelGrid, error) {
		// stop between frames, a single render always runs to the end
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		render := storage.Supersampled(opts.Supersample, func(w, h int) (*fractal.PixelGrid, error) {
			return fractal.Render(w, h, r, fractal.Direct, opts.Workers)
		})
		return render(opts.Width, opts.Height)
	}

	log.Infof("Rendering %d frames %dx%d from %s, ratio %g", opts.Zoom.Frames, opts.Width, opts.Height, opts.Rect, opts.Zoom.Ratio)
	var onFrame func(int)
	if opts.Zoom.Frames > 0 {
		p.ProgressReset(opts.Zoom.Frames, "Rendering frames... ")
		onFrame = func(int) { p.Add(1) }
		defer p.Finish()
	}
	now := time.Now()
	display, err := opts.Zoom.Sequence(opts.Rect, frame, onFrame)
	if err != nil {
		return err
	}
	log.Debugf("Frames done. Took time: %s", time.Since(now))

	err = storage.SaveGIF(opts.Out, display, opts.Delay)
	if err != nil {
		return err
	}
	log.Infof("Animation saved: %s (%d frames)", opts.Out, len(display))

	if opts.FramesDir == "" {
		return nil
	}
	err = storage.SaveFrames(opts.FramesDir, display)
	if err != nil {
		return err
	}
	log.Infof("Frames saved: %s", opts.FramesDir)

	if opts.VideoOut == "" {
		return nil
	}
	if len(display) == 0 {
		log.Warn("No frames, skipping video")
		return nil
	}
	err = video.EncodeFrames(ctx, storage.FramePattern(opts.FramesDir), opts.VideoOut, opts.FPS)
	if err != nil {
		return fmt.Errorf("Error encoding frames into video: %w", err)
	}
	log.Infof("Video saved: %s", opts.VideoOut)

	if opts.CleanFrames {
		err = os.RemoveAll(opts.FramesDir)
		if err != nil {
			return fmt.Errorf("Error removing frames dir %s: %w", opts.FramesDir, err)
		}
	}
	return nil
}
