package core

import (
	"context"
	"errors"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	p "github.com/1F47E/go-mandelreel/pkg/core/progress"
	"github.com/1F47E/go-mandelreel/pkg/fractal"
)

var testView = View{
	Width:   16,
	Height:  12,
	Rect:    fractal.Rect{UpperLeft: fractal.Point{Re: -2, Im: 1.5}, LowerRight: fractal.Point{Re: 1, Im: -1.5}},
	Workers: 4,
}

func TestRenderStill(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mandel.png")
	err := RenderStill(StillOptions{View: testView, Policy: fractal.Inverted, Supersample: 1, Out: out})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want, err := fractal.Render(testView.Width, testView.Height, testView.Rect, fractal.Inverted, testView.Workers)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !want.Equal(&fractal.PixelGrid{Width: 16, Height: 12, Pix: grayPix(t, img)}) {
		t.Error("saved image differs from the render")
	}
}

func TestRenderStillSupersampled(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mandel.bmp")
	err := RenderStill(StillOptions{View: testView, Policy: fractal.Direct, Supersample: 2, Out: out})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("no output: %v", err)
	}
}

func TestRenderStillInvalid(t *testing.T) {
	v := testView
	v.Width = 0
	out := filepath.Join(t.TempDir(), "mandel.png")
	err := RenderStill(StillOptions{View: v, Out: out})
	if !errors.Is(err, fractal.ErrInvalidSize) {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written for invalid view")
	}
}

func TestRenderZoom(t *testing.T) {
	dir := t.TempDir()
	opts := ZoomOptions{
		View:        testView,
		Zoom:        fractal.Zoom{Frames: 3, Ratio: 0.2, Hold: true},
		Supersample: 1,
		Delay:       5,
		Out:         filepath.Join(dir, "zoom.gif"),
		FramesDir:   filepath.Join(dir, "frames"),
	}
	if err := RenderZoom(context.Background(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(opts.Out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 6 {
		t.Errorf("got %d gif frames, want 6", len(anim.Image))
	}

	entries, err := os.ReadDir(opts.FramesDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 6 {
		t.Errorf("got %d frame files, want 6", len(entries))
	}
}

func TestRenderZoomNoFrames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "zoom.gif")
	opts := ZoomOptions{
		View: testView,
		Zoom: fractal.Zoom{Frames: 0, Ratio: 0.2, Hold: true},
		Out:  out,
	}
	if err := RenderZoom(context.Background(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("no output: %v", err)
	}
}

func TestRenderZoomInvalid(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		opts ZoomOptions
		want error
	}{
		{
			name: "ratio",
			opts: ZoomOptions{View: testView, Zoom: fractal.Zoom{Frames: 3, Ratio: 1}, Out: filepath.Join(dir, "a.gif")},
			want: fractal.ErrInvalidRatio,
		},
		{
			name: "workers",
			opts: ZoomOptions{View: View{Width: 4, Height: 4, Rect: testView.Rect}, Zoom: fractal.Zoom{Frames: 3, Ratio: 0.5}, Out: filepath.Join(dir, "b.gif")},
			want: fractal.ErrInvalidWorkers,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := RenderZoom(context.Background(), tc.opts)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if _, err := os.Stat(tc.opts.Out); !os.IsNotExist(err) {
				t.Error("output written for invalid options")
			}
		})
	}
}

func TestRenderZoomVideoNeedsFrames(t *testing.T) {
	opts := ZoomOptions{
		View:     testView,
		Zoom:     fractal.Zoom{Frames: 1, Ratio: 0.5},
		Out:      filepath.Join(t.TempDir(), "zoom.gif"),
		VideoOut: "zoom.mp4",
	}
	if err := RenderZoom(context.Background(), opts); err == nil {
		t.Error("expected error without frames dir")
	}
}

func TestRenderZoomCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := ZoomOptions{
		View: testView,
		Zoom: fractal.Zoom{Frames: 2, Ratio: 0.5},
		Out:  filepath.Join(t.TempDir(), "zoom.gif"),
	}
	if err := RenderZoom(ctx, opts); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	// the bar is closed even when rendering stops early
	if !p.Progress.IsFinished() {
		t.Error("progress bar left open after a failed render")
	}
}
