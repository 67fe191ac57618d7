package fractal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRatio  = errors.New("zoom ratio must be in (0,1)")
	ErrInvalidFrames = errors.New("frames count must not be negative")
)

// RenderFunc renders one viewport. Render with fixed size and workers fits it.
type RenderFunc func(r Rect) (*PixelGrid, error)

// Zoom describes a concentric zoom animation.
type Zoom struct {
	Frames int
	// Ratio is the share of the viewport width and height removed per frame.
	Ratio float64
	// Hold repeats the deepest frame at the turnaround.
	Hold bool
}

func (z Zoom) Validate() error {
	if z.Frames < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrames, z.Frames)
	}
	// also rejects NaN
	if !(z.Ratio > 0 && z.Ratio < 1) {
		return fmt.Errorf("%w: %g", ErrInvalidRatio, z.Ratio)
	}
	return nil
}

// Viewports returns the rect of every frame, the first being initial.
// Each next rect keeps the center and has (1-ratio) times the width and
// height, so the aspect ratio never drifts.
func (z Zoom) Viewports(initial Rect) []Rect {
	rects := make([]Rect, 0, z.Frames)
	center := initial.Center()
	halfW, halfH := initial.Width()/2, initial.Height()/2
	current := initial
	for i := 0; i < z.Frames; i++ {
		rects = append(rects, current)
		// each corner moves in by width*ratio/2 and height*ratio/2
		halfW -= halfW * z.Ratio
		halfH -= halfH * z.Ratio
		current = RectAround(center, halfW, halfH)
	}
	return rects
}

// Sequence renders every viewport one after another and returns the frames
// in display order. onFrame, if set, is called after each rendered frame.
func (z Zoom) Sequence(initial Rect, render RenderFunc, onFrame func(i int)) ([]*PixelGrid, error) {
	if err := z.Validate(); err != nil {
		return nil, err
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	frames := make([]*PixelGrid, 0, z.Frames)
	for i, rect := range z.Viewports(initial) {
		grid, err := render(rect)
		if err != nil {
			return nil, fmt.Errorf("frame %d %s: %w", i, rect, err)
		}
		frames = append(frames, grid)
		if onFrame != nil {
			onFrame(i)
		}
	}
	return Palindrome(frames, z.Hold), nil
}

// Palindrome plays frames forward then backward.
// With hold the last frame shows twice in a row at the turnaround
// (2N frames); without it the apex is shown once (2N-1 frames).
// Grids are shared, not copied.
func Palindrome(frames []*PixelGrid, hold bool) []*PixelGrid {
	n := len(frames)
	if n == 0 {
		return []*PixelGrid{}
	}

	back := frames
	if !hold {
		back = frames[:n-1]
	}
	display := make([]*PixelGrid, 0, n+len(back))
	display = append(display, frames...)
	for i := len(back) - 1; i >= 0; i-- {
		display = append(display, back[i])
	}
	return display
}

// RenderZoomSequence renders a Direct-colored zoom toward the center of the
// initial corners and returns it in palindromic display order.
// It is the plain argument form of Zoom.Sequence over Render; callers that
// need progress, cancellation or supersampling build their own RenderFunc.
func RenderZoomSequence(width, height int, upperLeft, lowerRight Point, frames int, ratio float64, n int) ([]*PixelGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
	}

	z := Zoom{Frames: frames, Ratio: ratio, Hold: true}
	render := func(r Rect) (*PixelGrid, error) {
		return Render(width, height, r, Direct, n)
	}
	return z.Sequence(Rect{UpperLeft: upperLeft, LowerRight: lowerRight}, render, nil)
}
