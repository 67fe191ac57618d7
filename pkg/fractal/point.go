package fractal

import (
	"errors"
	"fmt"
)

var ErrInvalidRect = errors.New("invalid rect")

// Point on the complex plane
type Point struct {
	Re, Im float64
}

func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.Re, p.Im)
}

func (p Point) complex() complex128 {
	return complex(p.Re, p.Im)
}

// Rect is a region of the plane in screen convention:
// UpperLeft has the smaller real and the larger imaginary part.
type Rect struct {
	UpperLeft  Point
	LowerRight Point
}

func (r Rect) Validate() error {
	if r.UpperLeft.Re > r.LowerRight.Re || r.UpperLeft.Im < r.LowerRight.Im {
		return fmt.Errorf("%w: upper left %s is not above and left of lower right %s",
			ErrInvalidRect, r.UpperLeft, r.LowerRight)
	}
	return nil
}

func (r Rect) Width() float64 {
	return r.LowerRight.Re - r.UpperLeft.Re
}

func (r Rect) Height() float64 {
	return r.UpperLeft.Im - r.LowerRight.Im
}

func (r Rect) Center() Point {
	return Point{
		Re: (r.UpperLeft.Re + r.LowerRight.Re) / 2,
		Im: (r.UpperLeft.Im + r.LowerRight.Im) / 2,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s %s]", r.UpperLeft, r.LowerRight)
}

// RectAround builds the rect with the given half extents around center.
func RectAround(center Point, halfW, halfH float64) Rect {
	return Rect{
		UpperLeft:  Point{center.Re - halfW, center.Im + halfH},
		LowerRight: Point{center.Re + halfW, center.Im - halfH},
	}
}

// RectFromCenter reflects the reference upper left corner through center
// to get the lower right one.
func RectFromCenter(center, upperLeft Point) (Rect, error) {
	r := Rect{
		UpperLeft:  upperLeft,
		LowerRight: Point{2*center.Re - upperLeft.Re, 2*center.Im - upperLeft.Im},
	}
	if err := r.Validate(); err != nil {
		return Rect{}, fmt.Errorf("center %s: %w", center, err)
	}
	return r, nil
}

// PixelToPoint maps the pixel (column, row) of a width x height grid onto r.
//
// The interpolation weights both corners so that (0,0) lands exactly on
// r.UpperLeft and (width,height) exactly on r.LowerRight. Pixels outside
// the grid extrapolate along the same lines.
func PixelToPoint(width, height, column, row int, r Rect) Point {
	tx := float64(column) / float64(width)
	ty := float64(row) / float64(height)
	return Point{
		Re: r.UpperLeft.Re*(1-tx) + r.LowerRight.Re*tx,
		Im: r.UpperLeft.Im*(1-ty) + r.LowerRight.Im*ty,
	}
}
