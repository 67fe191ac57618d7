// Parsing of the textual pairs taken from the command line
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/1F47E/go-mandelreel/pkg/fractal"
)

var ErrBadPair = errors.New("bad pair")

// Pair splits s at the first sep, like "400x600" or "1.0,0.5".
func Pair(s string, sep string) (string, string, error) {
	left, right, found := strings.Cut(s, sep)
	if !found {
		return "", "", fmt.Errorf("%w: %q has no %q separator", ErrBadPair, s, sep)
	}
	return left, right, nil
}

func IntPair(s string, sep string) (int, int, error) {
	l, r, err := Pair(s, sep)
	if err != nil {
		return 0, 0, err
	}
	a, err := strconv.Atoi(l)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadPair, s, err)
	}
	b, err := strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadPair, s, err)
	}
	return a, b, nil
}

func FloatPair(s string, sep string) (float64, float64, error) {
	l, r, err := Pair(s, sep)
	if err != nil {
		return 0, 0, err
	}
	a, err := strconv.ParseFloat(l, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadPair, s, err)
	}
	b, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadPair, s, err)
	}
	return a, b, nil
}

// Size parses "WIDTHxHEIGHT", both positive.
func Size(s string) (int, int, error) {
	w, h, err := IntPair(s, "x")
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: size %q must be positive", ErrBadPair, s)
	}
	return w, h, nil
}

// Point parses "re,im".
func Point(s string) (fractal.Point, error) {
	re, im, err := FloatPair(s, ",")
	if err != nil {
		return fractal.Point{}, err
	}
	return fractal.Point{Re: re, Im: im}, nil
}
