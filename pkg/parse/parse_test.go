package parse

import (
	"errors"
	"testing"

	"github.com/1F47E/go-mandelreel/pkg/fractal"
)

func TestIntPair(t *testing.T) {
	testCases := []struct {
		name    string
		s       string
		sep     string
		wantA   int
		wantB   int
		wantErr bool
	}{
		{"empty", "", ",", 0, 0, true},
		{"no right", "10,", ",", 0, 0, true},
		{"no left", ",20", ",", 0, 0, true},
		{"trailing junk", "10,20x", ",", 0, 0, true},
		{"comma", "10,20", ",", 10, 20, false},
		{"size", "10x20", "x", 10, 20, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b, err := IntPair(tc.s, tc.sep)
			if tc.wantErr {
				if !errors.Is(err, ErrBadPair) {
					t.Errorf("got %v, want ErrBadPair", err)
				}
				return
			}
			if err != nil || a != tc.wantA || b != tc.wantB {
				t.Errorf("got (%d, %d, %v), want (%d, %d)", a, b, err, tc.wantA, tc.wantB)
			}
		})
	}
}

func TestPoint(t *testing.T) {
	if _, err := Point("1.0"); err == nil {
		t.Error("expected error for a single number")
	}
	got, err := Point("1.0,2.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (fractal.Point{Re: 1.0, Im: 2.0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	got, err = Point("-1.20,0.35")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (fractal.Point{Re: -1.20, Im: 0.35}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSize(t *testing.T) {
	w, h, err := Size("1000x750")
	if err != nil || w != 1000 || h != 750 {
		t.Errorf("got (%d, %d, %v)", w, h, err)
	}
	for _, s := range []string{"0x750", "1000x-1", "1000,750", "axb"} {
		if _, _, err := Size(s); !errors.Is(err, ErrBadPair) {
			t.Errorf("%q: got %v, want ErrBadPair", s, err)
		}
	}
}
