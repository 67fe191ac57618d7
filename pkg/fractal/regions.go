package fractal

import (
	"fmt"
	"sort"
	"strings"
)

// Classic regions / landmarks in the Mandelbrot set
var (
	// The whole set, 3.5 x 2.5
	FullSet = Rect{
		UpperLeft:  Point{-2.5, 1.25},
		LowerRight: Point{1.0, -1.25},
	}

	// Seahorse Valley - dense filaments and repeating "seahorse" curls
	SeahorseValley = Rect{
		UpperLeft:  Point{-0.8, 0.15},
		LowerRight: Point{-0.7, 0.05},
	}

	// Elephant Valley - large bulb with trunk-like tendrils
	ElephantValley = Rect{
		UpperLeft:  Point{-1.85, -0.02},
		LowerRight: Point{-1.75, -0.10},
	}

	// Spiral Minibrot - small copy of the set with tight spiral arms
	SpiralMinibrot = Rect{
		UpperLeft:  Point{-0.7435, 0.1325},
		LowerRight: Point{-0.7420, 0.1310},
	}

	// Triple Spiral - threefold symmetric spiral structure
	TripleSpiral = Rect{
		UpperLeft:  Point{-0.7480, 0.0980},
		LowerRight: Point{-0.7450, 0.0950},
	}

	// Valley of the Dragon - deep, highly detailed spiral filaments
	ValleyOfTheDragon = Rect{
		UpperLeft:  Point{-0.7400, 0.1850},
		LowerRight: Point{-0.7350, 0.1800},
	}

	// Minibrot in a Mini-Spiral - self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Rect{
		UpperLeft:  Point{-1.7390, -0.0220},
		LowerRight: Point{-1.7375, -0.0235},
	}
)

// Regions by their command line name
var Regions = map[string]Rect{
	"full":                    FullSet,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func LookupRegion(name string) (Rect, error) {
	r, ok := Regions[strings.ToLower(name)]
	if !ok {
		return Rect{}, fmt.Errorf("unknown region %q, known: %s", name, strings.Join(RegionNames(), ", "))
	}
	return r, nil
}
