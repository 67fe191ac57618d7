package fractal

import "github.com/1F47E/go-mandelreel/pkg/config"

// EscapeTime iterates z = z*z + c from zero, at most limit times.
//
// If |z| leaves the radius 2 disc, it returns the 0-based step at which that
// happened and true. Points still bounded after limit steps are treated as
// members of the set and return false.
func EscapeTime(c Point, limit int) (int, bool) {
	z := complex(0, 0)
	cc := c.complex()
	for i := 0; i < limit; i++ {
		z = z*z + cc
		if real(z)*real(z)+imag(z)*imag(z) > config.EscapeNormSq {
			return i, true
		}
	}
	return 0, false
}
