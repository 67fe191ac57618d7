package config

// NOTE: pixels are written from left to right, top to bottom, one gray byte each
const (
	// render
	Workers       = 4
	MaxIterations = 255
	EscapeNormSq  = 4.0 // |z| > 2 diverges

	// canonical upper left corner, used when only a center is given.
	// the bounding rect is this point reflected through the center
	CanonicalUpperLeftRe = -2.5
	CanonicalUpperLeftIm = 1.5

	// zoom animation
	ZoomFrames = 60
	ZoomRatio  = 0.05
	FrameDelay = 4  // in 100ths of a second, gif units
	VideoFPS   = 25 // ffmpeg framerate

	// static image
	Supersample = 1

	// Path
	PathFramesDir = "tmp/frames"

	// Env
	EnvWorkers = "MANDEL_WORKERS"
	EnvDebug   = "DEBUG"
)
