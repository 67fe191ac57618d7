// All files related functions
package storage

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/1F47E/go-mandelreel/pkg/fractal"
	"github.com/1F47E/go-mandelreel/pkg/logger"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var log = logger.Log

type encodeFunc func(w io.Writer, img image.Image) error

// encoders by lowercased file extension
var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func encoderFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q, use .png, .bmp or .tiff", ext)
	}
	return enc, nil
}

// SaveImage writes the grid as an 8 bit grayscale image,
// the format is picked from the file extension.
func SaveImage(path string, grid *fractal.PixelGrid) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	return createFile(path, func(w io.Writer) error {
		return enc(w, grid.Gray())
	})
}

// SaveFrames dumps frames as numbered png files into dir.
// Frame files from an earlier run are removed first, ffmpeg would
// otherwise pick up any higher numbered leftovers.
func SaveFrames(dir string, frames []*fractal.PixelGrid) error {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("Cannot create frames dir %s: %w", dir, err)
	}
	err = clearFrames(dir)
	if err != nil {
		return err
	}
	for i, frame := range frames {
		err = SaveImage(FramePath(dir, i), frame)
		if err != nil {
			return err
		}
	}
	log.Debugf("Saved %d frames to %s", len(frames), dir)
	return nil
}

func clearFrames(dir string) error {
	old, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if err != nil {
		return err
	}
	for _, f := range old {
		err = os.Remove(f)
		if err != nil {
			return fmt.Errorf("Cannot remove old frame %s: %w", f, err)
		}
	}
	if len(old) > 0 {
		log.Debugf("Removed %d old frames from %s", len(old), dir)
	}
	return nil
}

func FramePath(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%08d.png", i))
}

// FramePattern is the printf style pattern of frame files, as ffmpeg reads them
func FramePattern(dir string) string {
	return filepath.Join(dir, "frame_%08d.png")
}

func createFile(path string, write func(w io.Writer) error) error {
	// make sure dir exists - create all
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return fmt.Errorf("Cannot create dir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Cannot create file: %w", err)
	}
	err = write(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("Cannot encode to file %s: %w", path, err)
	}
	return f.Close()
}
