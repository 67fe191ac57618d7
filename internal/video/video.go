package video

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/1F47E/go-mandelreel/pkg/logger"
)

// Args builds the ffmpeg command line turning numbered png frames into a video
func Args(framesPattern, out string, fps int) []string {
	return []string{
		"-y",
		"-framerate", strconv.Itoa(fps),
		"-i", framesPattern,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		// x264 wants even dimensions
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		out,
	}
}

// call ffmpeg to encode frames into video
func EncodeFrames(ctx context.Context, framesPattern, out string, fps int) error {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	args := Args(framesPattern, out, fps)
	logger.Log.Debugf("Running ffmpeg command: %s %v\n", bin, args)
	cmd := exec.CommandContext(ctx, bin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, output)
	}
	return nil
}
