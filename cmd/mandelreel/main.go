package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/1F47E/go-mandelreel/pkg/config"
	"github.com/1F47E/go-mandelreel/pkg/core"
	"github.com/1F47E/go-mandelreel/pkg/fractal"
	"github.com/1F47E/go-mandelreel/pkg/logger"
	"github.com/1F47E/go-mandelreel/pkg/parse"
	"github.com/urfave/cli"
)

var app = cli.NewApp()
var log = logger.Log

var viewFlags = []cli.Flag{
	cli.StringFlag{Name: "size, s", Value: "1000x750", Usage: "image size in pixels, WIDTHxHEIGHT"},
	cli.StringFlag{Name: "upper-left, ul", Usage: "upper left corner on the complex plane, re,im"},
	cli.StringFlag{Name: "lower-right, lr", Usage: "lower right corner on the complex plane, re,im"},
	cli.StringFlag{Name: "region", Usage: "named region instead of corners, list them with the regions command"},
	cli.IntFlag{Name: "workers, w", Value: config.Workers, Usage: "parallel bands per render", EnvVar: config.EnvWorkers},
	cli.IntFlag{Name: "supersample", Value: config.Supersample, Usage: "render k times larger and scale down"},
}

func init() {
	app.Name = "mandelreel"
	app.Usage = "Mandelbrot set stills and zoom animations"
	app.UsageText = "mandelreel [command] [options] filename"
	app.HideVersion = true
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Aliases:   []string{"r"},
			Usage:     "Render a still image (.png, .bmp, .tiff)",
			ArgsUsage: "FILE",
			Flags: append(viewFlags,
				cli.StringFlag{Name: "policy", Value: fractal.Inverted.String(), Usage: "inverted or direct"},
			),
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				view, err := getView(c, false)
				if err != nil {
					return err
				}
				policy, err := fractal.ParseColorPolicy(c.String("policy"))
				if err != nil {
					return err
				}
				return core.RenderStill(core.StillOptions{
					View:        view,
					Policy:      policy,
					Supersample: c.Int("supersample"),
					Out:         filename,
				})
			},
		},
		{
			Name:      "zoom",
			Aliases:   []string{"z"},
			Usage:     "Render a looping zoom animation (.gif)",
			ArgsUsage: "FILE",
			Flags: append(viewFlags,
				cli.StringFlag{Name: "center, c", Usage: "zoom center re,im, the view is derived from a fixed upper left corner"},
				cli.IntFlag{Name: "frames, n", Value: config.ZoomFrames, Usage: "frames zooming in"},
				cli.Float64Flag{Name: "ratio, r", Value: config.ZoomRatio, Usage: "share of the view removed per frame, in (0,1)"},
				cli.IntFlag{Name: "delay", Value: config.FrameDelay, Usage: "frame delay in 100ths of a second"},
				cli.BoolFlag{Name: "no-hold", Usage: "show the deepest frame once at the turnaround"},
				cli.StringFlag{Name: "frames-dir", Usage: "also dump frames as png into this dir"},
				cli.StringFlag{Name: "video", Usage: "also encode frames into a video with ffmpeg"},
				cli.IntFlag{Name: "fps", Value: config.VideoFPS, Usage: "video framerate"},
			),
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				view, err := getView(c, true)
				if err != nil {
					return err
				}
				framesDir := c.String("frames-dir")
				cleanFrames := false
				if c.String("video") != "" && framesDir == "" {
					framesDir = config.PathFramesDir
					cleanFrames = true
				}

				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				return core.RenderZoom(ctx, core.ZoomOptions{
					View: view,
					Zoom: fractal.Zoom{
						Frames: c.Int("frames"),
						Ratio:  c.Float64("ratio"),
						Hold:   !c.Bool("no-hold"),
					},
					Supersample: c.Int("supersample"),
					Delay:       c.Int("delay"),
					Out:         filename,
					FramesDir:   framesDir,
					VideoOut:    c.String("video"),
					FPS:         c.Int("fps"),
					CleanFrames: cleanFrames,
				})
			},
		},
		{
			Name:  "regions",
			Usage: "List named regions",
			Action: func(c *cli.Context) error {
				for _, name := range fractal.RegionNames() {
					fmt.Printf("%-24s %s\n", name, fractal.Regions[name])
				}
				return nil
			},
		},
	}
}

func getFilename(c *cli.Context) (string, error) {
	f := c.Args().Get(0)
	if f == "" {
		return "", fmt.Errorf("Filename is required")
	}
	return f, nil
}

// getView resolves the size and the plane rect, from a region, a center
// (zoom only) or both corners, in that order.
func getView(c *cli.Context, allowCenter bool) (core.View, error) {
	var view core.View
	var err error
	view.Width, view.Height, err = parse.Size(c.String("size"))
	if err != nil {
		return view, fmt.Errorf("error while parsing pixel size: %w", err)
	}
	view.Workers = c.Int("workers")

	switch {
	case c.String("region") != "":
		view.Rect, err = fractal.LookupRegion(c.String("region"))
		if err != nil {
			return view, err
		}
	case allowCenter && c.String("center") != "":
		center, err := parse.Point(c.String("center"))
		if err != nil {
			return view, fmt.Errorf("error while parsing center point: %w", err)
		}
		ul := fractal.Point{Re: config.CanonicalUpperLeftRe, Im: config.CanonicalUpperLeftIm}
		view.Rect, err = fractal.RectFromCenter(center, ul)
		if err != nil {
			return view, err
		}
	default:
		if c.String("upper-left") == "" || c.String("lower-right") == "" {
			return view, fmt.Errorf("Corners are required: --upper-left and --lower-right, or --region")
		}
		view.Rect.UpperLeft, err = parse.Point(c.String("upper-left"))
		if err != nil {
			return view, fmt.Errorf("error while parsing upper left point: %w", err)
		}
		view.Rect.LowerRight, err = parse.Point(c.String("lower-right"))
		if err != nil {
			return view, fmt.Errorf("error while parsing lower right point: %w", err)
		}
	}
	return view, nil
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
