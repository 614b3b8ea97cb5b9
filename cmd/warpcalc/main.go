// Command warpcalc computes the perspective overlay transform for an image.
//
// The image is fitted into a container, and the given corners (in the
// fitted layer's own pixel space, order TL TR BR BL) are turned into a CSS
// matrix3d() transform:
//
//	warpcalc -image wip.jpg -container 1200x800 -corners "10,5 790,0 800,600 0,590"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/warp"
	"github.com/gogpu/warp/internal/image"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Printf("warpcalc: %v", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a run error to the process status. An explicit -h is a
// successful run.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

type config struct {
	imagePath string
	size      warp.Rect
	container warp.Rect
	padding   float64
	corners   *warp.Corners
	from      *warp.Corners
	t         float64
	clamp     bool
	lang      language.Tag
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("warpcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		imagePath = fs.String("image", "", "image file to read dimensions from")
		size      = fs.String("size", "", "image size WxH (instead of -image)")
		container = fs.String("container", "800x600", "container size WxH")
		padding   = fs.Float64("padding", 1, "fit padding factor")
		corners   = fs.String("corners", "", `layer corners "x,y x,y x,y x,y" (TL TR BR BL)`)
		from      = fs.String("from", "", "start corners for an interpolation preview")
		t         = fs.Float64("t", 1, "interpolation factor between -from and -corners")
		clamp     = fs.Bool("clamp", false, "clamp corners to the container")
		lang      = fs.String("lang", "en", "BCP 47 language for the summary")
		verbose   = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		imagePath: *imagePath,
		padding:   *padding,
		t:         *t,
		clamp:     *clamp,
		verbose:   *verbose,
	}

	var err error
	if cfg.container, err = parseSize(*container); err != nil {
		return config{}, fmt.Errorf("-container: %w", err)
	}
	switch {
	case *imagePath != "" && *size != "":
		return config{}, errors.New("-image and -size are mutually exclusive")
	case *size != "":
		if cfg.size, err = parseSize(*size); err != nil {
			return config{}, fmt.Errorf("-size: %w", err)
		}
	case *imagePath == "":
		return config{}, errors.New("one of -image or -size is required")
	}
	if *corners != "" {
		c, err := parseCorners(*corners)
		if err != nil {
			return config{}, fmt.Errorf("-corners: %w", err)
		}
		cfg.corners = &c
	}
	if *from != "" {
		if cfg.corners == nil {
			return config{}, errors.New("-from requires -corners")
		}
		c, err := parseCorners(*from)
		if err != nil {
			return config{}, fmt.Errorf("-from: %w", err)
		}
		cfg.from = &c
	}
	if cfg.lang, err = language.Parse(*lang); err != nil {
		return config{}, fmt.Errorf("-lang: %w", err)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		warp.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer warp.SetLogger(nil)
	}

	if cfg.imagePath != "" {
		sz, err := image.LoadSize(cfg.imagePath)
		if err != nil {
			return err
		}
		cfg.size = warp.Rect{Width: float64(sz.Width), Height: float64(sz.Height)}
	}

	info, err := warp.Fit(cfg.container, cfg.size, warp.WithPadding(cfg.padding))
	if err != nil {
		return err
	}

	p := message.NewPrinter(cfg.lang)
	p.Fprintf(stdout, "fit: %.2f x %.2f at (%.2f, %.2f), scale %.4f\n",
		info.Width, info.Height, info.X, info.Y, info.Scale)

	corners := warp.DefaultCorners(info.Width, info.Height)
	if cfg.corners != nil {
		corners = *cfg.corners
	}
	if cfg.from != nil {
		corners = warp.InterpolateCorners(*cfg.from, corners, cfg.t)
	}
	if cfg.clamp {
		// Layer space is offset from container space by the fit origin.
		corners = corners.Clamp(warp.Bounds{
			MinX: -info.X,
			MinY: -info.Y,
			MaxX: cfg.container.Width - info.X,
			MaxY: cfg.container.Height - info.Y,
		})
	}

	a := warp.AnalyzeQuadrilateral(corners)
	p.Fprintf(stdout, "quad: %s (winding %d)\n", a.Shape, a.Winding)

	css, err := warp.ComputeMatrix3D(corners, info.Width, info.Height)
	if err != nil {
		return err
	}
	if css == "" {
		fmt.Fprintln(stdout, "transform: none")
		return nil
	}
	fmt.Fprintf(stdout, "transform: %s\n", css)
	return nil
}
