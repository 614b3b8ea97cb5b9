package warp

import (
	"fmt"
	"math"
)

// AspectTolerance is the largest aspect-ratio drift Fit accepts between the
// image and its draw rectangle.
const AspectTolerance = 1e-4

// Rect is a size. It has no position.
type Rect struct {
	Width, Height float64
}

// Aspect returns Width/Height.
func (r Rect) Aspect() float64 {
	return r.Width / r.Height
}

// valid reports whether both dimensions are positive and finite.
func (r Rect) valid() bool {
	return r.Width > 0 && r.Height > 0 && !math.IsInf(r.Width, 0) && !math.IsInf(r.Height, 0)
}

// DrawInfo places a fitted image inside its container.
type DrawInfo struct {
	X, Y          float64
	Width, Height float64
	Scale         float64
}

// Corners returns the corners of the draw rectangle in container space.
// They are the starting handles for a perspective overlay.
func (d DrawInfo) Corners() Corners {
	return DefaultCorners(d.Width, d.Height).Translate(Point{X: d.X, Y: d.Y})
}

// Size returns the draw rectangle's size.
func (d DrawInfo) Size() Rect {
	return Rect{Width: d.Width, Height: d.Height}
}

// Fit returns the largest centred placement of image inside container that
// preserves image's aspect ratio, scaled further by WithPadding.
//
// The aspect ratio of the result is checked against the image's; a drift
// larger than AspectTolerance returns ErrAspectRatioViolation instead of a
// distorted rectangle. Non-positive or non-finite sizes return
// ErrInvalidSize, and an unusable padding returns ErrInvalidPadding.
func Fit(container, image Rect, opts ...FitOption) (DrawInfo, error) {
	o := defaultFitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !container.valid() {
		return DrawInfo{}, fmt.Errorf("%w: container %gx%g", ErrInvalidSize, container.Width, container.Height)
	}
	if !image.valid() {
		return DrawInfo{}, fmt.Errorf("%w: image %gx%g", ErrInvalidSize, image.Width, image.Height)
	}
	if !(o.padding > 0) || math.IsInf(o.padding, 0) {
		return DrawInfo{}, fmt.Errorf("%w: %g", ErrInvalidPadding, o.padding)
	}

	scale := math.Min(container.Width/image.Width, container.Height/image.Height) * o.padding
	w := image.Width * scale
	h := image.Height * scale
	info := DrawInfo{
		X:      (container.Width - w) / 2,
		Y:      (container.Height - h) / 2,
		Width:  w,
		Height: h,
		Scale:  scale,
	}

	if err := checkAspect(image, info.Size()); err != nil {
		Logger().Error("warp: fit integrity check failed",
			"container", container, "image", image, "result", info, "err", err)
		return DrawInfo{}, err
	}
	return info, nil
}

// MustFit is like Fit but panics on error.
func MustFit(container, image Rect, opts ...FitOption) DrawInfo {
	info, err := Fit(container, image, opts...)
	if err != nil {
		panic(err)
	}
	return info
}

// checkAspect verifies that dst has src's aspect ratio within AspectTolerance.
// A NaN difference fails the check.
func checkAspect(src, dst Rect) error {
	want, got := src.Aspect(), dst.Aspect()
	if !(math.Abs(want-got) <= AspectTolerance) {
		return fmt.Errorf("%w: source %g, result %g", ErrAspectRatioViolation, want, got)
	}
	return nil
}
