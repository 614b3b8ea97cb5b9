package warp

import "errors"

// Tracker turns a stream of corner updates for one layer into CSS
// transforms, keeping the last good transform when an update cannot be
// solved.
//
// Non-convex corners are still rendered and only logged. A Tracker is not
// safe for concurrent use; it belongs to the goroutine feeding it pointer
// events.
type Tracker struct {
	width, height float64
	last          string
	lastCorners   Corners
}

// NewTracker returns a Tracker for a width×height layer, starting with no
// transform.
func NewTracker(width, height float64) *Tracker {
	return &Tracker{
		width:       width,
		height:      height,
		lastCorners: DefaultCorners(width, height),
	}
}

// Update computes the transform for c.
//
// On success the transform is remembered and returned. If the system is
// singular, the previous transform is returned together with the error so
// the caller can keep rendering it. Other errors return "" and the error.
func (t *Tracker) Update(c Corners) (string, error) {
	if a := AnalyzeQuadrilateral(c); a.Shape != QuadConvex {
		Logger().Warn("warp: corners are not convex", "shape", a.Shape.String())
	}

	css, err := ComputeMatrix3D(c, t.width, t.height)
	if err != nil {
		if errors.Is(err, ErrSingularSystem) {
			Logger().Warn("warp: keeping previous transform", "err", err)
			return t.last, err
		}
		return "", err
	}

	t.last = css
	t.lastCorners = c
	return css, nil
}

// Transform returns the last transform Update accepted.
func (t *Tracker) Transform() string {
	return t.last
}

// Corners returns the corners of the last accepted transform.
func (t *Tracker) Corners() Corners {
	return t.lastCorners
}

// Reset forgets the current transform and returns the layer to its
// default corners.
func (t *Tracker) Reset() {
	t.last = ""
	t.lastCorners = DefaultCorners(t.width, t.height)
}
