package warp

// Corners holds the four destination corners of the warped layer.
//
// The corners should describe a simple quadrilateral traversed
// consistently; nothing enforces that at construction time, see
// AnalyzeQuadrilateral.
type Corners struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// DefaultCorners returns the natural corners of a width×height image,
// that is, the corners that produce no transform at all.
func DefaultCorners(width, height float64) Corners {
	return Corners{
		TopLeft:     Point{X: 0, Y: 0},
		TopRight:    Point{X: width, Y: 0},
		BottomLeft:  Point{X: 0, Y: height},
		BottomRight: Point{X: width, Y: height},
	}
}

// IsDefault reports whether c equals DefaultCorners(width, height) exactly.
// No tolerance is applied: a handle dragged by a fraction of a pixel is a
// real transform.
func (c Corners) IsDefault(width, height float64) bool {
	return c == DefaultCorners(width, height)
}

// Ring returns the corners in cyclic order: top-left, top-right,
// bottom-right, bottom-left.
func (c Corners) Ring() [4]Point {
	return [4]Point{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// Clamp returns c with every corner limited to b.
func (c Corners) Clamp(b Bounds) Corners {
	return Corners{
		TopLeft:     c.TopLeft.Clamp(b),
		TopRight:    c.TopRight.Clamp(b),
		BottomLeft:  c.BottomLeft.Clamp(b),
		BottomRight: c.BottomRight.Clamp(b),
	}
}

// Translate returns c shifted by d.
func (c Corners) Translate(d Point) Corners {
	return Corners{
		TopLeft:     c.TopLeft.Add(d),
		TopRight:    c.TopRight.Add(d),
		BottomLeft:  c.BottomLeft.Add(d),
		BottomRight: c.BottomRight.Add(d),
	}
}

// InterpolateCorners linearly interpolates each corner from from to to.
//
// t is not clamped: values outside [0, 1] extrapolate, which lets easing
// curves overshoot during a reset animation. t=0 returns from and t=1
// returns to exactly.
func InterpolateCorners(from, to Corners, t float64) Corners {
	return Corners{
		TopLeft:     from.TopLeft.Lerp(to.TopLeft, t),
		TopRight:    from.TopRight.Lerp(to.TopRight, t),
		BottomLeft:  from.BottomLeft.Lerp(to.BottomLeft, t),
		BottomRight: from.BottomRight.Lerp(to.BottomRight, t),
	}
}
