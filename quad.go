package warp

// QuadShape classifies the quadrilateral described by a Corners value.
type QuadShape int

const (
	// QuadDegenerate means at least one triple of consecutive corners is collinear
	// (including coincident corners).
	QuadDegenerate QuadShape = iota
	// QuadConvex means every turn has the same direction.
	QuadConvex
	// QuadConcave means the outline is simple but has one reflex corner.
	QuadConcave
	// QuadSelfIntersecting means two opposite edges cross (a "bowtie").
	QuadSelfIntersecting
)

// String returns the shape name.
func (s QuadShape) String() string {
	switch s {
	case QuadDegenerate:
		return "degenerate"
	case QuadConvex:
		return "convex"
	case QuadConcave:
		return "concave"
	case QuadSelfIntersecting:
		return "self-intersecting"
	default:
		return "unknown"
	}
}

// QuadAnalysis is the detailed result of AnalyzeQuadrilateral.
type QuadAnalysis struct {
	// Shape is the classification of the outline.
	Shape QuadShape

	// Winding is +1 when every turn is positive (clockwise on screen, since
	// Y grows downward), -1 when every turn is negative, 0 otherwise.
	Winding int

	// Cross holds the turn at each corner of the ring, starting with the
	// turn at top-right (edges TL→TR and TR→BR).
	Cross [4]float64
}

// IsValidQuadrilateral reports whether the corners, taken in the order
// top-left, top-right, bottom-right, bottom-left, form a strictly convex
// quadrilateral in either winding direction.
//
// It is a predicate only; callers decide whether to reject the input.
func IsValidQuadrilateral(c Corners) bool {
	return AnalyzeQuadrilateral(c).Shape == QuadConvex
}

// AnalyzeQuadrilateral classifies the quadrilateral formed by c.
//
// Each consecutive vertex triple contributes the cross product of its two
// edge vectors. A zero product makes the quad degenerate. Otherwise the
// sign counts decide the shape: a simple quad turns a full revolution, so
// it has all four signs equal (convex) or three against one (concave),
// while a bowtie turns zero times and splits two against two.
func AnalyzeQuadrilateral(c Corners) QuadAnalysis {
	ring := c.Ring()
	var res QuadAnalysis
	var positive, negative int

	for i := range 4 {
		p0 := ring[i]
		p1 := ring[(i+1)%4]
		p2 := ring[(i+2)%4]

		cross := p1.Sub(p0).Cross(p2.Sub(p1))
		res.Cross[i] = cross

		switch {
		case cross > 0:
			positive++
		case cross < 0:
			negative++
		}
	}

	switch {
	case positive+negative < 4:
		// Zero (or NaN) turn.
		res.Shape = QuadDegenerate
	case positive == 4:
		res.Shape = QuadConvex
		res.Winding = 1
	case negative == 4:
		res.Shape = QuadConvex
		res.Winding = -1
	case positive == 2:
		res.Shape = QuadSelfIntersecting
	default:
		res.Shape = QuadConcave
	}
	return res
}
