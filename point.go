package warp

import "math"

// Point is a pixel-space coordinate. Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Lerp performs linear interpolation between two points.
// t=0 returns p and t=1 returns q exactly; t outside [0, 1] extrapolates.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: lerp(p.X, q.X, t),
		Y: lerp(p.Y, q.Y, t),
	}
}

// Clamp returns p limited to b on each axis.
func (p Point) Clamp(b Bounds) Point {
	return Point{
		X: math.Max(b.MinX, math.Min(b.MaxX, p.X)),
		Y: math.Max(b.MinY, math.Min(b.MaxY, p.Y)),
	}
}

// Bounds is the box a dragged corner is kept inside.
// The zero minimums make Bounds{MaxX: w, MaxY: h} the common viewport case.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// lerp uses the two-product form so both endpoints are reproduced exactly.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
