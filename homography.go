package warp

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/warp/internal/linalg"
)

// Homography is a planar projective transform with eight free coefficients:
//
//	x' = (A*x + B*y + C) / (G*x + H*y + 1)
//	y' = (D*x + E*y + F) / (G*x + H*y + 1)
//
// As a 3x3 matrix acting on column vectors it is
//
//	| A  B  C |
//	| D  E  F |
//	| G  H  1 |
type Homography struct {
	A, B, C float64
	D, E, F float64
	G, H    float64
}

// IdentityHomography returns the transform that leaves every point in place.
func IdentityHomography() Homography {
	return Homography{A: 1, E: 1}
}

// EstimateHomography computes the transform mapping the width×height
// rectangle at the origin onto dst.
//
// The rectangle corners (0,0), (w,0), (w,h), (0,h) are paired with dst in
// ring order (top-left, top-right, bottom-right, bottom-left). Each pair
// contributes two rows to an 8x8 linear system in A..H.
//
// It returns ErrSingularSystem when the destination corners do not
// determine a transform (for instance when all four lie on one line),
// and ErrInvalidSize for non-positive or non-finite dimensions.
func EstimateHomography(dst Corners, width, height float64) (Homography, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Homography{}, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}

	src := DefaultCorners(width, height).Ring()
	to := dst.Ring()

	var a [8][8]float64
	var b [8]float64
	for i := range 4 {
		sx, sy := src[i].X, src[i].Y
		dx, dy := to[i].X, to[i].Y

		a[2*i] = [8]float64{sx, sy, 1, 0, 0, 0, -sx * dx, -sy * dx}
		b[2*i] = dx
		a[2*i+1] = [8]float64{0, 0, 0, sx, sy, 1, -sx * dy, -sy * dy}
		b[2*i+1] = dy
	}

	x, err := linalg.Solve8(a, b)
	if err != nil {
		return Homography{}, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}

	h := Homography{
		A: x[0], B: x[1], C: x[2],
		D: x[3], E: x[4], F: x[5],
		G: x[6], H: x[7],
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("warp: estimated homography",
			"width", width, "height", height, "coefficients", x)
	}
	return h, nil
}

// IsIdentity reports whether every coefficient is within tol of the identity.
func (h Homography) IsIdentity(tol float64) bool {
	id := IdentityHomography()
	return math.Abs(h.A-id.A) <= tol && math.Abs(h.B-id.B) <= tol && math.Abs(h.C-id.C) <= tol &&
		math.Abs(h.D-id.D) <= tol && math.Abs(h.E-id.E) <= tol && math.Abs(h.F-id.F) <= tol &&
		math.Abs(h.G-id.G) <= tol && math.Abs(h.H-id.H) <= tol
}

// IsAffine reports whether the transform has no perspective component.
func (h Homography) IsAffine() bool {
	return h.G == 0 && h.H == 0
}

// TransformPoint maps p through the transform.
// ok is false when p lies on (or numerically at) the line at infinity.
func (h Homography) TransformPoint(p Point) (q Point, ok bool) {
	w := h.G*p.X + h.H*p.Y + 1
	if math.Abs(w) < linalg.Tolerance {
		return Point{}, false
	}
	return Point{
		X: (h.A*p.X + h.B*p.Y + h.C) / w,
		Y: (h.D*p.X + h.E*p.Y + h.F) / w,
	}, true
}

// TransformCorners maps every corner of c through the transform.
func (h Homography) TransformCorners(c Corners) (Corners, bool) {
	var out Corners
	var ok [4]bool
	out.TopLeft, ok[0] = h.TransformPoint(c.TopLeft)
	out.TopRight, ok[1] = h.TransformPoint(c.TopRight)
	out.BottomLeft, ok[2] = h.TransformPoint(c.BottomLeft)
	out.BottomRight, ok[3] = h.TransformPoint(c.BottomRight)
	return out, ok[0] && ok[1] && ok[2] && ok[3]
}

// Invert returns the inverse transform, mapping warped pixels back into the
// source rectangle. The adjugate is normalised so its bottom-right term is 1.
func (h Homography) Invert() (Homography, error) {
	det := h.A*(h.E-h.F*h.H) - h.B*(h.D-h.F*h.G) + h.C*(h.D*h.H-h.E*h.G)
	k := h.A*h.E - h.B*h.D
	if math.Abs(det) < linalg.Tolerance || math.Abs(k) < linalg.Tolerance {
		return Homography{}, fmt.Errorf("%w: determinant %g", ErrSingularSystem, det)
	}
	return Homography{
		A: (h.E - h.F*h.H) / k,
		B: (h.C*h.H - h.B) / k,
		C: (h.B*h.F - h.C*h.E) / k,
		D: (h.F*h.G - h.D) / k,
		E: (h.A - h.C*h.G) / k,
		F: (h.C*h.D - h.A*h.F) / k,
		G: (h.D*h.H - h.E*h.G) / k,
		H: (h.B*h.G - h.A*h.H) / k,
	}, nil
}

// Matrix3D returns the 4x4 column-major matrix consumed by a CSS
// matrix3d() transform:
//
//	[A, D, 0, G,  B, E, 0, H,  0, 0, 1, 0,  C, F, 0, 1]
//
// The layout is fixed; renderers read it positionally.
func (h Homography) Matrix3D() [16]float64 {
	return [16]float64{
		h.A, h.D, 0, h.G,
		h.B, h.E, 0, h.H,
		0, 0, 1, 0,
		h.C, h.F, 0, 1,
	}
}

// String returns the CSS matrix3d() function for h.
func (h Homography) String() string {
	return FormatMatrix3D(h.Matrix3D())
}
