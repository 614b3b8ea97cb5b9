package warp

import (
	"math"
	"strconv"
	"strings"
)

// ComputeMatrix3D returns the CSS transform that warps a width×height
// layer onto corners.
//
// When corners are exactly DefaultCorners(width, height) it returns the
// empty string: no transform is needed, which is distinct from an explicit
// identity matrix3d(). The comparison is exact: corners that merely round to
// the defaults take the full estimation path.
func ComputeMatrix3D(corners Corners, width, height float64) (string, error) {
	if corners.IsDefault(width, height) {
		Logger().Debug("warp: default corners, no transform", "width", width, "height", height)
		return "", nil
	}
	h, err := EstimateHomography(corners, width, height)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// FormatMatrix3D renders a column-major 4x4 matrix as
// "matrix3d(v0, v1, ..., v15)".
func FormatMatrix3D(m [16]float64) string {
	var sb strings.Builder
	sb.Grow(16 * 12)
	sb.WriteString("matrix3d(")
	for i, v := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatNumber(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

// ComposeTransform builds a CSS transform from a translation in pixels, a
// uniform scale and a rotation in degrees. Scale 1 and rotation 0 are
// omitted.
func ComposeTransform(position Point, scale, rotation float64) string {
	var sb strings.Builder
	sb.WriteString("translate(")
	sb.WriteString(FormatNumber(position.X))
	sb.WriteString("px, ")
	sb.WriteString(FormatNumber(position.Y))
	sb.WriteString("px)")
	if scale != 1 {
		sb.WriteString(" scale(")
		sb.WriteString(FormatNumber(scale))
		sb.WriteByte(')')
	}
	if rotation != 0 {
		sb.WriteString(" rotate(")
		sb.WriteString(FormatNumber(rotation))
		sb.WriteString("deg)")
	}
	return sb.String()
}

// FormatNumber formats v the way browser script engines stringify numbers:
// the shortest digits that round-trip, plain decimal notation for
// 1e-6 <= |v| < 1e21 and exponent notation ("1.5e-7", "1e+21") outside it.
// Negative zero is written as "0".
func FormatNumber(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// "d.ddde±XX" with the shortest round-trip digits.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mant, ".", "", 1)

	k := len(digits)
	n := exp + 1 // decimal point position relative to the digits

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	esign := "+"
	if e < 0 {
		esign = "-"
		e = -e
	}
	if k == 1 {
		return sign + digits + "e" + esign + strconv.Itoa(e)
	}
	return sign + digits[:1] + "." + digits[1:] + "e" + esign + strconv.Itoa(e)
}
