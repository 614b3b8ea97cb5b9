// Package linalg provides the dense linear solver behind the homography
// estimator.
//
// Systems are solved by Gaussian elimination with partial pivoting on a
// private augmented buffer. Inputs are never mutated, so every call is
// reentrant.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance is the smallest pivot magnitude accepted during elimination.
// Pivots below it mark the system as singular.
const Tolerance = 1e-10

var (
	// ErrSingular is returned when elimination meets a pivot below Tolerance
	// or back substitution produces a non-finite value.
	ErrSingular = errors.New("linalg: singular system")

	// ErrDimension is returned when the coefficient matrix is not square or
	// the right-hand side does not match its dimension.
	ErrDimension = errors.New("linalg: dimension mismatch")
)

// Solve returns x such that a·x = b.
//
// a must be n×n and len(b) must be n. Row pivots are chosen by largest
// absolute value, first row wins on ties.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("%w: %d rows, %d right-hand values", ErrDimension, len(a), n)
	}
	if n == 0 {
		return []float64{}, nil
	}

	// One n×(n+1) augmented buffer, row-major.
	w := n + 1
	aug := make([]float64, n*w)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimension, i, len(row), n)
		}
		copy(aug[i*w:i*w+n], row)
		aug[i*w+n] = b[i]
	}

	for col := 0; col < n; col++ {
		p := col + pivotRow(n-col, func(i int) float64 { return aug[(col+i)*w+col] })
		if p != col {
			swapRows(aug[col*w:col*w+w], aug[p*w:p*w+w])
		}

		pivot := aug[col*w+col]
		if !(math.Abs(pivot) >= Tolerance) {
			return nil, fmt.Errorf("%w: pivot %g in column %d", ErrSingular, pivot, col)
		}

		for row := col + 1; row < n; row++ {
			factor := aug[row*w+col] / pivot
			if factor == 0 {
				continue
			}
			for j := col; j < w; j++ {
				aug[row*w+j] -= factor * aug[col*w+j]
			}
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := aug[row*w+n]
		for col := row + 1; col < n; col++ {
			sum -= aug[row*w+col] * x[col]
		}
		x[row] = sum / aug[row*w+row]
		if !isFinite(x[row]) {
			return nil, fmt.Errorf("%w: non-finite solution at %d", ErrSingular, row)
		}
	}
	return x, nil
}

// pivotRow returns the index in [0, n) of the largest |at(i)|. The first
// index wins on ties.
func pivotRow(n int, at func(int) float64) int {
	best := 0
	maxAbs := math.Abs(at(0))
	for i := 1; i < n; i++ {
		if v := math.Abs(at(i)); v > maxAbs {
			maxAbs = v
			best = i
		}
	}
	return best
}

func swapRows(r1, r2 []float64) {
	for j := range r1 {
		r1[j], r2[j] = r2[j], r1[j]
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
