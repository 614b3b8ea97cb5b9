package linalg

import (
	"fmt"
	"math"
)

// Solve8 solves an 8×8 system on a fixed [8][9] stack buffer.
//
// It follows the same pivoting and tolerance rules as Solve and does not
// allocate unless it fails.
func Solve8(a [8][8]float64, b [8]float64) ([8]float64, error) {
	const n = 8
	var aug [n][n + 1]float64
	for i := range n {
		copy(aug[i][:n], a[i][:])
		aug[i][n] = b[i]
	}

	for col := range n {
		p := col + pivotRow(n-col, func(i int) float64 { return aug[col+i][col] })
		aug[col], aug[p] = aug[p], aug[col]

		pivot := aug[col][col]
		if !(math.Abs(pivot) >= Tolerance) {
			return [n]float64{}, fmt.Errorf("%w: pivot %g in column %d", ErrSingular, pivot, col)
		}

		for row := col + 1; row < n; row++ {
			factor := aug[row][col] / pivot
			if factor == 0 {
				continue
			}
			for j := col; j <= n; j++ {
				aug[row][j] -= factor * aug[col][j]
			}
		}
	}

	var x [n]float64
	for row := n - 1; row >= 0; row-- {
		sum := aug[row][n]
		for col := row + 1; col < n; col++ {
			sum -= aug[row][col] * x[col]
		}
		x[row] = sum / aug[row][row]
		if !isFinite(x[row]) {
			return [n]float64{}, fmt.Errorf("%w: non-finite solution at %d", ErrSingular, row)
		}
	}
	return x, nil
}
