package linalg

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
		want []float64
	}{
		{
			name: "1x1",
			a:    [][]float64{{4}},
			b:    []float64{2},
			want: []float64{0.5},
		},
		{
			name: "2x2 diagonal dominant",
			a:    [][]float64{{2, 1}, {1, 3}},
			b:    []float64{4, 7},
			want: []float64{1, 2},
		},
		{
			name: "2x2 zero leading coefficient needs swap",
			a:    [][]float64{{0, 1}, {1, 0}},
			b:    []float64{3, 4},
			want: []float64{4, 3},
		},
		{
			name: "3x3",
			a: [][]float64{
				{1, 1, 1},
				{0, 2, 5},
				{2, 5, -1},
			},
			b:    []float64{6, -4, 27},
			want: []float64{5, 3, -2},
		},
		{
			name: "small leading pivot",
			a:    [][]float64{{1e-9, 1}, {1, 1}},
			b:    []float64{1, 2},
			want: []float64{1.000000001, 0.999999999},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Solve() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Solve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolve_Empty(t *testing.T) {
	got, err := Solve(nil, nil)
	if err != nil {
		t.Fatalf("Solve(nil, nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Solve(nil, nil) = %v, want empty", got)
	}
}

func TestSolve_Singular(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
	}{
		{"dependent rows", [][]float64{{1, 2}, {2, 4}}, []float64{3, 6}},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}, []float64{1, 1}},
		{"zero column", [][]float64{{1, 0, 2}, {3, 0, 1}, {5, 0, 7}}, []float64{1, 2, 3}},
		{"pivot below tolerance", [][]float64{{1e-12, 0}, {0, 1}}, []float64{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.a, tt.b)
			if !errors.Is(err, ErrSingular) {
				t.Fatalf("Solve() error = %v, want ErrSingular", err)
			}
			if got != nil {
				t.Errorf("Solve() = %v, want nil on error", got)
			}
		})
	}
}

func TestSolve_Dimension(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
	}{
		{"row count mismatch", [][]float64{{1, 0}, {0, 1}}, []float64{1}},
		{"ragged row", [][]float64{{1, 0}, {0}}, []float64{1, 1}},
		{"non-square", [][]float64{{1, 0, 0}, {0, 1, 0}}, []float64{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Solve(tt.a, tt.b); !errors.Is(err, ErrDimension) {
				t.Errorf("Solve() error = %v, want ErrDimension", err)
			}
		})
	}
}

func TestSolve_DoesNotMutateInputs(t *testing.T) {
	a := [][]float64{{0, 2, 1}, {1, 1, 1}, {4, 0, 3}}
	b := []float64{5, 6, 13}
	aCopy := [][]float64{{0, 2, 1}, {1, 1, 1}, {4, 0, 3}}
	bCopy := []float64{5, 6, 13}

	if _, err := Solve(a, b); err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if diff := cmp.Diff(aCopy, a); diff != "" {
		t.Errorf("coefficients mutated (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(bCopy, b); diff != "" {
		t.Errorf("right-hand side mutated (-before +after):\n%s", diff)
	}
}

func TestPivotRow(t *testing.T) {
	tests := []struct {
		name   string
		column []float64
		want   int
	}{
		{"single", []float64{3}, 0},
		{"largest last", []float64{1, -4, 2}, 1},
		{"opposite signs tie", []float64{1, -1}, 0},
		{"tie after zero", []float64{0, 2, -2}, 1},
		{"three-way tie", []float64{-5, 5, 5}, 0},
		{"all zero", []float64{0, 0, 0}, 0},
		{"NaN never selected", []float64{1, math.NaN()}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pivotRow(len(tt.column), func(i int) float64 { return tt.column[i] })
			if got != tt.want {
				t.Errorf("pivotRow(%v) = %d, want %d", tt.column, got, tt.want)
			}
		})
	}
}

func TestSolve8_MatchesSolve(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		var a [8][8]float64
		var b [8]float64
		rows := make([][]float64, 8)
		for i := range 8 {
			rows[i] = make([]float64, 8)
			for j := range 8 {
				v := rng.Float64()*20 - 10
				if i == j {
					v += 100
				}
				a[i][j] = v
				rows[i][j] = v
			}
			b[i] = rng.Float64()*200 - 100
		}

		want, err := Solve(rows, b[:])
		if err != nil {
			t.Fatalf("iter %d: Solve() error = %v", iter, err)
		}
		got, err := Solve8(a, b)
		if err != nil {
			t.Fatalf("iter %d: Solve8() error = %v", iter, err)
		}
		for i := range 8 {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("iter %d: x[%d] = %v, Solve gave %v", iter, i, got[i], want[i])
			}
		}

		// Residual check.
		for i := range 8 {
			var sum float64
			for j := range 8 {
				sum += a[i][j] * got[j]
			}
			if math.Abs(sum-b[i]) > 1e-9 {
				t.Errorf("iter %d: residual row %d = %v", iter, i, sum-b[i])
			}
		}
	}
}

func TestSolve8_Singular(t *testing.T) {
	var a [8][8]float64
	for i := range 7 {
		a[i][i] = 1
	}
	// Column 7 is all zero.
	_, err := Solve8(a, [8]float64{1, 1, 1, 1, 1, 1, 1, 1})
	if !errors.Is(err, ErrSingular) {
		t.Errorf("Solve8() error = %v, want ErrSingular", err)
	}
}

func BenchmarkSolve8(b *testing.B) {
	var a [8][8]float64
	var rhs [8]float64
	for i := range 8 {
		for j := range 8 {
			a[i][j] = float64((i*7+j*3)%11) - 5
		}
		a[i][i] += 50
		rhs[i] = float64(i)
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Solve8(a, rhs)
	}
}

func BenchmarkSolve(b *testing.B) {
	a := make([][]float64, 8)
	rhs := make([]float64, 8)
	for i := range 8 {
		a[i] = make([]float64, 8)
		for j := range 8 {
			a[i][j] = float64((i*7+j*3)%11) - 5
		}
		a[i][i] += 50
		rhs[i] = float64(i)
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Solve(a, rhs)
	}
}
