package halfspace

import (
	"math"

	"github.com/akmonengine/polytope/geom"
	"github.com/pkg/errors"
)

// ReducedRowEchelon transforms m in place into reduced row-echelon form by Gauss-Jordan
// elimination with partial pivoting, and returns its rank. Pivots smaller than geom.Epsilon are
// treated as zero.
func ReducedRowEchelon(m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	rows, cols := len(m), len(m[0])

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivot := rank
		for r := rank + 1; r < rows; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < geom.Epsilon {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]

		inv := 1.0 / m[rank][col]
		for c := col; c < cols; c++ {
			m[rank][c] *= inv
		}
		for r := 0; r < rows; r++ {
			if r == rank || m[r][col] == 0 {
				continue
			}
			f := m[r][col]
			for c := col; c < cols; c++ {
				m[r][c] -= f * m[rank][c]
			}
		}
		rank++
	}

	return rank
}

// solveAugmented solves the n x n linear system held by the n x (n+1) augmented matrix m and
// returns the solution column. m is modified.
func solveAugmented(m [][]float64) ([]float64, error) {
	n := len(m)
	ReducedRowEchelon(m)

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		// a unique solution leaves the identity in the coefficient block
		if math.Abs(m[i][i]-1) > geom.Epsilon {
			return nil, errors.Wrapf(geom.ErrUndefinedIntersection, "system of rank < %d", n)
		}
		x[i] = m[i][n]
	}
	return x, nil
}
