package errors

import (
	"math"
)

// CheckFinite returns a ValueError when values contain NaN or Inf. Solvers
// call it on their outputs so that numerical breakdown surfaces as an error
// instead of propagating through fitted state.
func CheckFinite(op string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValueError(op, "result contains NaN or Inf")
		}
	}
	return nil
}

// CheckFiniteMatrix checks every entry of a matrix for NaN or Inf.
func CheckFiniteMatrix(op string, m interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return NewValueError(op, "input contains NaN or Inf")
			}
		}
	}
	return nil
}
