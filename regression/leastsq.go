package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// fitLeastSquares solves min ||A beta - y|| with an intercept column
// prepended to the feature matrix. Returns the feature coefficients and the
// intercept.
func fitLeastSquares(features [][]float64, y []float64) (coef []float64, intercept float64, err error) {
	nCases := len(features)
	if nCases == 0 {
		return nil, 0, kerrors.Wrap(kerrors.ErrEmptyData, "regression.fitLeastSquares")
	}
	if len(y) != nCases {
		return nil, 0, kerrors.NewDimensionError("regression.fitLeastSquares",
			[]int{nCases}, []int{len(y)})
	}
	nFeat := len(features[0])
	// QR factorization needs at least as many rows as columns.
	if nCases < nFeat+1 {
		return nil, 0, kerrors.NewValueError("regression.fitLeastSquares",
			fmt.Sprintf("need at least %d cases to fit %d coefficients, got %d",
				nFeat+1, nFeat+1, nCases))
	}

	a := mat.NewDense(nCases, nFeat+1, nil)
	for i, row := range features {
		if len(row) != nFeat {
			return nil, 0, kerrors.NewDimensionError("regression.fitLeastSquares",
				[]int{nFeat}, []int{len(row)})
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(nCases, nil)
	for i, v := range y {
		b.SetVec(i, v)
	}

	var qr mat.QR
	qr.Factorize(a)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, b); err != nil {
		// A Condition error flags an ill-conditioned system but still
		// carries a usable solution; anything else is fatal.
		if _, ok := err.(mat.Condition); !ok {
			return nil, 0, kerrors.Wrap(err, "regression.fitLeastSquares")
		}
	}

	coef = make([]float64, nFeat)
	for j := 0; j < nFeat; j++ {
		coef[j] = beta.At(j+1, 0)
	}
	intercept = beta.At(0, 0)
	if err := kerrors.CheckFinite("regression.fitLeastSquares", append([]float64{intercept}, coef...)); err != nil {
		return nil, 0, err
	}
	return coef, intercept, nil
}

// predictLinear applies fitted coefficients to a feature matrix.
func predictLinear(features [][]float64, coef []float64, intercept float64) ([]float64, error) {
	out := make([]float64, len(features))
	for i, row := range features {
		if len(row) != len(coef) {
			return nil, kerrors.NewDimensionError("regression.predictLinear",
				[]int{len(coef)}, []int{len(row)})
		}
		v := intercept
		for j, x := range row {
			v += coef[j] * x
		}
		out[i] = v
	}
	return out, nil
}
