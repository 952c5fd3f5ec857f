// Package metrics provides regression performance metrics.
package metrics

import (
	"math"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// validatePair checks that yTrue and yPred are non-empty and equally sized.
func validatePair(op string, yTrue, yPred []float64) error {
	if len(yTrue) == 0 {
		return kerrors.NewValueError(op, "empty input")
	}
	if len(yPred) != len(yTrue) {
		return kerrors.NewDimensionError(op, []int{len(yTrue)}, []int{len(yPred)})
	}
	return nil
}

// MSE returns the mean squared error.
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := validatePair("MSE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum / float64(len(yTrue)), nil
}

// RMSE returns the root mean squared error.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error.
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := validatePair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(len(yTrue)), nil
}

// MAPE returns the mean absolute percentage error. True values equal to
// zero are rejected since the ratio is undefined there.
func MAPE(yTrue, yPred []float64) (float64, error) {
	if err := validatePair("MAPE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := range yTrue {
		if yTrue[i] == 0 {
			return 0, kerrors.NewValueError("MAPE", "yTrue contains zero values")
		}
		sum += math.Abs((yTrue[i] - yPred[i]) / yTrue[i])
	}
	return sum / float64(len(yTrue)), nil
}

// R2 returns the coefficient of determination. A model predicting the mean
// of yTrue scores 0; a perfect model scores 1. If yTrue is constant the
// score is undefined and an error is returned.
func R2(yTrue, yPred []float64) (float64, error) {
	if err := validatePair("R2", yTrue, yPred); err != nil {
		return 0, err
	}

	var mean float64
	for _, v := range yTrue {
		mean += v
	}
	mean /= float64(len(yTrue))

	var ssRes, ssTot float64
	for i := range yTrue {
		res := yTrue[i] - yPred[i]
		tot := yTrue[i] - mean
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return 0, kerrors.NewValueError("R2", "yTrue is constant, score undefined")
	}
	return 1 - ssRes/ssTot, nil
}
