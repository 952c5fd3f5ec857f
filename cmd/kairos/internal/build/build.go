// Package build constructs estimators from command line flag values.
package build

import (
	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/regression"
	"github.com/kairoslib/kairos/transformations/smoothing"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// Smoother maps a smoother name and its flag values to a transformer.
func Smoother(method string, window int, r float64, sortTerms bool) (estimator.Transformer, error) {
	switch method {
	case "movingaverage":
		return smoothing.NewMovingAverage(window), nil
	case "dfa":
		return smoothing.NewDiscreteFourierApproximation(r, sortTerms), nil
	case "none", "":
		return nil, nil
	default:
		return nil, kerrors.NewValidationError("smoother", "unknown smoother (movingaverage, dfa, none)", method)
	}
}

// Regressor maps a regressor name and its flag values to a regressor.
func Regressor(name string, nIntervals int, seed int64) (estimator.Regressor, error) {
	switch name {
	case "summary":
		return regression.NewSummaryRegressor(), nil
	case "interval":
		return regression.NewIntervalFeatureRegressor(nIntervals, seed), nil
	default:
		return nil, kerrors.NewValidationError("regressor", "unknown regressor (summary, interval)", name)
	}
}
