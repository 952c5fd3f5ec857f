// Package regression provides time-series regression estimators.
package regression

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/core/parallel"
	"github.com/kairoslib/kairos/metrics"
	"github.com/kairoslib/kairos/pkg/log"
	"github.com/kairoslib/kairos/registry"
	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// regressorTags is the category tag layer shared by regression estimators.
var regressorTags = estimator.Tags{
	"capability:multivariate":   true,
	"capability:unequal_length": true,
	"capability:multithreading": true,
}

// parallelThreshold is the collection size above which feature extraction
// fans out across goroutines.
const parallelThreshold = 64

func init() {
	registry.MustRegisterEstimator(registry.EstimatorEntry{
		Name:     "SummaryRegressor",
		Category: registry.CategoryRegressor,
		New: func() estimator.Estimator {
			return NewSummaryRegressor()
		},
	})
}

var _ estimator.Regressor = (*SummaryRegressor)(nil)

// SummaryRegressor reduces every case to per-channel summary statistics
// (mean, standard deviation, linear slope, min, max) and fits a least
// squares model on the resulting feature table.
type SummaryRegressor struct {
	estimator.BaseEstimator
}

// NewSummaryRegressor creates the regressor.
func NewSummaryRegressor() *SummaryRegressor {
	return &SummaryRegressor{
		BaseEstimator: estimator.NewBase("SummaryRegressor",
			regressorTags,
			estimator.Tags{"algorithm_type": "feature"},
		),
	}
}

// GetParams returns the hyper-parameters. SummaryRegressor has none.
func (r *SummaryRegressor) GetParams() estimator.Params {
	return estimator.Params{}
}

// SetParams reconfigures the hyper-parameters.
func (r *SummaryRegressor) SetParams(p estimator.Params) error {
	if len(p) > 0 {
		return kerrors.NewValidationError("params", "SummaryRegressor has no hyper-parameters", p)
	}
	return nil
}

// Coef returns the fitted feature coefficients.
func (r *SummaryRegressor) Coef() []float64 {
	v, _ := r.FittedAttr("coef_")
	c, _ := v.([]float64)
	return c
}

// Intercept returns the fitted intercept.
func (r *SummaryRegressor) Intercept() float64 {
	v, _ := r.FittedAttr("intercept_")
	c, _ := v.(float64)
	return c
}

// Fit extracts summary features from X and solves the least squares problem
// against y.
func (r *SummaryRegressor) Fit(X series.Collection, y []float64) error {
	start := time.Now()
	if err := X.Validate(); err != nil {
		return err
	}
	if len(y) != X.NCases() {
		return kerrors.NewDimensionError("SummaryRegressor.Fit",
			[]int{X.NCases()}, []int{len(y)})
	}

	features := summaryFeatures(X)
	coef, intercept, err := fitLeastSquares(features, y)
	if err != nil {
		return err
	}

	r.SetFittedAttr("coef_", coef)
	r.SetFittedAttr("intercept_", intercept)
	r.SetFittedAttr("n_features_in_", len(coef))
	r.SetFitted()

	log.GetLogger().Debug("fit complete",
		log.EstimatorKey, r.EstimatorName(),
		log.OperationKey, "fit",
		log.CasesKey, X.NCases(),
		log.ChannelsKey, X.NChannels(),
		log.DurationMSKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict applies the fitted model to X.
func (r *SummaryRegressor) Predict(X series.Collection) ([]float64, error) {
	if err := r.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := X.Validate(); err != nil {
		return nil, err
	}
	return predictLinear(summaryFeatures(X), r.Coef(), r.Intercept())
}

// Score returns the coefficient of determination R² on X, y.
func (r *SummaryRegressor) Score(X series.Collection, y []float64) (float64, error) {
	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2(y, pred)
}

// summaryFeatures extracts the per-channel feature table for a collection.
func summaryFeatures(X series.Collection) [][]float64 {
	features := make([][]float64, len(X))
	parallel.ForEachChunkThreshold(len(X), parallelThreshold, func(startIdx, endIdx int) {
		for i := startIdx; i < endIdx; i++ {
			features[i] = caseFeatures(X[i])
		}
	})
	return features
}

// caseFeatures computes mean, std, slope, min and max for every channel.
func caseFeatures(s series.Series) []float64 {
	rows, cols := s.Dims()
	out := make([]float64, 0, rows*5)
	idx := make([]float64, cols)
	for j := range idx {
		idx[j] = float64(j)
	}
	for i := 0; i < rows; i++ {
		row := s.RawRowView(i)
		mean, std := stat.MeanStdDev(row, nil)
		slope := 0.0
		if cols > 1 {
			_, slope = stat.LinearRegression(idx, row, nil, false)
		} else {
			std = 0
		}
		minV, maxV := row[0], row[0]
		for _, v := range row[1:] {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
		out = append(out, mean, std, slope, minV, maxV)
	}
	return out
}
