package regression

import (
	"math/rand"

	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/metrics"
	"github.com/kairoslib/kairos/registry"
	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

func init() {
	registry.MustRegisterEstimator(registry.EstimatorEntry{
		Name:     "IntervalFeatureRegressor",
		Category: registry.CategoryRegressor,
		New: func() estimator.Estimator {
			return NewIntervalFeatureRegressorDefault()
		},
		TestParams: estimator.Params{"n_intervals": 4, "random_state": int64(7)},
	})
}

var _ estimator.Regressor = (*IntervalFeatureRegressor)(nil)

// IntervalFeatureRegressor draws random intervals over the time axis, uses
// the interval means of every channel as features, and fits a least squares
// model on them. Interval positions are drawn once during Fit from the
// random_state seed, so fitted models are reproducible.
//
// Requires an equal-length collection: intervals are positions shared by
// all cases.
type IntervalFeatureRegressor struct {
	estimator.BaseEstimator

	// NIntervals is the number of random intervals to draw, at least 1.
	NIntervals int

	// RandomState seeds interval selection.
	RandomState int64
}

// NewIntervalFeatureRegressor creates the regressor with an explicit
// interval count and seed.
func NewIntervalFeatureRegressor(nIntervals int, randomState int64) *IntervalFeatureRegressor {
	return &IntervalFeatureRegressor{
		BaseEstimator: estimator.NewBase("IntervalFeatureRegressor",
			regressorTags,
			estimator.Tags{
				"algorithm_type":            "interval",
				"capability:unequal_length": false,
			},
		),
		NIntervals:  nIntervals,
		RandomState: randomState,
	}
}

// NewIntervalFeatureRegressorDefault creates the regressor with 8 intervals
// and seed 0.
func NewIntervalFeatureRegressorDefault() *IntervalFeatureRegressor {
	return NewIntervalFeatureRegressor(8, 0)
}

// GetParams returns the hyper-parameters.
func (r *IntervalFeatureRegressor) GetParams() estimator.Params {
	return estimator.Params{
		"n_intervals":  r.NIntervals,
		"random_state": r.RandomState,
	}
}

// SetParams reconfigures the hyper-parameters.
func (r *IntervalFeatureRegressor) SetParams(p estimator.Params) error {
	if v, ok := p["n_intervals"]; ok {
		n, ok := v.(int)
		if !ok {
			return kerrors.NewValidationError("n_intervals", "must be an int", v)
		}
		if n < 1 {
			return kerrors.NewValidationError("n_intervals", "must be at least 1", n)
		}
		r.NIntervals = n
	}
	if v, ok := p["random_state"]; ok {
		switch seed := v.(type) {
		case int64:
			r.RandomState = seed
		case int:
			r.RandomState = int64(seed)
		default:
			return kerrors.NewValidationError("random_state", "must be an integer seed", v)
		}
	}
	return nil
}

// Intervals returns the fitted interval bounds as [start, end) pairs.
func (r *IntervalFeatureRegressor) Intervals() [][]float64 {
	v, _ := r.FittedAttr("intervals_")
	iv, _ := v.([][]float64)
	return iv
}

// Coef returns the fitted feature coefficients.
func (r *IntervalFeatureRegressor) Coef() []float64 {
	v, _ := r.FittedAttr("coef_")
	c, _ := v.([]float64)
	return c
}

// Intercept returns the fitted intercept.
func (r *IntervalFeatureRegressor) Intercept() float64 {
	v, _ := r.FittedAttr("intercept_")
	c, _ := v.(float64)
	return c
}

// Fit draws the intervals, extracts interval-mean features and solves the
// least squares problem against y.
func (r *IntervalFeatureRegressor) Fit(X series.Collection, y []float64) error {
	if err := X.Validate(); err != nil {
		return err
	}
	if !X.IsEqualLength() {
		return kerrors.NewValueError("IntervalFeatureRegressor.Fit",
			"requires an equal length collection")
	}
	if len(y) != X.NCases() {
		return kerrors.NewDimensionError("IntervalFeatureRegressor.Fit",
			[]int{X.NCases()}, []int{len(y)})
	}

	n := X.NTimepoints()
	rng := rand.New(rand.NewSource(r.RandomState))
	intervals := drawIntervals(rng, r.NIntervals, n)

	features := intervalFeatures(X, intervals)
	coef, intercept, err := fitLeastSquares(features, y)
	if err != nil {
		return err
	}

	r.SetFittedAttr("intervals_", intervals)
	r.SetFittedAttr("coef_", coef)
	r.SetFittedAttr("intercept_", intercept)
	r.SetFitted()
	return nil
}

// Predict applies the fitted model to X.
func (r *IntervalFeatureRegressor) Predict(X series.Collection) ([]float64, error) {
	if err := r.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := X.Validate(); err != nil {
		return nil, err
	}
	return predictLinear(intervalFeatures(X, r.Intervals()), r.Coef(), r.Intercept())
}

// Score returns the coefficient of determination R² on X, y.
func (r *IntervalFeatureRegressor) Score(X series.Collection, y []float64) (float64, error) {
	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2(y, pred)
}

// drawIntervals samples distinct [start, end) bounds with a minimum width
// of 1, stored as float64 pairs so they round-trip through the attribute
// store. Duplicate draws are rejected so the feature columns stay distinct;
// when the series is too short to yield count distinct intervals the result
// holds fewer.
func drawIntervals(rng *rand.Rand, count, n int) [][]float64 {
	seen := make(map[[2]int]struct{}, count)
	intervals := make([][]float64, 0, count)
	for attempts := 0; len(intervals) < count && attempts < count*16; attempts++ {
		start := rng.Intn(n)
		width := 1
		if n-start > 1 {
			width = 1 + rng.Intn(n-start)
		}
		key := [2]int{start, start + width}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		intervals = append(intervals, []float64{float64(start), float64(start + width)})
	}
	return intervals
}

// intervalFeatures computes the mean of every channel over every interval.
func intervalFeatures(X series.Collection, intervals [][]float64) [][]float64 {
	features := make([][]float64, len(X))
	for i, s := range X {
		rows, cols := s.Dims()
		row := make([]float64, 0, rows*len(intervals))
		for c := 0; c < rows; c++ {
			values := s.RawRowView(c)
			for _, iv := range intervals {
				start, end := int(iv[0]), int(iv[1])
				if end > cols {
					end = cols
				}
				if start >= end {
					row = append(row, 0)
					continue
				}
				sum := 0.0
				for _, v := range values[start:end] {
					sum += v
				}
				row = append(row, sum/float64(end-start))
			}
		}
		features[i] = row
	}
	return features
}
