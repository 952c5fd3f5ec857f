// Package preprocessing provides collection-level preprocessing estimators.
package preprocessing

import (
	"math"

	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/registry"
	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

func init() {
	registry.MustRegisterEstimator(registry.EstimatorEntry{
		Name:     "SeriesScaler",
		Category: registry.CategoryTransformer,
		New: func() estimator.Estimator {
			return NewSeriesScalerDefault()
		},
		TestParams: []estimator.Params{
			{"with_mean": true, "with_std": true},
			{"with_mean": true, "with_std": false},
		},
	})
}

var _ estimator.Transformer = (*SeriesScaler)(nil)

// SeriesScaler standardizes every channel to zero mean and unit variance,
// with statistics pooled over all cases and timepoints during Fit.
type SeriesScaler struct {
	estimator.BaseEstimator

	// WithMean controls whether the channel mean is subtracted.
	WithMean bool

	// WithStd controls whether values are divided by the channel standard
	// deviation.
	WithStd bool
}

// NewSeriesScaler creates a scaler with explicit centering and scaling
// behavior.
func NewSeriesScaler(withMean, withStd bool) *SeriesScaler {
	return &SeriesScaler{
		BaseEstimator: estimator.NewBase("SeriesScaler",
			estimator.Tags{
				"algorithm_type":            "preprocessing",
				"capability:multivariate":   true,
				"capability:unequal_length": true,
				"X_inner_type":              string(series.DataTypeDense),
			},
		),
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewSeriesScalerDefault creates a scaler that both centers and scales.
func NewSeriesScalerDefault() *SeriesScaler {
	return NewSeriesScaler(true, true)
}

// GetParams returns the hyper-parameters.
func (s *SeriesScaler) GetParams() estimator.Params {
	return estimator.Params{"with_mean": s.WithMean, "with_std": s.WithStd}
}

// SetParams reconfigures the hyper-parameters.
func (s *SeriesScaler) SetParams(p estimator.Params) error {
	if v, ok := p["with_mean"]; ok {
		b, ok := v.(bool)
		if !ok {
			return kerrors.NewValidationError("with_mean", "must be a bool", v)
		}
		s.WithMean = b
	}
	if v, ok := p["with_std"]; ok {
		b, ok := v.(bool)
		if !ok {
			return kerrors.NewValidationError("with_std", "must be a bool", v)
		}
		s.WithStd = b
	}
	return nil
}

// Mean returns the fitted per-channel means.
func (s *SeriesScaler) Mean() []float64 {
	v, _ := s.FittedAttr("mean_")
	m, _ := v.([]float64)
	return m
}

// Scale returns the fitted per-channel standard deviations.
func (s *SeriesScaler) Scale() []float64 {
	v, _ := s.FittedAttr("scale_")
	m, _ := v.([]float64)
	return m
}

// Fit pools per-channel statistics over every case and timepoint in X.
func (s *SeriesScaler) Fit(X series.Collection) error {
	if err := X.Validate(); err != nil {
		return err
	}
	if !X.IsEqualLength() {
		minLen, maxLen := X.LengthRange()
		kerrors.Warn(kerrors.NewUnequalLengthWarning("SeriesScaler.Fit", minLen, maxLen))
	}

	channels := X.NChannels()
	mean := make([]float64, channels)
	scale := make([]float64, channels)
	count := make([]float64, channels)

	for _, c := range X {
		rows, cols := c.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				mean[i] += c.At(i, j)
			}
			count[i] += float64(cols)
		}
	}
	for i := range mean {
		mean[i] /= count[i]
	}

	for _, c := range X {
		rows, cols := c.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				diff := c.At(i, j) - mean[i]
				scale[i] += diff * diff
			}
		}
	}
	for i := range scale {
		scale[i] = math.Sqrt(scale[i] / count[i])
		// Guard against zero division on constant channels.
		if scale[i] < 1e-8 {
			scale[i] = 1.0
		}
	}

	if !s.WithMean {
		for i := range mean {
			mean[i] = 0
		}
	}
	if !s.WithStd {
		for i := range scale {
			scale[i] = 1
		}
	}

	s.SetFittedAttr("mean_", mean)
	s.SetFittedAttr("scale_", scale)
	s.SetFittedAttr("n_channels_", channels)
	s.SetFitted()
	return nil
}

// Transform standardizes X with the fitted statistics.
func (s *SeriesScaler) Transform(X series.Collection) (series.Collection, error) {
	if err := s.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := X.Validate(); err != nil {
		return nil, err
	}

	mean, scale := s.Mean(), s.Scale()
	if X.NChannels() != len(mean) {
		return nil, kerrors.NewDimensionError("SeriesScaler.Transform",
			[]int{len(mean)}, []int{X.NChannels()})
	}

	out := X.Clone()
	for _, c := range out {
		rows, cols := c.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				c.Set(i, j, (c.At(i, j)-mean[i])/scale[i])
			}
		}
	}
	return out, nil
}

// FitTransform fits on X and transforms it in one call.
func (s *SeriesScaler) FitTransform(X series.Collection) (series.Collection, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
