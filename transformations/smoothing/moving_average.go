package smoothing

import (
	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/registry"
	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

func init() {
	registry.MustRegisterEstimator(registry.EstimatorEntry{
		Name:     "MovingAverage",
		Category: registry.CategoryTransformer,
		New: func() estimator.Estimator {
			return NewMovingAverageDefault()
		},
		TestParams: estimator.Params{"window": 3},
	})
}

var _ estimator.Transformer = (*MovingAverage)(nil)

// MovingAverage smooths a series with a trailing window mean. The output has
// the same length as the input: positions before the window fills are the
// mean of the values seen so far.
type MovingAverage struct {
	estimator.BaseEstimator

	// Window is the number of trailing values averaged, at least 1.
	Window int
}

// NewMovingAverage creates the smoother with the given window size.
func NewMovingAverage(window int) *MovingAverage {
	return &MovingAverage{
		BaseEstimator: estimator.NewBase("MovingAverage",
			smootherTags,
			estimator.Tags{"fit_is_empty": true},
		),
		Window: window,
	}
}

// NewMovingAverageDefault creates the smoother with a window of 5.
func NewMovingAverageDefault() *MovingAverage {
	return NewMovingAverage(5)
}

// GetParams returns the hyper-parameters.
func (m *MovingAverage) GetParams() estimator.Params {
	return estimator.Params{"window": m.Window}
}

// SetParams reconfigures the hyper-parameters.
func (m *MovingAverage) SetParams(p estimator.Params) error {
	if v, ok := p["window"]; ok {
		w, ok := v.(int)
		if !ok {
			return kerrors.NewValidationError("window", "must be an int", v)
		}
		if w < 1 {
			return kerrors.NewValidationError("window", "must be at least 1", w)
		}
		m.Window = w
	}
	return nil
}

// Fit validates the input and marks the smoother fitted.
func (m *MovingAverage) Fit(X series.Collection) error {
	if err := X.Validate(); err != nil {
		return err
	}
	if m.Window < 1 {
		return kerrors.NewValidationError("window", "must be at least 1", m.Window)
	}
	m.SetFitted()
	return nil
}

// Transform smooths every series in X, channel by channel.
func (m *MovingAverage) Transform(X series.Collection) (series.Collection, error) {
	if err := m.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := X.Validate(); err != nil {
		return nil, err
	}

	out := X.Clone()
	for _, s := range out {
		rows, cols := s.Dims()
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			copy(row, s.RawRowView(i))
			s.SetRow(i, m.smoothChannel(row))
		}
	}
	return out, nil
}

// FitTransform fits on X and transforms it in one call.
func (m *MovingAverage) FitTransform(X series.Collection) (series.Collection, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// smoothChannel computes the trailing window mean with a running sum.
func (m *MovingAverage) smoothChannel(values []float64) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for t, v := range values {
		sum += v
		if t >= m.Window {
			sum -= values[t-m.Window]
			out[t] = sum / float64(m.Window)
		} else {
			out[t] = sum / float64(t+1)
		}
	}
	return out
}
