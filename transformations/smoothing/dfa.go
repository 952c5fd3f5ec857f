// Package smoothing provides series-to-series smoothing filters.
package smoothing

import (
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/registry"
	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// smootherTags is the category tag layer shared by smoothing transformers.
var smootherTags = estimator.Tags{
	"algorithm_type":            "smoothing",
	"capability:multivariate":   true,
	"capability:unequal_length": true,
	"X_inner_type":              string(series.DataTypeDense),
}

func init() {
	registry.MustRegisterEstimator(registry.EstimatorEntry{
		Name:     "DiscreteFourierApproximation",
		Category: registry.CategoryTransformer,
		New: func() estimator.Estimator {
			return NewDiscreteFourierApproximationDefault()
		},
		TestParams: []estimator.Params{
			{"r": 0.5, "sort": false},
			{"r": 0.25, "sort": true},
		},
	})
}

var _ estimator.Transformer = (*DiscreteFourierApproximation)(nil)

// DiscreteFourierApproximation smooths a series by transforming it into the
// frequency domain, discarding high-frequency terms, and transforming back.
type DiscreteFourierApproximation struct {
	estimator.BaseEstimator

	// R is the proportion of Fourier terms to retain, in [0, 1].
	R float64

	// Sort keeps the terms with the largest amplitude instead of the
	// lowest-frequency terms.
	Sort bool
}

// NewDiscreteFourierApproximation creates the filter with the given term
// proportion and sorting behavior.
func NewDiscreteFourierApproximation(r float64, sortTerms bool) *DiscreteFourierApproximation {
	return &DiscreteFourierApproximation{
		BaseEstimator: estimator.NewBase("DiscreteFourierApproximation",
			smootherTags,
			estimator.Tags{"fit_is_empty": true},
		),
		R:    r,
		Sort: sortTerms,
	}
}

// NewDiscreteFourierApproximationDefault creates the filter with r=0.5 and
// sorting disabled.
func NewDiscreteFourierApproximationDefault() *DiscreteFourierApproximation {
	return NewDiscreteFourierApproximation(0.5, false)
}

// GetParams returns the hyper-parameters.
func (d *DiscreteFourierApproximation) GetParams() estimator.Params {
	return estimator.Params{"r": d.R, "sort": d.Sort}
}

// SetParams reconfigures the hyper-parameters.
func (d *DiscreteFourierApproximation) SetParams(p estimator.Params) error {
	if v, ok := p["r"]; ok {
		r, ok := v.(float64)
		if !ok {
			return kerrors.NewValidationError("r", "must be a float64", v)
		}
		if r < 0 || r > 1 {
			return kerrors.NewValidationError("r", "must be in [0, 1]", r)
		}
		d.R = r
	}
	if v, ok := p["sort"]; ok {
		s, ok := v.(bool)
		if !ok {
			return kerrors.NewValidationError("sort", "must be a bool", v)
		}
		d.Sort = s
	}
	return nil
}

// Fit validates the input and marks the filter fitted. The filter learns
// nothing from data ("fit_is_empty").
func (d *DiscreteFourierApproximation) Fit(X series.Collection) error {
	if err := X.Validate(); err != nil {
		return err
	}
	d.SetFitted()
	return nil
}

// Transform filters every series in X, channel by channel.
func (d *DiscreteFourierApproximation) Transform(X series.Collection) (series.Collection, error) {
	if err := d.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := X.Validate(); err != nil {
		return nil, err
	}

	out := X.Clone()
	for _, s := range out {
		rows, cols := s.Dims()
		fft := fourier.NewCmplxFFT(cols)
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			copy(row, s.RawRowView(i))
			s.SetRow(i, d.filterChannel(fft, row))
		}
	}
	return out, nil
}

// FitTransform fits on X and transforms it in one call.
func (d *DiscreteFourierApproximation) FitTransform(X series.Collection) (series.Collection, error) {
	if err := d.Fit(X); err != nil {
		return nil, err
	}
	return d.Transform(X)
}

// filterChannel masks the two-sided frequency spectrum of one channel and
// returns the reconstructed values. The proportion r counts over all n
// terms, negative frequencies included, so a pair whose conjugate falls
// outside the mask comes back at half amplitude.
func (d *DiscreteFourierApproximation) filterChannel(fft *fourier.CmplxFFT, values []float64) []float64 {
	n := len(values)
	seq := make([]complex128, n)
	for i, v := range values {
		seq[i] = complex(v, 0)
	}
	coeff := fft.Coefficients(nil, seq)

	keep := int(d.R * float64(n))
	if keep < 1 {
		keep = 1
	}
	if keep > n {
		keep = n
	}

	masked := make([]complex128, n)
	if d.Sort {
		// Keep the terms with the largest amplitude.
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		amp := make([]float64, n)
		for i, c := range coeff {
			amp[i] = cmplx.Abs(c)
		}
		sort.Slice(idx, func(a, b int) bool { return amp[idx[a]] > amp[idx[b]] })
		for _, i := range idx[:keep] {
			masked[i] = coeff[i]
		}
	} else {
		copy(masked[:keep], coeff[:keep])
	}

	// The inverse transform is unnormalized: scale by 1/n. An asymmetric
	// mask leaves an imaginary residue, which is discarded.
	out := fft.Sequence(nil, masked)
	res := make([]float64, n)
	for i, c := range out {
		res[i] = real(c) / float64(n)
	}
	return res
}
