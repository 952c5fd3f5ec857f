// Package compose provides estimators built from other estimators.
package compose

import (
	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/registry"
	"github.com/kairoslib/kairos/regression"
	"github.com/kairoslib/kairos/series"
	"github.com/kairoslib/kairos/transformations/smoothing"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

func init() {
	registry.MustRegisterEstimator(registry.EstimatorEntry{
		Name:     "Pipeline",
		Category: registry.CategoryComposite,
		New: func() estimator.Estimator {
			return NewPipeline(
				smoothing.NewMovingAverageDefault(),
				regression.NewSummaryRegressor(),
			)
		},
	})
}

var _ estimator.Regressor = (*Pipeline)(nil)

// Pipeline chains a series transformer and a regressor. The transformer and
// regressor passed at construction are blueprints: Fit clones them, fits the
// clones and keeps the fitted clones as owned components, leaving the
// blueprints untouched.
type Pipeline struct {
	estimator.BaseEstimator

	// Smoother is the transformation blueprint applied before regression.
	Smoother estimator.Transformer

	// Regressor is the regression blueprint fitted on transformed data.
	Regressor estimator.Regressor
}

// NewPipeline creates a pipeline from a transformer and regressor blueprint.
func NewPipeline(smoother estimator.Transformer, regressor estimator.Regressor) *Pipeline {
	return &Pipeline{
		BaseEstimator: estimator.NewBase("Pipeline",
			estimator.Tags{
				"algorithm_type":          "composite",
				"capability:multivariate": true,
			},
		),
		Smoother:  smoother,
		Regressor: regressor,
	}
}

// GetParams returns the blueprint estimators as hyper-parameters. The
// returned values are the blueprints themselves, so a pipeline is always a
// composite estimator.
func (p *Pipeline) GetParams() estimator.Params {
	return estimator.Params{
		"smoother":  p.Smoother,
		"regressor": p.Regressor,
	}
}

// SetParams reconfigures the blueprints.
func (p *Pipeline) SetParams(params estimator.Params) error {
	if v, ok := params["smoother"]; ok {
		t, ok := v.(estimator.Transformer)
		if !ok {
			return kerrors.NewValidationError("smoother", "must be a Transformer", v)
		}
		p.Smoother = t
	}
	if v, ok := params["regressor"]; ok {
		r, ok := v.(estimator.Regressor)
		if !ok {
			return kerrors.NewValidationError("regressor", "must be a Regressor", v)
		}
		p.Regressor = r
	}
	return nil
}

// Fit clones the blueprints, fits the transformer, transforms X and fits
// the regressor on the result.
func (p *Pipeline) Fit(X series.Collection, y []float64) error {
	if p.Smoother == nil || p.Regressor == nil {
		return kerrors.NewValueError("Pipeline.Fit", "smoother and regressor must be set")
	}

	sc, err := estimator.Clone(p.Smoother)
	if err != nil {
		return err
	}
	smoother := sc.(estimator.Transformer)

	rc, err := estimator.Clone(p.Regressor)
	if err != nil {
		return err
	}
	regressor := rc.(estimator.Regressor)

	Xt, err := smoother.FitTransform(X)
	if err != nil {
		return err
	}
	if err := regressor.Fit(Xt, y); err != nil {
		return err
	}

	p.SetComponent("smoother_", smoother)
	p.SetComponent("regressor_", regressor)
	p.SetFitted()
	return nil
}

// Predict transforms X with the fitted transformer and predicts with the
// fitted regressor.
func (p *Pipeline) Predict(X series.Collection) ([]float64, error) {
	smoother, regressor, err := p.fittedSteps()
	if err != nil {
		return nil, err
	}
	Xt, err := smoother.Transform(X)
	if err != nil {
		return nil, err
	}
	return regressor.Predict(Xt)
}

// Score returns the coefficient of determination R² on X, y.
func (p *Pipeline) Score(X series.Collection, y []float64) (float64, error) {
	smoother, regressor, err := p.fittedSteps()
	if err != nil {
		return 0, err
	}
	Xt, err := smoother.Transform(X)
	if err != nil {
		return 0, err
	}
	return regressor.Score(Xt, y)
}

// fittedSteps returns the owned fitted components.
func (p *Pipeline) fittedSteps() (estimator.Transformer, estimator.Regressor, error) {
	if err := p.CheckIsFitted(); err != nil {
		return nil, nil, err
	}
	sv, _ := p.FittedAttr("smoother_")
	rv, _ := p.FittedAttr("regressor_")
	smoother, sok := sv.(estimator.Transformer)
	regressor, rok := rv.(estimator.Regressor)
	if !sok || !rok {
		return nil, nil, kerrors.NewValueError("Pipeline", "fitted components missing from state")
	}
	return smoother, regressor, nil
}
