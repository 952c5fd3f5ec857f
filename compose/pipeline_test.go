package compose

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/regression"
	"github.com/kairoslib/kairos/series"
	"github.com/kairoslib/kairos/transformations/smoothing"
)

func pipelineData() (series.Collection, []float64) {
	rows := [][]float64{
		{1, 2, 3, 4, 5, 6},
		{2, 4, 6, 8, 10, 12},
		{1, 3, 5, 7, 9, 11},
		{4, 5, 6, 7, 8, 9},
		{0, 2, 0, 2, 0, 2},
		{6, 6, 7, 7, 8, 8},
		{9, 7, 5, 3, 1, 0},
		{2, 3, 5, 8, 12, 17},
	}
	X := series.NewCollectionFrom2D(rows)
	y := make([]float64, len(rows))
	for i, row := range rows {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		y[i] = sum / float64(len(row))
	}
	return X, y
}

func TestPipelineFit(t *testing.T) {
	t.Run("BlueprintsStayUnfitted", func(t *testing.T) {
		X, y := pipelineData()
		smoother := smoothing.NewMovingAverage(3)
		reg := regression.NewSummaryRegressor()
		p := NewPipeline(smoother, reg)

		require.NoError(t, p.Fit(X, y))

		assert.True(t, p.IsFitted())
		assert.False(t, smoother.IsFitted())
		assert.False(t, reg.IsFitted())
	})

	t.Run("FittedComponentsExposed", func(t *testing.T) {
		X, y := pipelineData()
		p := NewPipeline(smoothing.NewMovingAverage(3), regression.NewSummaryRegressor())
		require.NoError(t, p.Fit(X, y))

		comps := p.Components()
		require.Len(t, comps, 2)
		assert.Contains(t, comps, "smoother_")
		assert.Contains(t, comps, "regressor_")
		for name, c := range comps {
			assert.True(t, c.IsFitted(), "component %s", name)
		}
	})

	t.Run("IsComposite", func(t *testing.T) {
		p := NewPipeline(smoothing.NewMovingAverageDefault(), regression.NewSummaryRegressor())
		assert.True(t, estimator.IsComposite(p))
	})
}

func TestPipelinePredict(t *testing.T) {
	t.Run("MatchesManualChaining", func(t *testing.T) {
		X, y := pipelineData()
		p := NewPipeline(smoothing.NewMovingAverage(3), regression.NewSummaryRegressor())
		require.NoError(t, p.Fit(X, y))

		got, err := p.Predict(X)
		require.NoError(t, err)

		// Chain the steps by hand.
		sm := smoothing.NewMovingAverage(3)
		Xt, err := sm.FitTransform(X)
		require.NoError(t, err)
		reg := regression.NewSummaryRegressor()
		require.NoError(t, reg.Fit(Xt, y))
		want, err := reg.Predict(Xt)
		require.NoError(t, err)

		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-9, "case %d", i)
		}
	})

	t.Run("PredictBeforeFitFails", func(t *testing.T) {
		p := NewPipeline(smoothing.NewMovingAverageDefault(), regression.NewSummaryRegressor())
		_, err := p.Predict(series.NewCollectionFrom2D([][]float64{{1, 2, 3}}))
		require.Error(t, err)
	})
}

func TestPipelineFittedParams(t *testing.T) {
	X, y := pipelineData()
	p := NewPipeline(smoothing.NewMovingAverage(3), regression.NewSummaryRegressor())
	require.NoError(t, p.Fit(X, y))

	shallow, err := p.GetFittedParams(false)
	require.NoError(t, err)
	deep, err := p.GetFittedParams(true)
	require.NoError(t, err)

	for k := range shallow {
		assert.Contains(t, deep, k)
	}
	assert.Contains(t, deep, "regressor__coef")
	assert.Contains(t, deep, "regressor__intercept")
}

func TestPipelineCloneAndPersistence(t *testing.T) {
	t.Run("CloneCarriesBlueprintParams", func(t *testing.T) {
		p := NewPipeline(smoothing.NewMovingAverage(4), regression.NewSummaryRegressor())

		c, err := estimator.Clone(p)
		require.NoError(t, err)

		clone := c.(*Pipeline)
		assert.False(t, clone.IsFitted())
		assert.Equal(t, 4, clone.Smoother.(*smoothing.MovingAverage).Window)
	})

	t.Run("SaveLoadRoundTrip", func(t *testing.T) {
		X, y := pipelineData()
		p := NewPipeline(smoothing.NewMovingAverage(3), regression.NewSummaryRegressor())
		require.NoError(t, p.Fit(X, y))

		want, err := p.Predict(X)
		require.NoError(t, err)

		path, err := estimator.SaveToPath(p, filepath.Join(t.TempDir(), "pipe"))
		require.NoError(t, err)
		loaded, err := estimator.LoadFromPath(path)
		require.NoError(t, err)

		got, err := loaded.(estimator.Regressor).Predict(X)
		require.NoError(t, err)
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-9)
		}
	})
}

func TestPipelineSetParams(t *testing.T) {
	p := NewPipeline(smoothing.NewMovingAverageDefault(), regression.NewSummaryRegressor())

	dfa := smoothing.NewDiscreteFourierApproximationDefault()
	require.NoError(t, p.SetParams(map[string]any{"smoother": dfa}))
	assert.Equal(t, "DiscreteFourierApproximation", p.Smoother.EstimatorName())

	assert.Error(t, p.SetParams(map[string]any{"smoother": 42}))
	assert.Error(t, p.SetParams(map[string]any{"regressor": "summary"}))
}
