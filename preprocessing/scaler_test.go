package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

func TestSeriesScalerFitTransform(t *testing.T) {
	t.Run("StandardizesPooledStatistics", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{
			{1, 2, 3},
			{4, 5, 6},
		})
		s := NewSeriesScalerDefault()

		Xt, err := s.FitTransform(X)
		require.NoError(t, err)

		// Pooled mean over all six values is 3.5.
		assert.InDelta(t, 3.5, s.Mean()[0], 1e-9)

		var sum, sumSq float64
		for _, c := range Xt {
			_, cols := c.Dims()
			for j := 0; j < cols; j++ {
				sum += c.At(0, j)
				sumSq += c.At(0, j) * c.At(0, j)
			}
		}
		assert.InDelta(t, 0.0, sum/6, 1e-9)
		assert.InDelta(t, 1.0, sumSq/6, 1e-9)
	})

	t.Run("ConstantChannelUnchangedByScaling", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{{5, 5, 5, 5}})
		s := NewSeriesScalerDefault()

		Xt, err := s.FitTransform(X)
		require.NoError(t, err)
		// Centered to zero, scale guard leaves the values finite.
		for j := 0; j < 4; j++ {
			assert.InDelta(t, 0.0, Xt[0].At(0, j), 1e-9)
		}
	})

	t.Run("WithMeanOnly", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{{1, 3}})
		s := NewSeriesScaler(true, false)

		Xt, err := s.FitTransform(X)
		require.NoError(t, err)
		assert.InDelta(t, -1.0, Xt[0].At(0, 0), 1e-9)
		assert.InDelta(t, 1.0, Xt[0].At(0, 1), 1e-9)
	})

	t.Run("PerChannelStatistics", func(t *testing.T) {
		s2 := mat.NewDense(2, 2, []float64{
			1, 3,
			10, 30,
		})
		s := NewSeriesScalerDefault()
		require.NoError(t, s.Fit(series.Collection{s2}))

		assert.InDelta(t, 2.0, s.Mean()[0], 1e-9)
		assert.InDelta(t, 20.0, s.Mean()[1], 1e-9)
	})

	t.Run("RaggedInputWarns", func(t *testing.T) {
		var warned error
		kerrors.SetWarningHandler(func(w error) { warned = w })
		defer kerrors.SetWarningHandler(nil)

		X := series.Collection{
			series.NewUnivariate([]float64{1, 2}),
			series.NewUnivariate([]float64{1, 2, 3, 4}),
		}
		s := NewSeriesScalerDefault()
		require.NoError(t, s.Fit(X))

		require.Error(t, warned)
		var ulw *kerrors.UnequalLengthWarning
		assert.True(t, kerrors.As(warned, &ulw))
	})

	t.Run("ChannelMismatchOnTransform", func(t *testing.T) {
		s := NewSeriesScalerDefault()
		require.NoError(t, s.Fit(series.Collection{mat.NewDense(2, 3, nil)}))

		_, err := s.Transform(series.Collection{mat.NewDense(3, 3, nil)})
		require.Error(t, err)
		var dimErr *kerrors.DimensionError
		assert.True(t, kerrors.As(err, &dimErr))
	})

	t.Run("NotFittedGuard", func(t *testing.T) {
		s := NewSeriesScalerDefault()
		_, err := s.Transform(series.NewCollectionFrom2D([][]float64{{1}}))
		require.Error(t, err)
		var nfErr *kerrors.NotFittedError
		assert.True(t, kerrors.As(err, &nfErr))
	})
}
