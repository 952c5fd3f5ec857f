package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kairoslib/kairos/series"
)

func TestMovingAverageTransform(t *testing.T) {
	t.Run("TrailingWindowMean", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{{1, 2, 3, 4, 5, 6}})
		m := NewMovingAverage(3)

		Xt, err := m.FitTransform(X)
		require.NoError(t, err)

		want := []float64{1, 1.5, 2, 3, 4, 5}
		for j, w := range want {
			assert.InDelta(t, w, Xt[0].At(0, j), 1e-9, "position %d", j)
		}
	})

	t.Run("WindowOneIsIdentity", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{{4, 1, 7, 2}})
		m := NewMovingAverage(1)

		Xt, err := m.FitTransform(X)
		require.NoError(t, err)
		for j := 0; j < 4; j++ {
			assert.Equal(t, X[0].At(0, j), Xt[0].At(0, j))
		}
	})

	t.Run("MultichannelSmoothedPerChannel", func(t *testing.T) {
		s := mat.NewDense(2, 4, []float64{
			1, 2, 3, 4,
			10, 20, 30, 40,
		})
		m := NewMovingAverage(2)

		Xt, err := m.FitTransform(series.Collection{s})
		require.NoError(t, err)

		assert.InDelta(t, 2.5, Xt[0].At(0, 2), 1e-9)
		assert.InDelta(t, 25.0, Xt[0].At(1, 2), 1e-9)
	})

	t.Run("WindowLongerThanSeries", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{{2, 4}})
		m := NewMovingAverage(10)

		Xt, err := m.FitTransform(X)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, Xt[0].At(0, 0), 1e-9)
		assert.InDelta(t, 3.0, Xt[0].At(0, 1), 1e-9)
	})
}

func TestMovingAverageParams(t *testing.T) {
	m := NewMovingAverageDefault()
	assert.Equal(t, 5, m.Window)

	require.NoError(t, m.SetParams(map[string]any{"window": 7}))
	assert.Equal(t, 7, m.Window)

	assert.Error(t, m.SetParams(map[string]any{"window": 0}))
	assert.Error(t, m.SetParams(map[string]any{"window": "three"}))
}
