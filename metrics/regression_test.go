package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE(t *testing.T) {
	testCases := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{"Perfect", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"ConstantOffset", []float64{1, 2, 3}, []float64{2, 3, 4}, 1},
		{"Mixed", []float64{0, 0}, []float64{1, 3}, 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MSE(tc.yTrue, tc.yPred)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{0, 0}, []float64{3, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-9)
}

func TestMAE(t *testing.T) {
	got, err := MAE([]float64{1, 2, 3}, []float64{2, 1, 5})
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3, got, 1e-9)
}

func TestMAPE(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		got, err := MAPE([]float64{10, 20}, []float64{11, 18})
		require.NoError(t, err)
		assert.InDelta(t, 0.1, got, 1e-9)
	})

	t.Run("ZeroTrueValueRejected", func(t *testing.T) {
		_, err := MAPE([]float64{0, 1}, []float64{1, 1})
		assert.Error(t, err)
	})
}

func TestR2(t *testing.T) {
	t.Run("PerfectFit", func(t *testing.T) {
		got, err := R2([]float64{1, 2, 3}, []float64{1, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("MeanPredictorScoresZero", func(t *testing.T) {
		got, err := R2([]float64{1, 2, 3}, []float64{2, 2, 2})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("WorseThanMeanIsNegative", func(t *testing.T) {
		got, err := R2([]float64{1, 2, 3}, []float64{3, 2, 1})
		require.NoError(t, err)
		assert.Less(t, got, 0.0)
	})

	t.Run("ConstantTruthRejected", func(t *testing.T) {
		_, err := R2([]float64{5, 5, 5}, []float64{1, 2, 3})
		assert.Error(t, err)
	})
}

func TestValidation(t *testing.T) {
	_, err := MSE(nil, nil)
	assert.Error(t, err)

	_, err = MAE([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}
