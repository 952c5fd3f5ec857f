package evaluation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairoslib/kairos/regression"
	"github.com/kairoslib/kairos/series"
)

func splitData(n int) (series.Collection, []float64) {
	// Deterministic pseudo-random values keep the feature matrix well
	// conditioned without seeding math/rand globally.
	state := uint64(88172645463325252)
	next := func() float64 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		return float64(state%1000) / 100
	}

	rows := make([][]float64, n)
	y := make([]float64, n)
	for i := range rows {
		rows[i] = []float64{next(), next(), next(), next(), next(), next()}
		sum := 0.0
		for _, v := range rows[i] {
			sum += v
		}
		y[i] = sum / float64(len(rows[i]))
	}
	return series.NewCollectionFrom2D(rows), y
}

func TestTrainTestSplit(t *testing.T) {
	t.Run("SizesAndAlignment", func(t *testing.T) {
		X, y := splitData(10)
		XTrain, XTest, yTrain, yTest, err := TrainTestSplit(X, y, 0.3, 1)
		require.NoError(t, err)

		assert.Len(t, XTest, 3)
		assert.Len(t, XTrain, 7)
		assert.Len(t, yTest, 3)
		assert.Len(t, yTrain, 7)
	})

	t.Run("DeterministicForSeed", func(t *testing.T) {
		X, y := splitData(12)
		_, XTest1, _, yTest1, err := TrainTestSplit(X, y, 0.25, 42)
		require.NoError(t, err)
		_, XTest2, _, yTest2, err := TrainTestSplit(X, y, 0.25, 42)
		require.NoError(t, err)

		assert.Equal(t, yTest1, yTest2)
		require.Len(t, XTest2, len(XTest1))
		for i := range XTest1 {
			assert.Same(t, XTest1[i], XTest2[i])
		}
	})

	t.Run("AtLeastOneCaseEachSide", func(t *testing.T) {
		X, y := splitData(2)
		XTrain, XTest, _, _, err := TrainTestSplit(X, y, 0.01, 1)
		require.NoError(t, err)
		assert.Len(t, XTrain, 1)
		assert.Len(t, XTest, 1)
	})

	t.Run("InvalidInputs", func(t *testing.T) {
		X, y := splitData(4)
		_, _, _, _, err := TrainTestSplit(X, y, 1.5, 1)
		assert.Error(t, err)
		_, _, _, _, err = TrainTestSplit(X, y[:2], 0.5, 1)
		assert.Error(t, err)
		_, _, _, _, err = TrainTestSplit(X[:1], y[:1], 0.5, 1)
		assert.Error(t, err)
	})
}

func TestCrossValidate(t *testing.T) {
	t.Run("FoldCountAndOrdering", func(t *testing.T) {
		X, y := splitData(20)
		blueprint := regression.NewSummaryRegressor()

		results, err := CrossValidate(context.Background(), blueprint, X, y, 4, 7)
		require.NoError(t, err)

		require.Len(t, results, 4)
		for f, r := range results {
			assert.Equal(t, f, r.Fold)
		}
		// The blueprint is cloned per fold, never fitted itself.
		assert.False(t, blueprint.IsFitted())
	})

	t.Run("DeterministicForSeed", func(t *testing.T) {
		X, y := splitData(16)
		blueprint := regression.NewSummaryRegressor()

		r1, err := CrossValidate(context.Background(), blueprint, X, y, 4, 3)
		require.NoError(t, err)
		r2, err := CrossValidate(context.Background(), blueprint, X, y, 4, 3)
		require.NoError(t, err)
		assert.Equal(t, r1, r2)
	})

	t.Run("InvalidInputs", func(t *testing.T) {
		X, y := splitData(6)
		_, err := CrossValidate(context.Background(), regression.NewSummaryRegressor(), X, y, 1, 1)
		assert.Error(t, err)
		_, err = CrossValidate(context.Background(), regression.NewSummaryRegressor(), X, y, 8, 1)
		assert.Error(t, err)
	})
}

func TestMeanScore(t *testing.T) {
	assert.Equal(t, 0.0, MeanScore(nil))
	got := MeanScore([]FoldResult{{Fold: 0, Score: 0.5}, {Fold: 1, Score: 1.0}})
	assert.InDelta(t, 0.75, got, 1e-9)
}

func TestFoldBounds(t *testing.T) {
	bounds := foldBounds(10, 3)
	assert.Equal(t, [][2]int{{0, 4}, {4, 7}, {7, 10}}, bounds)

	bounds = foldBounds(9, 3)
	assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 9}}, bounds)
}
