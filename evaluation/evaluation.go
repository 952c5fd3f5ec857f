// Package evaluation provides dataset splitting and cross-validated scoring
// for regressors.
package evaluation

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// TrainTestSplit shuffles the cases with the given seed and splits them into
// a train and test portion. testSize is the fraction of cases assigned to the
// test set; at least one case lands on each side.
func TrainTestSplit(X series.Collection, y []float64, testSize float64, seed int64) (
	XTrain, XTest series.Collection, yTrain, yTest []float64, err error,
) {
	if len(X) != len(y) {
		return nil, nil, nil, nil, kerrors.NewValueError("TrainTestSplit", "X and y must have the same number of cases")
	}
	if len(X) < 2 {
		return nil, nil, nil, nil, kerrors.NewValueError("TrainTestSplit", "need at least two cases to split")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, kerrors.NewValidationError("test_size", "must be in (0, 1)", testSize)
	}

	n := len(X)
	nTest := int(float64(n) * testSize)
	if nTest < 1 {
		nTest = 1
	}
	if nTest >= n {
		nTest = n - 1
	}

	idx := rand.New(rand.NewSource(seed)).Perm(n)

	XTest = make(series.Collection, 0, nTest)
	yTest = make([]float64, 0, nTest)
	XTrain = make(series.Collection, 0, n-nTest)
	yTrain = make([]float64, 0, n-nTest)
	for i, j := range idx {
		if i < nTest {
			XTest = append(XTest, X[j])
			yTest = append(yTest, y[j])
		} else {
			XTrain = append(XTrain, X[j])
			yTrain = append(yTrain, y[j])
		}
	}
	return XTrain, XTest, yTrain, yTest, nil
}

// FoldResult holds the outcome of one cross-validation fold.
type FoldResult struct {
	Fold  int
	Score float64
}

// CrossValidate runs k-fold cross-validation of a regressor blueprint. For
// each fold the blueprint is cloned, the clone fitted on the training portion
// and scored (R²) on the held-out portion. Folds run concurrently; the
// blueprint itself is never fitted. Results are ordered by fold index.
func CrossValidate(ctx context.Context, blueprint estimator.Regressor, X series.Collection, y []float64, k int, seed int64) ([]FoldResult, error) {
	if len(X) != len(y) {
		return nil, kerrors.NewValueError("CrossValidate", "X and y must have the same number of cases")
	}
	if k < 2 {
		return nil, kerrors.NewValidationError("k", "must be at least 2", k)
	}
	if len(X) < k {
		return nil, kerrors.NewValueError("CrossValidate", "cannot split fewer cases than folds")
	}

	idx := rand.New(rand.NewSource(seed)).Perm(len(X))
	folds := foldBounds(len(X), k)
	results := make([]FoldResult, k)

	g, ctx := errgroup.WithContext(ctx)
	for f := 0; f < k; f++ {
		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lo, hi := folds[f][0], folds[f][1]

			XTrain := make(series.Collection, 0, len(X)-(hi-lo))
			yTrain := make([]float64, 0, len(y)-(hi-lo))
			XTest := make(series.Collection, 0, hi-lo)
			yTest := make([]float64, 0, hi-lo)
			for i, j := range idx {
				if i >= lo && i < hi {
					XTest = append(XTest, X[j])
					yTest = append(yTest, y[j])
				} else {
					XTrain = append(XTrain, X[j])
					yTrain = append(yTrain, y[j])
				}
			}

			c, err := estimator.Clone(blueprint)
			if err != nil {
				return err
			}
			reg := c.(estimator.Regressor)
			if err := reg.Fit(XTrain, yTrain); err != nil {
				return err
			}
			score, err := reg.Score(XTest, yTest)
			if err != nil {
				return err
			}
			results[f] = FoldResult{Fold: f, Score: score}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MeanScore averages fold scores.
func MeanScore(results []FoldResult) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range results {
		sum += r.Score
	}
	return sum / float64(len(results))
}

// foldBounds splits n cases into k contiguous [lo, hi) ranges whose sizes
// differ by at most one.
func foldBounds(n, k int) [][2]int {
	bounds := make([][2]int, k)
	base, rem := n/k, n%k
	lo := 0
	for f := 0; f < k; f++ {
		size := base
		if f < rem {
			size++
		}
		bounds[f] = [2]int{lo, lo + size}
		lo += size
	}
	return bounds
}
