package estimator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kairoslib/kairos/series"
)

// Transformer is the contract for series-to-series transformations.
type Transformer interface {
	Estimator

	// Fit learns any transformation parameters from X. Transformers whose
	// "fit_is_empty" tag is true only mark themselves fitted.
	Fit(X series.Collection) error

	// Transform returns a transformed copy of X.
	Transform(X series.Collection) (series.Collection, error)

	// FitTransform fits on X and transforms it in one call.
	FitTransform(X series.Collection) (series.Collection, error)
}

// Regressor is the contract for collection-to-scalar regression estimators.
type Regressor interface {
	Estimator

	Fit(X series.Collection, y []float64) error
	Predict(X series.Collection) ([]float64, error)

	// Score returns the coefficient of determination R² on X, y.
	Score(X series.Collection, y []float64) (float64, error)
}

// Classifier is the contract for collection classification estimators.
type Classifier interface {
	Estimator

	Fit(X series.Collection, y []int) error
	Predict(X series.Collection) ([]int, error)

	// PredictProba returns per-class probability estimates, shaped
	// (n_cases, n_classes).
	PredictProba(X series.Collection) (*mat.Dense, error)

	// Classes returns the class labels seen during fitting.
	Classes() []int
}

// Clusterer is the contract for collection clustering estimators.
type Clusterer interface {
	Estimator

	Fit(X series.Collection) error
	PredictCluster(X series.Collection) ([]int, error)
	NClusters() int
}
