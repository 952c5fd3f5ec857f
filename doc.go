// Package kairos provides a time series machine learning library for Go,
// covering smoothing transformations, feature-based regression and the
// estimator lifecycle that ties them together.
//
// Every estimator in kairos follows the same lifecycle: construct with
// hyper-parameters, Fit on a collection of series, inspect fitted state
// through GetFittedParams, Reset or Clone to reuse, and Save to a single
// archive file for later loading.
//
// # Installation
//
// Install kairos using go get:
//
//	go get github.com/kairoslib/kairos
//
// # Quick Start
//
// Smoothing and regression over a collection of series:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/kairoslib/kairos/compose"
//	    "github.com/kairoslib/kairos/regression"
//	    "github.com/kairoslib/kairos/series"
//	    "github.com/kairoslib/kairos/transformations/smoothing"
//	)
//
//	func main() {
//	    X := series.NewCollectionFrom2D([][]float64{
//	        {1, 2, 3, 4, 5},
//	        {2, 4, 6, 8, 10},
//	        {3, 6, 9, 12, 15},
//	    })
//	    y := []float64{3, 6, 9}
//
//	    model := compose.NewPipeline(
//	        smoothing.NewMovingAverage(3),
//	        regression.NewSummaryRegressor(),
//	    )
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    preds, err := model.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(preds)
//	}
//
// # Packages
//
//   - core/estimator: lifecycle shared by every estimator (tags, params,
//     reset, clone, fitted state, persistence)
//   - series: the collection data model and its validation
//   - transformations/smoothing: series-to-series smoothers
//   - preprocessing: channel-wise scaling
//   - regression: feature-based regressors
//   - compose: pipelines built from other estimators
//   - evaluation: train/test splitting and cross-validation
//   - registry: estimator lookup by name and tag introspection
//   - visualization: plots of series and predictions
package kairos
