// Package series defines the time-series data model used across kairos.
//
// A single series is a gonum *mat.Dense shaped (n_channels, n_timepoints).
// A Collection is a slice of series, one per case. Collections may be ragged:
// cases can have different numbers of timepoints, but every case must have
// the same number of channels.
package series

import (
	"encoding/gob"

	"gonum.org/v1/gonum/mat"

	"github.com/kairoslib/kairos/pkg/errors"
)

func init() {
	// Series values travel inside estimator attribute stores, which are
	// gob-encoded as interface values during save/load.
	gob.Register(&mat.Dense{})
	gob.Register(Collection{})
}

// Series is a single time series shaped (n_channels, n_timepoints).
type Series = *mat.Dense

// Collection is an ordered set of series, one per case.
type Collection []Series

// DataType identifies the internal layout of a collection.
type DataType string

const (
	// DataTypeDense marks a collection where every case has the same number
	// of timepoints.
	DataTypeDense DataType = "dense"

	// DataTypeRagged marks a collection with unequal length cases.
	DataTypeRagged DataType = "ragged"
)

// NewUnivariate builds a single-channel series from raw values.
func NewUnivariate(values []float64) Series {
	return mat.NewDense(1, len(values), values)
}

// NewCollectionFrom2D builds an equal-length univariate collection from a
// (n_cases, n_timepoints) table. Each row becomes one single-channel case.
func NewCollectionFrom2D(rows [][]float64) Collection {
	c := make(Collection, 0, len(rows))
	for _, row := range rows {
		vals := make([]float64, len(row))
		copy(vals, row)
		c = append(c, NewUnivariate(vals))
	}
	return c
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, s := range c {
		if s == nil {
			continue
		}
		d := mat.DenseCopyOf(s)
		out[i] = d
	}
	return out
}

// Type returns the layout identifier for the collection.
func (c Collection) Type() DataType {
	if c.IsEqualLength() {
		return DataTypeDense
	}
	return DataTypeRagged
}

// Validate checks the structural invariants of a collection: non-empty, no
// nil cases, no empty series, and a consistent channel count across cases.
func (c Collection) Validate() error {
	if len(c) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "series.Validate")
	}
	channels := -1
	for _, s := range c {
		if s == nil {
			return errors.NewValueError("series.Validate", "collection contains a nil case")
		}
		r, cols := s.Dims()
		if r == 0 || cols == 0 {
			return errors.NewDimensionError("series.Validate", []int{1, 1}, []int{r, cols})
		}
		if channels == -1 {
			channels = r
		} else if r != channels {
			return errors.NewDimensionError("series.Validate", []int{channels}, []int{r})
		}
	}
	return nil
}
