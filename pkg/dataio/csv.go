// Package dataio reads and writes time series datasets in CSV form.
//
// The row layout is one case per row: every column holds one timepoint of a
// univariate series. Labelled files carry the regression target in the last
// column.
package dataio

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// LoadSeriesCSV reads a CSV file of unlabelled cases, one univariate series
// per row. Rows may have different lengths.
func LoadSeriesCSV(path string) (series.Collection, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	X := make(series.Collection, 0, len(rows))
	for i, row := range rows {
		vals, err := parseRow(path, i, row)
		if err != nil {
			return nil, err
		}
		X = append(X, series.NewUnivariate(vals))
	}
	if err := X.Validate(); err != nil {
		return nil, err
	}
	return X, nil
}

// LoadLabelledCSV reads a CSV file of labelled cases. The last column of
// every row is the target value; the remaining columns form the series.
func LoadLabelledCSV(path string) (series.Collection, []float64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, nil, err
	}
	X := make(series.Collection, 0, len(rows))
	y := make([]float64, 0, len(rows))
	for i, row := range rows {
		vals, err := parseRow(path, i, row)
		if err != nil {
			return nil, nil, err
		}
		if len(vals) < 2 {
			return nil, nil, kerrors.NewValueError("LoadLabelledCSV", "labelled rows need at least one timepoint and a target")
		}
		X = append(X, series.NewUnivariate(vals[:len(vals)-1]))
		y = append(y, vals[len(vals)-1])
	}
	if err := X.Validate(); err != nil {
		return nil, nil, err
	}
	return X, y, nil
}

// SaveSeriesCSV writes a collection of univariate series, one row per case.
func SaveSeriesCSV(path string, X series.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return kerrors.NewSerializationError("SaveSeriesCSV", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, s := range X {
		rows, cols := s.Dims()
		if rows != 1 {
			return kerrors.NewValueError("SaveSeriesCSV", "only univariate collections can be written row-wise")
		}
		record := make([]string, cols)
		for t := 0; t < cols; t++ {
			record[t] = strconv.FormatFloat(s.At(0, t), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return kerrors.NewSerializationError("SaveSeriesCSV", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return kerrors.NewSerializationError("SaveSeriesCSV", err)
	}
	return nil
}

// SaveValuesCSV writes one value per row, typically predictions.
func SaveValuesCSV(path string, vals []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return kerrors.NewSerializationError("SaveValuesCSV", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, v := range vals {
		if err := w.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return kerrors.NewSerializationError("SaveValuesCSV", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return kerrors.NewSerializationError("SaveValuesCSV", err)
	}
	return nil
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, kerrors.NewSerializationError("readRows", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, kerrors.NewSerializationError("readRows", err)
	}
	if len(rows) == 0 {
		return nil, kerrors.Wrap(kerrors.ErrEmptyData, path)
	}
	return rows, nil
}

func parseRow(path string, idx int, row []string) ([]float64, error) {
	vals := make([]float64, len(row))
	for j, field := range row {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, kerrors.Wrapf(err, "%s: row %d, column %d", path, idx+1, j+1)
		}
		vals[j] = v
	}
	return vals, nil
}
