// Package visualization renders time series and smoothing results to image
// files.
package visualization

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// defaultSize is the rendered width and height of saved plots.
const defaultSize = 6 * vg.Inch

// PlotSeries saves a line plot of a single series to path. Every channel is
// drawn as its own line. The output format follows the path extension
// (".png", ".svg", ".pdf").
func PlotSeries(s series.Series, title, path string) error {
	if s == nil {
		return kerrors.NewValueError("PlotSeries", "series is nil")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "timepoint"
	p.Y.Label.Text = "value"

	rows, _ := s.Dims()
	for ch := 0; ch < rows; ch++ {
		line, err := plotter.NewLine(channelXYs(s, ch))
		if err != nil {
			return kerrors.Wrap(err, "building series line")
		}
		line.Color = plotutil.Color(ch)
		p.Add(line)
	}
	if err := p.Save(defaultSize, defaultSize, path); err != nil {
		return kerrors.NewSerializationError("PlotSeries", err)
	}
	return nil
}

// PlotSmoothing saves an overlay of a raw series and its smoothed version.
// Multichannel input is reduced to the first channel, with a data-conversion
// warning.
func PlotSmoothing(raw, smoothed series.Series, title, path string) error {
	if raw == nil || smoothed == nil {
		return kerrors.NewValueError("PlotSmoothing", "series is nil")
	}
	if rows, _ := raw.Dims(); rows > 1 {
		kerrors.Warn(kerrors.NewDataConversionWarning(
			"multichannel series", "single channel",
			"smoothing overlay draws the first channel only",
		))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "timepoint"
	p.Y.Label.Text = "value"

	rawLine, err := plotter.NewLine(channelXYs(raw, 0))
	if err != nil {
		return kerrors.Wrap(err, "building raw line")
	}
	rawLine.Color = plotutil.Color(0)

	smoothLine, err := plotter.NewLine(channelXYs(smoothed, 0))
	if err != nil {
		return kerrors.Wrap(err, "building smoothed line")
	}
	smoothLine.Color = plotutil.Color(1)
	smoothLine.Width = 2 * vg.Millimeter

	p.Add(rawLine, smoothLine)
	p.Legend.Add("raw", rawLine)
	p.Legend.Add("smoothed", smoothLine)
	p.Legend.Top = true

	if err := p.Save(defaultSize, defaultSize, path); err != nil {
		return kerrors.NewSerializationError("PlotSmoothing", err)
	}
	return nil
}

// PlotPredictions saves a predicted-versus-actual scatter with the identity
// line for reference.
func PlotPredictions(yTrue, yPred []float64, title, path string) error {
	if len(yTrue) != len(yPred) {
		return kerrors.NewValueError("PlotPredictions", "yTrue and yPred must have the same length")
	}
	if len(yTrue) == 0 {
		return kerrors.Wrap(kerrors.ErrEmptyData, "PlotPredictions")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "actual"
	p.Y.Label.Text = "predicted"

	pts := make(plotter.XYs, len(yTrue))
	lo, hi := yTrue[0], yTrue[0]
	for i := range yTrue {
		pts[i] = plotter.XY{X: yTrue[i], Y: yPred[i]}
		if yTrue[i] < lo {
			lo = yTrue[i]
		}
		if yTrue[i] > hi {
			hi = yTrue[i]
		}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return kerrors.Wrap(err, "building prediction scatter")
	}
	scatter.Color = plotutil.Color(0)

	identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return kerrors.Wrap(err, "building identity line")
	}
	identity.Color = plotutil.Color(1)

	p.Add(scatter, identity)
	if err := p.Save(defaultSize, defaultSize, path); err != nil {
		return kerrors.NewSerializationError("PlotPredictions", err)
	}
	return nil
}

// channelXYs converts one channel of a series to plotter points.
func channelXYs(s series.Series, ch int) plotter.XYs {
	_, cols := s.Dims()
	pts := make(plotter.XYs, cols)
	for t := 0; t < cols; t++ {
		pts[t] = plotter.XY{X: float64(t), Y: s.At(ch, t)}
	}
	return pts
}
