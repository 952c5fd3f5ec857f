package smooth

import (
	"github.com/spf13/cobra"

	"github.com/kairoslib/kairos/cmd/kairos/internal/build"
	"github.com/kairoslib/kairos/pkg/dataio"
	"github.com/kairoslib/kairos/visualization"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

func init() {
	CMD.Flags().StringVarP(&flags.input, "input", "i", "", "input CSV, one series per row")
	CMD.Flags().StringVarP(&flags.output, "output", "o", "", "output CSV for the smoothed series")
	CMD.Flags().StringVarP(&flags.method, "method", "m", "movingaverage", "smoother to apply (movingaverage, dfa)")
	CMD.Flags().IntVarP(&flags.window, "window", "w", 5, "moving average window size")
	CMD.Flags().Float64VarP(&flags.r, "ratio", "r", 0.5, "fraction of Fourier terms kept by dfa")
	CMD.Flags().BoolVar(&flags.sort, "sort", false, "keep the largest-amplitude Fourier terms instead of the lowest frequencies")
	CMD.Flags().StringVar(&flags.plot, "plot", "", "write a raw/smoothed overlay of the first series to this image path")
	_ = CMD.MarkFlagRequired("input")
	_ = CMD.MarkFlagRequired("output")
}

var flags = struct {
	input, output  string
	method, plot   string
	window         int
	r              float64
	sort           bool
}{}

// CMD runs the kairos smooth command.
var CMD = &cobra.Command{
	Use:   "smooth",
	Short: "Smooth series from a CSV file",
	RunE:  run,
}

func run(_ *cobra.Command, _ []string) error {
	smoother, err := build.Smoother(flags.method, flags.window, flags.r, flags.sort)
	if err != nil {
		return err
	}
	if smoother == nil {
		return kerrors.NewValidationError("method", "smooth requires a smoother", flags.method)
	}

	X, err := dataio.LoadSeriesCSV(flags.input)
	if err != nil {
		return err
	}
	Xt, err := smoother.FitTransform(X)
	if err != nil {
		return err
	}
	if err := dataio.SaveSeriesCSV(flags.output, Xt); err != nil {
		return err
	}
	if flags.plot != "" {
		return visualization.PlotSmoothing(X[0], Xt[0], smoother.EstimatorName(), flags.plot)
	}
	return nil
}
