package train

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoslib/kairos/cmd/kairos/internal/build"
	"github.com/kairoslib/kairos/compose"
	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/pkg/dataio"
)

func init() {
	CMD.Flags().StringVarP(&flags.input, "input", "i", "", "labelled CSV, series per row with the target in the last column")
	CMD.Flags().StringVarP(&flags.model, "model", "M", "model", "output path for the trained model archive")
	CMD.Flags().StringVarP(&flags.smoother, "smoother", "s", "none", "smoother in front of the regressor (movingaverage, dfa, none)")
	CMD.Flags().StringVarP(&flags.regressor, "regressor", "R", "summary", "regressor to train (summary, interval)")
	CMD.Flags().IntVarP(&flags.window, "window", "w", 5, "moving average window size")
	CMD.Flags().Float64VarP(&flags.r, "ratio", "r", 0.5, "fraction of Fourier terms kept by dfa")
	CMD.Flags().IntVar(&flags.nIntervals, "intervals", 8, "number of intervals for the interval regressor")
	CMD.Flags().Int64Var(&flags.seed, "seed", 1, "random seed for the interval regressor")
	_ = CMD.MarkFlagRequired("input")
}

var flags = struct {
	input, model        string
	smoother, regressor string
	window, nIntervals  int
	r                   float64
	seed                int64
}{}

// CMD runs the kairos train command.
var CMD = &cobra.Command{
	Use:   "train",
	Short: "Train a regressor on a labelled CSV file",
	RunE:  run,
}

func run(_ *cobra.Command, _ []string) error {
	X, y, err := dataio.LoadLabelledCSV(flags.input)
	if err != nil {
		return err
	}

	reg, err := model()
	if err != nil {
		return err
	}
	if err := reg.Fit(X, y); err != nil {
		return err
	}
	score, err := reg.Score(X, y)
	if err != nil {
		return err
	}

	path, err := estimator.SaveToPath(reg, flags.model)
	if err != nil {
		return err
	}
	fmt.Printf("trained %s on %d cases (train R²=%.4f), saved to %s\n",
		reg.EstimatorName(), len(X), score, path)
	return nil
}

// model assembles the configured regressor, wrapped in a pipeline when a
// smoother is requested.
func model() (estimator.Regressor, error) {
	reg, err := build.Regressor(flags.regressor, flags.nIntervals, flags.seed)
	if err != nil {
		return nil, err
	}
	smoother, err := build.Smoother(flags.smoother, flags.window, flags.r, false)
	if err != nil {
		return nil, err
	}
	if smoother == nil {
		return reg, nil
	}
	return compose.NewPipeline(smoother, reg), nil
}
