package eval

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoslib/kairos/cmd/kairos/internal/build"
	"github.com/kairoslib/kairos/compose"
	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/evaluation"
	"github.com/kairoslib/kairos/pkg/dataio"
)

func init() {
	CMD.Flags().StringVarP(&flags.input, "input", "i", "", "labelled CSV, series per row with the target in the last column")
	CMD.Flags().StringVarP(&flags.smoother, "smoother", "s", "none", "smoother in front of the regressor (movingaverage, dfa, none)")
	CMD.Flags().StringVarP(&flags.regressor, "regressor", "R", "summary", "regressor to evaluate (summary, interval)")
	CMD.Flags().IntVarP(&flags.folds, "folds", "k", 5, "number of cross-validation folds")
	CMD.Flags().IntVarP(&flags.window, "window", "w", 5, "moving average window size")
	CMD.Flags().Float64VarP(&flags.r, "ratio", "r", 0.5, "fraction of Fourier terms kept by dfa")
	CMD.Flags().IntVar(&flags.nIntervals, "intervals", 8, "number of intervals for the interval regressor")
	CMD.Flags().Int64Var(&flags.seed, "seed", 1, "random seed for shuffling and the interval regressor")
	_ = CMD.MarkFlagRequired("input")
}

var flags = struct {
	input               string
	smoother, regressor string
	folds               int
	window, nIntervals  int
	r                   float64
	seed                int64
}{}

// CMD runs the kairos eval command.
var CMD = &cobra.Command{
	Use:   "eval",
	Short: "Cross-validate a regressor on a labelled CSV file",
	RunE:  run,
}

func run(cmd *cobra.Command, _ []string) error {
	X, y, err := dataio.LoadLabelledCSV(flags.input)
	if err != nil {
		return err
	}

	reg, err := build.Regressor(flags.regressor, flags.nIntervals, flags.seed)
	if err != nil {
		return err
	}
	smoother, err := build.Smoother(flags.smoother, flags.window, flags.r, false)
	if err != nil {
		return err
	}
	var blueprint estimator.Regressor = reg
	if smoother != nil {
		blueprint = compose.NewPipeline(smoother, reg)
	}

	results, err := evaluation.CrossValidate(cmd.Context(), blueprint, X, y, flags.folds, flags.seed)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("fold %d: R²=%.4f\n", r.Fold, r.Score)
	}
	fmt.Printf("mean R²=%.4f over %d folds\n", evaluation.MeanScore(results), flags.folds)
	return nil
}
