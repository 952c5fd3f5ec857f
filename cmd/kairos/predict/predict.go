package predict

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoslib/kairos/core/estimator"
	"github.com/kairoslib/kairos/pkg/dataio"

	kerrors "github.com/kairoslib/kairos/pkg/errors"

	_ "github.com/kairoslib/kairos/compose"
	_ "github.com/kairoslib/kairos/preprocessing"
	_ "github.com/kairoslib/kairos/regression"
	_ "github.com/kairoslib/kairos/transformations/smoothing"
)

func init() {
	CMD.Flags().StringVarP(&flags.model, "model", "M", "", "trained model archive")
	CMD.Flags().StringVarP(&flags.input, "input", "i", "", "input CSV, one series per row")
	CMD.Flags().StringVarP(&flags.output, "output", "o", "", "output CSV for predictions (stdout when empty)")
	_ = CMD.MarkFlagRequired("model")
	_ = CMD.MarkFlagRequired("input")
}

var flags = struct {
	model, input, output string
}{}

// CMD runs the kairos predict command.
var CMD = &cobra.Command{
	Use:   "predict",
	Short: "Predict with a trained model",
	RunE:  run,
}

func run(_ *cobra.Command, _ []string) error {
	e, err := estimator.LoadFromPath(flags.model)
	if err != nil {
		return err
	}
	reg, ok := e.(estimator.Regressor)
	if !ok {
		return kerrors.NewValueError("predict", "model archive does not hold a regressor")
	}

	X, err := dataio.LoadSeriesCSV(flags.input)
	if err != nil {
		return err
	}
	preds, err := reg.Predict(X)
	if err != nil {
		return err
	}

	if flags.output == "" {
		for _, p := range preds {
			fmt.Println(p)
		}
		return nil
	}
	return dataio.SaveValuesCSV(flags.output, preds)
}
