package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoslib/kairos/registry"

	_ "github.com/kairoslib/kairos/compose"
	_ "github.com/kairoslib/kairos/preprocessing"
	_ "github.com/kairoslib/kairos/regression"
	_ "github.com/kairoslib/kairos/transformations/smoothing"
)

func init() {
	CMD.Flags().StringVarP(&flags.category, "category", "c", "", "restrict to one category (transformer, regressor, composite)")
}

var flags = struct {
	category string
}{}

// CMD runs the kairos list command.
var CMD = &cobra.Command{
	Use:   "list",
	Short: "List registered estimators",
	RunE:  run,
}

func run(_ *cobra.Command, _ []string) error {
	var names []string
	if flags.category != "" {
		names = registry.EstimatorNames(registry.Category(flags.category))
	} else {
		names = registry.EstimatorNames()
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
