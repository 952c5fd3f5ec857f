package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kairoslib/kairos/cmd/kairos/eval"
	"github.com/kairoslib/kairos/cmd/kairos/list"
	"github.com/kairoslib/kairos/cmd/kairos/predict"
	"github.com/kairoslib/kairos/cmd/kairos/smooth"
	"github.com/kairoslib/kairos/cmd/kairos/train"
	"github.com/kairoslib/kairos/cmd/kairos/version"
)

var root = &cobra.Command{
	Use:   "kairos",
	Short: "Time series learning from the command line",
}

func init() {
	root.AddCommand(
		eval.CMD,
		list.CMD,
		predict.CMD,
		smooth.CMD,
		train.CMD,
		version.CMD,
	)
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
