package version

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// CMD defines the kairos version command.
var CMD = &cobra.Command{
	Use:   "version",
	Short: "Print the kairos version",
	Run:   run,
}

func run(_ *cobra.Command, _ []string) {
	fmt.Printf("%s version: %s [%s/%s]\n", os.Args[0], version, runtime.GOOS, runtime.GOARCH)
}
