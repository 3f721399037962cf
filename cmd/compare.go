package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/export"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run FIFO, LRU and Clock over the same input and compare faults",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInput(cmd, true)
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}
		if err := runComparison(os.Stdout, in, outputPath); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

// runComparison writes the comparison table to w and optionally every report to output.
func runComparison(w io.Writer, in *simInput, output string) error {
	cmp, err := sim.Compare(in.pages, in.frames)
	if err != nil {
		return err
	}
	export.WriteComparison(w, cmp)

	if best, ok := cmp.Best(); ok {
		logrus.Infof("Fewest faults: %s (%d)", best, cmp[best].FaultCount)
	}
	if output != "" {
		if err := export.WriteFile(output, cmp.Results()...); err != nil {
			return err
		}
		logrus.Infof("Reports saved to %s", output)
	}
	return nil
}

func init() {
	registerInputFlags(compareCmd)
	compareCmd.Flags().StringVar(&outputPath, "output", "", "Save every policy's report to this file (.lz4 or .sz to compress)")

	rootCmd.AddCommand(compareCmd)
}
