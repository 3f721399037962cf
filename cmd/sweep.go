package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/export"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Count faults for every frame count up to --max-frames",
	Long: "Count faults for every frame count from 1 to --max-frames (default: the larger of " +
		"--frames and the number of distinct pages). Without --policy every policy is swept. Frame counts where faults " +
		"increase (Belady's anomaly) are logged as warnings.",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInput(cmd, false)
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}
		if err := runSweep(os.Stdout, in); err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
	},
}

// runSweep sweeps the selected policies and writes the fault table to w.
func runSweep(w io.Writer, in *simInput) error {
	upper := in.maxFrames
	if upper == 0 {
		upper = max(in.frames, distinctPages(in.pages))
	}
	kinds := sim.AllPolicies
	if in.policySet {
		kinds = []sim.PolicyKind{in.policy}
	}

	sweeps := make([]*sim.SweepResult, 0, len(kinds))
	for _, kind := range kinds {
		sr, err := sim.Sweep(kind, in.pages, upper)
		if err != nil {
			return err
		}
		for _, frames := range sr.Anomalies() {
			logrus.Warnf("%s: Belady's anomaly at %d frames", kind, frames)
		}
		sweeps = append(sweeps, sr)
	}
	export.WriteSweep(w, sweeps)
	return nil
}

func distinctPages(pages []int) int {
	seen := make(map[int]struct{}, len(pages))
	for _, p := range pages {
		seen[p] = struct{}{}
	}
	return len(seen)
}

func init() {
	registerInputFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&policyName, "policy", "", "Sweep only this policy: fifo, lru or clock (default all)")
	sweepCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "Largest frame count to simulate (0 = number of distinct pages)")

	rootCmd.AddCommand(sweepCmd)
}
