package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/export"
	"github.com/inference-sim/pagesim/sim/trace"
)

var (
	// CLI flags shared by run, compare and sweep
	pagesFlag  string // Comma-separated reference string
	pagesFile  string // File with newline-separated pages
	framesFlag string // Number of frames (parsed by the validator)
	configPath string // YAML scenario file
	logLevel   string // Log verbosity level
	outputPath string // Report file (.lz4 / .sz compress)

	// run / sweep flags
	policyName   string // Replacement policy
	outputFormat string // text or yaml
	maxFrames    int    // Largest frame count for sweeps
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page-replacement policy simulator (FIFO, LRU, Clock)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one policy and prints its trace
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one replacement policy over a reference string",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInput(cmd, true)
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}
		if err := runSimulation(os.Stdout, in, outputFormat, outputPath); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
	},
}

// runSimulation runs in.policy and writes the report (or YAML statistics) to w.
func runSimulation(w io.Writer, in *simInput, format, output string) error {
	logrus.Infof("Simulating %s with %d frames over %d references", in.policy, in.frames, len(in.pages))

	result, err := sim.Simulate(in.policy, in.pages, in.frames)
	if err != nil {
		return err
	}
	stats, err := trace.Summarize(result)
	if err != nil {
		return err
	}

	switch format {
	case "", "text":
		if err := export.WriteReport(w, result); err != nil {
			return err
		}
	case "yaml":
		data, err := yaml.Marshal(stats)
		if err != nil {
			return fmt.Errorf("YAML marshal failed: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q; valid: text, yaml", format)
	}

	if output != "" {
		if err := export.WriteFile(output, result); err != nil {
			return err
		}
		logrus.Infof("Report saved to %s", output)
	}
	logrus.Infof("%s: %d faults, hit ratio %.2f%%", in.policy, stats.FaultCount, stats.HitRatio*100)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerInputFlags binds the input flags shared by every simulation command.
func registerInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pagesFlag, "pages", "", "Comma-separated page reference string (e.g. 7,0,1,2,0,3)")
	cmd.Flags().StringVar(&pagesFile, "pages-file", "", "File with page references, one or more per line")
	cmd.Flags().StringVar(&framesFlag, "frames", "", "Number of page frames")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file; explicit flags override its values")
	cmd.MarkFlagsMutuallyExclusive("pages", "pages-file")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	registerInputFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", "", "Replacement policy: fifo, lru or clock (default fifo)")
	runCmd.Flags().StringVar(&outputFormat, "format", "text", "Stdout format: text (trace report) or yaml (statistics)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Also save the report to this file (.lz4 or .sz to compress)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
