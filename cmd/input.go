package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
)

// simInput is the validated parameters of one command invocation.
type simInput struct {
	pages     []int
	frames    int
	policy    sim.PolicyKind
	policySet bool // policy came from a flag or the scenario file
	maxFrames int  // 0 when neither flag nor scenario sets it
}

// resolveInput merges the scenario file (if any) with explicitly set flags and
// validates the result. Flags win over scenario values. When needFrames is false
// a missing frame count is allowed and left as 0.
func resolveInput(cmd *cobra.Command, needFrames bool) (*simInput, error) {
	sc := &sim.Scenario{}
	if configPath != "" {
		loaded, err := sim.LoadScenario(configPath)
		if err != nil {
			return nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scenario %s: %w", configPath, err)
		}
		sc = loaded
		logrus.Debugf("Loaded scenario from %s", configPath)
	}

	rawPages := sc.Pages
	switch {
	case cmd.Flags().Changed("pages"):
		rawPages = pagesFlag
	case pagesFile != "":
		data, err := readPagesFile(pagesFile)
		if err != nil {
			return nil, err
		}
		rawPages = data
	}

	rawFrames := framesFlag
	if !cmd.Flags().Changed("frames") && sc.Frames > 0 {
		rawFrames = strconv.Itoa(sc.Frames)
	}

	var (
		pages  []int
		frames int
		err    error
	)
	if needFrames || strings.TrimSpace(rawFrames) != "" {
		pages, frames, err = sim.Validate(rawPages, rawFrames)
	} else {
		pages, err = sim.ParsePages(rawPages)
	}
	if err != nil {
		return nil, err
	}

	in := &simInput{pages: pages, frames: frames, maxFrames: sc.MaxFrames}

	name := sc.Policy
	if f := cmd.Flags().Lookup("policy"); f != nil && f.Changed {
		name = policyName
	}
	if in.policy, err = sim.ParsePolicyKind(name); err != nil {
		return nil, err
	}
	in.policySet = name != ""

	if f := cmd.Flags().Lookup("max-frames"); f != nil && f.Changed {
		in.maxFrames = maxFrames
	}
	return in, nil
}

// readPagesFile flattens a newline-separated page file into the comma form.
func readPagesFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pages file: %w", err)
	}
	defer file.Close()
	return sim.FlattenReferenceLines(file)
}
