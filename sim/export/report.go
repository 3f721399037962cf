// Package export renders simulation results for people: text reports,
// summary tables, and report files on disk.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/pagesim/sim/trace"
)

// StepColumns are the report table headers, in order.
var StepColumns = []string{"Step", "Page", "Frames", "Fault"}

// WriteReport writes a one-line summary header followed by the step table.
// Frames are joined with " | " and unoccupied frames are left blank.
func WriteReport(w io.Writer, r *trace.Result) error {
	stats, err := trace.Summarize(r)
	if err != nil {
		return fmt.Errorf("summarizing %s: %w", r.Policy, err)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", SummaryLine(stats)); err != nil {
		return err
	}

	table := newTable(w)
	table.SetHeader(StepColumns)
	for _, step := range r.Steps {
		table.Append([]string{
			strconv.Itoa(step.Index),
			strconv.Itoa(step.Page),
			step.FramesString(),
			faultLabel(step.Fault),
		})
	}
	table.Render()
	return nil
}

// SummaryLine formats the report header for stats.
func SummaryLine(stats *trace.Statistics) string {
	return fmt.Sprintf("Policy: %s | Frames: %d | References: %d | Faults: %d | Hits: %d | Hit ratio: %.2f%%",
		stats.Policy, stats.Capacity, stats.ReferenceCount, stats.FaultCount, stats.HitCount, stats.HitRatio*100)
}

func faultLabel(fault bool) string {
	if fault {
		return "Yes"
	}
	return "No"
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
