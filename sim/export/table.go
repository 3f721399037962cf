package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/inference-sim/pagesim/sim"
)

// WriteComparison renders one summary row per policy in canonical order.
func WriteComparison(w io.Writer, cmp sim.Comparison) {
	table := newTable(w)
	table.SetHeader([]string{"Policy", "Frames", "References", "Faults", "Hits", "Hit ratio"})
	for _, r := range cmp.Results() {
		hitRatio := 0.0
		if r.ReferenceCount > 0 {
			hitRatio = float64(r.HitCount()) / float64(r.ReferenceCount)
		}
		table.Append([]string{
			r.Policy,
			strconv.Itoa(r.Capacity),
			strconv.Itoa(r.ReferenceCount),
			strconv.Itoa(r.FaultCount),
			strconv.Itoa(r.HitCount()),
			fmt.Sprintf("%.2f%%", hitRatio*100),
		})
	}
	table.Render()
}

// WriteSweep renders fault counts per capacity, one column per policy.
// All sweeps are expected to cover the same capacities.
func WriteSweep(w io.Writer, sweeps []*sim.SweepResult) {
	if len(sweeps) == 0 {
		return
	}
	header := []string{"Frames"}
	for _, s := range sweeps {
		header = append(header, s.Policy.String())
	}
	table := newTable(w)
	table.SetHeader(header)
	for i, p := range sweeps[0].Points {
		row := []string{strconv.Itoa(p.Frames)}
		for _, s := range sweeps {
			row = append(row, strconv.Itoa(s.Points[i].Faults))
		}
		table.Append(row)
	}
	table.Render()
}
