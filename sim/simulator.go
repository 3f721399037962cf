package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pagesim/sim/trace"
)

// Run feeds pages through fresh state for kind and returns the full trace.
// Each step's snapshot is taken after the reference is applied.
// Run assumes validated input (non-empty pages, capacity >= 1); use Simulate
// for unvalidated input. Identical arguments always yield an equal Result.
func Run(kind PolicyKind, pages []int, capacity int) *trace.Result {
	policy := NewPolicy(kind, capacity)
	result := trace.NewResult(kind.String(), capacity, len(pages))

	for i, page := range pages {
		hit, victim, evicted := policy.Access(page)
		step := trace.Step{
			Index:       i + 1,
			Page:        page,
			Frames:      policy.Frames(),
			Fault:       !hit,
			Evicted:     victim,
			HasEviction: evicted,
		}
		if evicted {
			logrus.Debugf("[%s step %d] page %d evicted page %d", kind, step.Index, page, victim)
		}
		result.Record(step)
	}

	logrus.Debugf("%s: %d faults over %d references with %d frames",
		kind, result.FaultCount, result.ReferenceCount, capacity)
	return result
}

// Simulate validates pages and capacity, then runs a single policy.
func Simulate(kind PolicyKind, pages []int, capacity int) (*trace.Result, error) {
	if err := ValidateSequence(pages, capacity); err != nil {
		return nil, err
	}
	return Run(kind, pages, capacity), nil
}
