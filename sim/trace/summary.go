package trace

import "errors"

// ErrNoReferences is returned when summarizing a result with no recorded steps.
var ErrNoReferences = errors.New("no references to summarize")

// Statistics aggregates fault metrics from a Result.
type Statistics struct {
	Policy           string  `yaml:"policy"`
	Capacity         int     `yaml:"frames"`
	ReferenceCount   int     `yaml:"references"`
	FaultCount       int     `yaml:"faults"`
	HitCount         int     `yaml:"hits"`
	HitRatio         float64 `yaml:"hit_ratio"`
	FaultRatio       float64 `yaml:"fault_ratio"`
	CumulativeFaults []int   `yaml:"cumulative_faults,flow"` // faults among the first i+1 steps
}

// Summarize computes aggregate statistics from a Result.
// Returns ErrNoReferences for nil or empty results.
func Summarize(r *Result) (*Statistics, error) {
	if r == nil || r.ReferenceCount == 0 {
		return nil, ErrNoReferences
	}

	stats := &Statistics{
		Policy:           r.Policy,
		Capacity:         r.Capacity,
		ReferenceCount:   r.ReferenceCount,
		FaultCount:       r.FaultCount,
		HitCount:         r.HitCount(),
		CumulativeFaults: make([]int, len(r.Steps)),
	}

	faults := 0
	for i, step := range r.Steps {
		if step.Fault {
			faults++
		}
		stats.CumulativeFaults[i] = faults
	}

	refs := float64(r.ReferenceCount)
	stats.HitRatio = float64(stats.HitCount) / refs
	stats.FaultRatio = float64(stats.FaultCount) / refs

	return stats, nil
}
