package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/inference-sim/pagesim/sim/trace"
)

// randomReferenceString returns n pages drawn from [0, distinct) with a fixed seed.
func randomReferenceString(seed uint64, n, distinct int) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pages := make([]int, n)
	for i := range pages {
		pages[i] = rng.IntN(distinct)
	}
	return pages
}

// assertTraceInvariants checks the properties every policy's trace must hold:
// snapshot size, no duplicate residents, the referenced page is resident after
// each step, and a step faults exactly when the page was not resident before it.
func assertTraceInvariants(t *testing.T, r *trace.Result, pages []int) {
	t.Helper()
	if r.ReferenceCount != len(pages) || len(r.Steps) != len(pages) {
		t.Fatalf("%s: %d references / %d steps for %d pages", r.Policy, r.ReferenceCount, len(r.Steps), len(pages))
	}
	faults := 0
	prev := map[int]bool{}
	for i, step := range r.Steps {
		if step.Index != i+1 || step.Page != pages[i] {
			t.Fatalf("%s step %d: index %d page %d, want index %d page %d",
				r.Policy, i, step.Index, step.Page, i+1, pages[i])
		}
		if len(step.Frames) != r.Capacity {
			t.Errorf("%s step %d: snapshot has %d frames, want %d", r.Policy, step.Index, len(step.Frames), r.Capacity)
		}
		resident := step.Resident()
		if len(resident) > r.Capacity {
			t.Errorf("%s step %d: %d resident pages exceed capacity %d", r.Policy, step.Index, len(resident), r.Capacity)
		}
		now := map[int]bool{}
		for _, p := range resident {
			if now[p] {
				t.Errorf("%s step %d: page %d resident twice", r.Policy, step.Index, p)
			}
			now[p] = true
		}
		if !now[step.Page] {
			t.Errorf("%s step %d: page %d not resident after reference", r.Policy, step.Index, step.Page)
		}
		if step.Fault == prev[step.Page] {
			t.Errorf("%s step %d: fault=%v but page resident before=%v", r.Policy, step.Index, step.Fault, prev[step.Page])
		}
		if step.HasEviction && (!prev[step.Evicted] || now[step.Evicted]) {
			t.Errorf("%s step %d: evicted page %d was not displaced", r.Policy, step.Index, step.Evicted)
		}
		if step.Fault {
			faults++
		}
		prev = now
	}
	if faults != r.FaultCount {
		t.Errorf("%s: FaultCount %d, counted %d faulting steps", r.Policy, r.FaultCount, faults)
	}
}

func faultSteps(r *trace.Result) []int {
	var out []int
	for _, s := range r.Steps {
		if s.Fault {
			out = append(out, s.Index)
		}
	}
	return out
}

func hitSteps(r *trace.Result) []int {
	var out []int
	for _, s := range r.Steps {
		if !s.Fault {
			out = append(out, s.Index)
		}
	}
	return out
}
