package sim

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/inference-sim/pagesim/sim/trace"
)

// Comparison maps each policy to its result over one shared input.
type Comparison map[PolicyKind]*trace.Result

// Compare validates the input once and runs every policy over it.
// Policies run concurrently; each owns its state, so results are identical
// to running them one after another.
func Compare(pages []int, capacity int) (Comparison, error) {
	if err := ValidateSequence(pages, capacity); err != nil {
		return nil, err
	}

	results := make([]*trace.Result, len(AllPolicies))
	var wg sync.WaitGroup
	for i, kind := range AllPolicies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Run(kind, pages, capacity)
		}()
	}
	wg.Wait()

	cmp := make(Comparison, len(AllPolicies))
	for i, kind := range AllPolicies {
		cmp[kind] = results[i]
	}
	return cmp, nil
}

// Kinds returns the policies present in canonical order.
func (c Comparison) Kinds() []PolicyKind {
	kinds := maps.Keys(c)
	slices.Sort(kinds)
	return kinds
}

// Best returns the policy with the fewest faults.
// Ties go to the earlier policy in canonical order.
func (c Comparison) Best() (PolicyKind, bool) {
	var best PolicyKind
	found := false
	for _, kind := range c.Kinds() {
		if !found || c[kind].FaultCount < c[best].FaultCount {
			best, found = kind, true
		}
	}
	return best, found
}

// Results returns the results in canonical policy order.
func (c Comparison) Results() []*trace.Result {
	kinds := c.Kinds()
	out := make([]*trace.Result, len(kinds))
	for i, kind := range kinds {
		out[i] = c[kind]
	}
	return out
}
