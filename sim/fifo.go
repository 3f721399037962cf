package sim

import "github.com/inference-sim/pagesim/sim/trace"

// FIFOPolicy evicts the page that was faulted in earliest.
// Hits never change eviction order, so increasing capacity can increase
// faults for some reference strings (Belady's anomaly).
//
// Snapshot order: insertion order, oldest first.
type FIFOPolicy struct {
	capacity int
	queue    []int // oldest first
	resident map[int]bool
}

// NewFIFOPolicy creates an empty FIFOPolicy with the given capacity.
func NewFIFOPolicy(capacity int) *FIFOPolicy {
	return &FIFOPolicy{
		capacity: capacity,
		queue:    make([]int, 0, capacity),
		resident: make(map[int]bool, capacity),
	}
}

func (f *FIFOPolicy) Access(page int) (bool, int, bool) {
	if f.resident[page] {
		return true, 0, false
	}
	var victim int
	evicted := false
	if len(f.queue) == f.capacity {
		victim = f.queue[0]
		f.queue = f.queue[1:]
		delete(f.resident, victim)
		evicted = true
	}
	f.queue = append(f.queue, page)
	f.resident[page] = true
	return false, victim, evicted
}

func (f *FIFOPolicy) Frames() []trace.Frame {
	return trace.PadFrames(f.queue, f.capacity)
}

func (f *FIFOPolicy) Kind() PolicyKind { return FIFO }
