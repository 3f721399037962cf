package trace

import (
	"testing"
)

func TestResult_Record_UpdatesCounters(t *testing.T) {
	// GIVEN an empty result
	r := NewResult("FIFO", 2, 0)

	// WHEN a fault and a hit are recorded
	r.Record(Step{Index: 1, Page: 1, Frames: PadFrames([]int{1}, 2), Fault: true})
	r.Record(Step{Index: 2, Page: 1, Frames: PadFrames([]int{1}, 2), Fault: false})

	// THEN counters track the recorded steps
	if r.ReferenceCount != 2 {
		t.Errorf("expected 2 references, got %d", r.ReferenceCount)
	}
	if r.FaultCount != 1 {
		t.Errorf("expected 1 fault, got %d", r.FaultCount)
	}
	if r.HitCount() != 1 {
		t.Errorf("expected 1 hit, got %d", r.HitCount())
	}
}

func TestResult_Record_PreservesOrder(t *testing.T) {
	r := NewResult("LRU", 1, 3)
	for i, page := range []int{5, 6, 7} {
		r.Record(Step{Index: i + 1, Page: page, Fault: true})
	}
	for i, want := range []int{5, 6, 7} {
		if r.Steps[i].Page != want || r.Steps[i].Index != i+1 {
			t.Errorf("step %d: got page %d index %d, want page %d index %d",
				i, r.Steps[i].Page, r.Steps[i].Index, want, i+1)
		}
	}
}

func TestPadFrames_PadsToCapacity(t *testing.T) {
	frames := PadFrames([]int{3, 4}, 4)
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	if !frames[0].Occupied || frames[0].Page != 3 || !frames[1].Occupied || frames[1].Page != 4 {
		t.Errorf("resident pages not preserved: %+v", frames)
	}
	if frames[2].Occupied || frames[3].Occupied {
		t.Errorf("padding frames must be unoccupied: %+v", frames)
	}
}

func TestStep_FramesString_BlankForEmptyFrames(t *testing.T) {
	step := Step{Frames: PadFrames([]int{1, 0}, 3)}
	if got := step.FramesString(); got != "1 | 0 | " {
		t.Errorf("FramesString() = %q, want %q", got, "1 | 0 | ")
	}
	if got := step.Resident(); len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("Resident() = %v, want [1 0]", got)
	}
}

func TestResult_Equal(t *testing.T) {
	build := func(evicted int) *Result {
		r := NewResult("Clock", 1, 2)
		r.Record(Step{Index: 1, Page: 1, Frames: PadFrames([]int{1}, 1), Fault: true})
		r.Record(Step{Index: 2, Page: 2, Frames: PadFrames([]int{2}, 1), Fault: true, Evicted: evicted, HasEviction: true})
		return r
	}
	if !build(1).Equal(build(1)) {
		t.Error("identical results must be equal")
	}
	if build(1).Equal(build(9)) {
		t.Error("results with different evictions must differ")
	}
	var nilResult *Result
	if nilResult.Equal(build(1)) {
		t.Error("nil result must not equal a populated one")
	}
}
