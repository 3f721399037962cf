package trace

// Result is the full trace of one policy run over one reference string.
// Results are immutable once returned by the simulator.
type Result struct {
	Policy         string
	Capacity       int
	Steps          []Step
	FaultCount     int
	ReferenceCount int
}

// NewResult creates a Result ready for recording.
// expected sizes the step slice; it may be zero.
func NewResult(policy string, capacity, expected int) *Result {
	return &Result{
		Policy:   policy,
		Capacity: capacity,
		Steps:    make([]Step, 0, expected),
	}
}

// Record appends a step and updates the counters.
func (r *Result) Record(step Step) {
	r.Steps = append(r.Steps, step)
	r.ReferenceCount++
	if step.Fault {
		r.FaultCount++
	}
}

// HitCount returns the number of references that found their page resident.
func (r *Result) HitCount() int {
	return r.ReferenceCount - r.FaultCount
}

// Equal reports whether two results describe the same run step for step.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Policy != other.Policy || r.Capacity != other.Capacity ||
		r.FaultCount != other.FaultCount || r.ReferenceCount != other.ReferenceCount ||
		len(r.Steps) != len(other.Steps) {
		return false
	}
	for i := range r.Steps {
		a, b := r.Steps[i], other.Steps[i]
		if a.Index != b.Index || a.Page != b.Page || a.Fault != b.Fault ||
			a.HasEviction != b.HasEviction || a.Evicted != b.Evicted ||
			len(a.Frames) != len(b.Frames) {
			return false
		}
		for j := range a.Frames {
			if a.Frames[j] != b.Frames[j] {
				return false
			}
		}
	}
	return true
}
