package sim

// SweepPoint is the fault count of one policy at one capacity.
type SweepPoint struct {
	Frames int
	Faults int
}

// SweepResult holds fault counts for a policy across capacities 1..MaxFrames.
type SweepResult struct {
	Policy PolicyKind
	Points []SweepPoint // ascending by Frames
}

// Sweep runs kind over pages once per capacity in [1, maxFrames].
// This is the data behind a faults-versus-frames performance graph.
func Sweep(kind PolicyKind, pages []int, maxFrames int) (*SweepResult, error) {
	if err := ValidateSequence(pages, maxFrames); err != nil {
		return nil, err
	}
	sr := &SweepResult{Policy: kind, Points: make([]SweepPoint, 0, maxFrames)}
	for frames := 1; frames <= maxFrames; frames++ {
		r := Run(kind, pages, frames)
		sr.Points = append(sr.Points, SweepPoint{Frames: frames, Faults: r.FaultCount})
	}
	return sr, nil
}

// Anomalies returns every capacity whose fault count exceeds the count at the
// next smaller capacity (Belady's anomaly).
func (s *SweepResult) Anomalies() []int {
	var out []int
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Faults > s.Points[i-1].Faults {
			out = append(out, s.Points[i].Frames)
		}
	}
	return out
}
