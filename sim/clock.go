package sim

import "github.com/inference-sim/pagesim/sim/trace"

// clockSlot is one frame of the clock: an optional page and its reference bit.
type clockSlot struct {
	page       int
	occupied   bool
	referenced bool
}

// ClockPolicy implements second-chance replacement over a fixed ring of slots.
// The hand persists across faults for the lifetime of the policy.
//
// Snapshot order: positional by slot, so a replaced page keeps its slot index.
type ClockPolicy struct {
	slots []clockSlot
	index map[int]int // page -> slot
	hand  int
}

// NewClockPolicy creates a ClockPolicy with capacity empty slots and the hand at slot 0.
func NewClockPolicy(capacity int) *ClockPolicy {
	return &ClockPolicy{
		slots: make([]clockSlot, capacity),
		index: make(map[int]int, capacity),
	}
}

func (c *ClockPolicy) Access(page int) (bool, int, bool) {
	if slot, ok := c.index[page]; ok {
		c.slots[slot].referenced = true
		return true, 0, false
	}

	n := len(c.slots)
	// Every visited set bit is cleared, so two full sweeps always find a victim.
	for range 2 * n {
		idx := c.hand
		s := &c.slots[idx]
		c.hand = (c.hand + 1) % n
		if s.referenced {
			s.referenced = false
			continue
		}
		victim, evicted := s.page, s.occupied
		if evicted {
			delete(c.index, victim)
		}
		*s = clockSlot{page: page, occupied: true, referenced: true}
		c.index[page] = idx
		return false, victim, evicted
	}
	panic("clock sweep found no victim")
}

func (c *ClockPolicy) Frames() []trace.Frame {
	frames := make([]trace.Frame, len(c.slots))
	for i, s := range c.slots {
		frames[i] = trace.Frame{Page: s.page, Occupied: s.occupied}
	}
	return frames
}

func (c *ClockPolicy) Kind() PolicyKind { return Clock }

// Hand returns the slot the next fault scan starts from.
func (c *ClockPolicy) Hand() int { return c.hand }

// Referenced returns the reference bit of slot.
func (c *ClockPolicy) Referenced(slot int) bool { return c.slots[slot].referenced }
