package sim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inference-sim/pagesim/sim/trace"
)

// ErrUnknownPolicy is returned when a policy name is not recognized.
var ErrUnknownPolicy = errors.New("unknown replacement policy")

// PolicyKind is the closed set of page-replacement policies.
type PolicyKind int

const (
	FIFO PolicyKind = iota
	LRU
	Clock
)

// AllPolicies lists every policy kind in canonical order.
var AllPolicies = []PolicyKind{FIFO, LRU, Clock}

// ValidPolicies is the set of recognized policy names.
// Shared by ParsePolicyKind() and Scenario.Validate().
// An empty string defaults to FIFO.
var ValidPolicies = map[string]bool{"": true, "fifo": true, "lru": true, "clock": true}

// String returns the display name of the policy.
func (k PolicyKind) String() string {
	switch k {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Clock:
		return "Clock"
	default:
		return fmt.Sprintf("PolicyKind(%d)", int(k))
	}
}

// ParsePolicyKind maps a case-insensitive policy name to its kind.
func ParsePolicyKind(name string) (PolicyKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !ValidPolicies[name] {
		return 0, fmt.Errorf("%w %q; valid policies: fifo, lru, clock", ErrUnknownPolicy, name)
	}
	switch name {
	case "", "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	default:
		return Clock, nil
	}
}

// Policy is the per-run state of a page-replacement policy.
// Access must be called once per reference, strictly in reference order.
// Implementations are not safe for concurrent use; each run owns its instance.
type Policy interface {
	// Access references page. It reports whether the page was already resident
	// and, on a fault that displaced a resident page, which page was evicted.
	Access(page int) (hit bool, victim int, evicted bool)
	// Frames returns the current resident set padded to capacity.
	// Ordering is policy-specific; see each implementation.
	Frames() []trace.Frame
	Kind() PolicyKind
}

// NewPolicy creates fresh state for the given kind.
// Panics on capacity < 1 or an unknown kind; callers validate first.
func NewPolicy(kind PolicyKind, capacity int) Policy {
	if capacity < 1 {
		panic(fmt.Sprintf("policy capacity must be >= 1, got %d", capacity))
	}
	switch kind {
	case FIFO:
		return NewFIFOPolicy(capacity)
	case LRU:
		return NewLRUPolicy(capacity)
	case Clock:
		return NewClockPolicy(capacity)
	default:
		panic(fmt.Sprintf("unhandled policy kind %v", kind))
	}
}
