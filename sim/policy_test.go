package sim

import (
	"errors"
	"testing"
)

func TestParsePolicyKind_ValidNames(t *testing.T) {
	tests := []struct {
		name string
		want PolicyKind
	}{
		{"", FIFO},
		{"fifo", FIFO},
		{"FIFO", FIFO},
		{" lru ", LRU},
		{"Clock", Clock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicyKind(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicyKind(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParsePolicyKind_UnknownName(t *testing.T) {
	for _, name := range []string{"optimal", "mru", "second-chance"} {
		if _, err := ParsePolicyKind(name); !errors.Is(err, ErrUnknownPolicy) {
			t.Errorf("ParsePolicyKind(%q) error = %v, want ErrUnknownPolicy", name, err)
		}
	}
}

func TestPolicyKind_StringRoundTrips(t *testing.T) {
	for _, kind := range AllPolicies {
		got, err := ParsePolicyKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParsePolicyKind(%q) = %v, %v; want %v", kind.String(), got, err, kind)
		}
	}
}

func TestNewPolicy_ReturnsMatchingKind(t *testing.T) {
	for _, kind := range AllPolicies {
		p := NewPolicy(kind, 2)
		if p.Kind() != kind {
			t.Errorf("NewPolicy(%v).Kind() = %v", kind, p.Kind())
		}
		if got := len(p.Frames()); got != 2 {
			t.Errorf("%v: fresh policy has %d frames, want 2", kind, got)
		}
	}
}

func TestNewPolicy_PanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for capacity 0")
		}
	}()
	NewPolicy(LRU, 0)
}
