package sim

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/inference-sim/pagesim/sim/trace"
)

// LRUPolicy evicts the least recently referenced page (exact LRU).
// A hit moves the page to the most-recent end.
//
// Snapshot order: recency order, least recent first.
type LRUPolicy struct {
	capacity int
	order    *simplelru.LRU[int, struct{}]
}

// NewLRUPolicy creates an empty LRUPolicy with the given capacity.
func NewLRUPolicy(capacity int) *LRUPolicy {
	order, err := simplelru.NewLRU[int, struct{}](capacity, nil)
	if err != nil {
		panic(fmt.Sprintf("creating LRU order of size %d: %v", capacity, err))
	}
	return &LRUPolicy{capacity: capacity, order: order}
}

func (l *LRUPolicy) Access(page int) (bool, int, bool) {
	// Get promotes the page to most recent.
	if _, ok := l.order.Get(page); ok {
		return true, 0, false
	}
	var victim int
	evicted := false
	if l.order.Len() == l.capacity {
		victim, _, evicted = l.order.RemoveOldest()
	}
	l.order.Add(page, struct{}{})
	return false, victim, evicted
}

func (l *LRUPolicy) Frames() []trace.Frame {
	return trace.PadFrames(l.order.Keys(), l.capacity)
}

func (l *LRUPolicy) Kind() PolicyKind { return LRU }
