// Package trace provides the step-by-step record of a page-replacement run.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

import (
	"strconv"
	"strings"
)

// Frame is one resident-memory slot in a snapshot.
// The zero value is an unoccupied frame.
type Frame struct {
	Page     int
	Occupied bool
}

// String renders the frame's page, or an empty string for an unoccupied frame.
func (f Frame) String() string {
	if !f.Occupied {
		return ""
	}
	return strconv.Itoa(f.Page)
}

// Step captures the outcome of a single page reference.
type Step struct {
	Index       int     // 1-based position in the reference string
	Page        int     // referenced page
	Frames      []Frame // post-reference resident set, padded to capacity
	Fault       bool    // page was not resident before this reference
	Evicted     int     // page removed to make room (valid only if HasEviction)
	HasEviction bool
}

// Resident returns the pages currently held in the snapshot, in snapshot order.
func (s Step) Resident() []int {
	pages := make([]int, 0, len(s.Frames))
	for _, f := range s.Frames {
		if f.Occupied {
			pages = append(pages, f.Page)
		}
	}
	return pages
}

// FramesString joins the snapshot with " | ", leaving unoccupied frames blank.
func (s Step) FramesString() string {
	cells := make([]string, len(s.Frames))
	for i, f := range s.Frames {
		cells[i] = f.String()
	}
	return strings.Join(cells, " | ")
}

// PadFrames converts resident pages into a snapshot of exactly capacity frames.
// Pages beyond capacity are dropped; missing slots are left unoccupied.
func PadFrames(pages []int, capacity int) []Frame {
	frames := make([]Frame, capacity)
	for i, p := range pages {
		if i >= capacity {
			break
		}
		frames[i] = Frame{Page: p, Occupied: true}
	}
	return frames
}
