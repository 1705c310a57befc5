// Package views tracks which workspace view is active and moves across the
// ordered view list in response to keyboard navigation.
package views

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ID names one workspace view.
type ID string

const (
	Assistant ID = "assistant"
	Identity  ID = "identity"
	Admin     ID = "admin"
	System    ID = "system"
)

// Default returns the console's view order. The first entry is active at
// startup.
func Default() []ID {
	return []ID{Assistant, Identity, Admin, System}
}

// Navigator holds exactly one active view from an ordered list.
type Navigator struct {
	order  []ID
	active int
}

// New builds a navigator over ids; an empty list falls back to Default.
func New(ids ...ID) *Navigator {
	if len(ids) == 0 {
		ids = Default()
	}
	order := make([]ID, len(ids))
	copy(order, ids)
	return &Navigator{order: order}
}

// Order returns the configured view list.
func (n *Navigator) Order() []ID {
	out := make([]ID, len(n.order))
	copy(out, n.order)
	return out
}

// Active returns the currently selected view.
func (n *Navigator) Active() ID {
	return n.order[n.active]
}

// Index returns the position of the active view.
func (n *Navigator) Index() int {
	return n.active
}

// Select activates id directly; unknown ids are ignored.
func (n *Navigator) Select(id ID) bool {
	for i, candidate := range n.order {
		if candidate == id {
			n.active = i
			return true
		}
	}
	return false
}

// Next moves one view forward, holding at the last entry. No wraparound.
func (n *Navigator) Next() {
	if n.active < len(n.order)-1 {
		n.active++
	}
}

// Prev moves one view back, holding at the first entry.
func (n *Navigator) Prev() {
	if n.active > 0 {
		n.active--
	}
}

// Home jumps to the first view.
func (n *Navigator) Home() {
	n.active = 0
}

// End jumps to the last view.
func (n *Navigator) End() {
	n.active = len(n.order) - 1
}

// maxJumpDistance bounds how sloppy a fuzzy jump query may be before we
// refuse to guess.
const maxJumpDistance = 3

// SelectByName activates the view whose id best matches query: exact or
// prefix matches win outright, otherwise the closest id by edit distance
// within maxJumpDistance. Returns false when nothing matches well enough.
func (n *Navigator) SelectByName(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	for i, id := range n.order {
		if string(id) == q || strings.HasPrefix(string(id), q) {
			n.active = i
			return true
		}
	}
	best, bestDist := -1, maxJumpDistance+1
	for i, id := range n.order {
		dist := levenshtein.ComputeDistance(q, string(id))
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return false
	}
	n.active = best
	return true
}
