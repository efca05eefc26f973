// SPDX-License-Identifier: MIT

package core

import "sync/atomic"

// VisitedSet is a fixed-size set of claimed node IDs in [1, n].
//
// TryClaim is the claim primitive every traversal is built on: the
// unvisited → visited transition is a single compare-and-swap, so two
// workers racing on the same node can never both win.
type VisitedSet struct {
	flags []atomic.Bool // flags[0] unused
}

// NewVisitedSet allocates an all-unvisited set for IDs 1..n.
func NewVisitedSet(n int) *VisitedSet {
	if n < 0 {
		n = 0
	}

	return &VisitedSet{flags: make([]atomic.Bool, n+1)}
}

// TryClaim marks id visited and returns true iff this call performed the
// transition. Returns false for IDs outside [1, n].
func (s *VisitedSet) TryClaim(id int) bool {
	if id < 1 || id >= len(s.flags) {
		return false
	}

	return s.flags[id].CompareAndSwap(false, true)
}

// IsClaimed reports whether id has been claimed.
func (s *VisitedSet) IsClaimed(id int) bool {
	if id < 1 || id >= len(s.flags) {
		return false
	}

	return s.flags[id].Load()
}

// Reset marks every ID unvisited.
func (s *VisitedSet) Reset() {
	for i := range s.flags {
		s.flags[i].Store(false)
	}
}

// Count returns how many IDs are currently claimed. O(n).
func (s *VisitedSet) Count() int {
	c := 0
	for i := 1; i < len(s.flags); i++ {
		if s.flags[i].Load() {
			c++
		}
	}

	return c
}

// Len returns n, the number of addressable IDs.
func (s *VisitedSet) Len() int {
	return len(s.flags) - 1
}
