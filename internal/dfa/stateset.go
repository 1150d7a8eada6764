package dfa

import "github.com/coregx/regrex/internal/nfa"

const wordBits = 64

// StateSet is a fixed-width bit vector over NFA state IDs. Its core
// operations are membership test, insertion, and equality — exactly what
// subset construction needs to decide DFA state identity — plus the
// helpers Clone, ForEach, and IsEmpty.
type StateSet struct {
	bits []uint64
	size int // universe size (number of possible NFA states)
}

// NewStateSet creates a StateSet able to hold members in [0, size).
func NewStateSet(size int) *StateSet {
	return &StateSet{
		bits: make([]uint64, (size+wordBits-1)/wordBits),
		size: size,
	}
}

// Add inserts id into the set. Idempotent.
func (s *StateSet) Add(id nfa.StateID) {
	s.bits[int(id)/wordBits] |= 1 << uint(int(id)%wordBits)
}

// Contains reports whether id is a member.
func (s *StateSet) Contains(id nfa.StateID) bool {
	return s.bits[int(id)/wordBits]&(1<<uint(int(id)%wordBits)) != 0
}

// Equal reports whether s and other contain exactly the same members.
// DFA state identity is decided by this comparison.
func (s *StateSet) Equal(other *StateSet) bool {
	if len(s.bits) != len(other.bits) {
		return false
	}
	for i := range s.bits {
		if s.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s *StateSet) Clone() *StateSet {
	bits := make([]uint64, len(s.bits))
	copy(bits, s.bits)
	return &StateSet{bits: bits, size: s.size}
}

// ForEach calls f once for every member, in increasing StateID order.
func (s *StateSet) ForEach(f func(nfa.StateID)) {
	for i := 0; i < s.size; i++ {
		if s.Contains(nfa.StateID(i)) {
			f(nfa.StateID(i))
		}
	}
}

// IsEmpty reports whether the set has no members.
func (s *StateSet) IsEmpty() bool {
	for _, w := range s.bits {
		if w != 0 {
			return false
		}
	}
	return true
}
