package dfa

import "github.com/coregx/regrex/internal/nfa"

// Builder performs subset construction over an nfa.NFA, registering DFA
// states from a fixed-capacity arena as it discovers them. A Builder is
// single-use: create one with NewBuilder, call Build once.
type Builder struct {
	nfa      *nfa.NFA
	limit    int
	universe int // size of the NFA state-set bit vector
	states   []State
}

// NewBuilder creates a Builder that determinizes n, registering at most
// limit DFA states.
func NewBuilder(n *nfa.NFA, limit int) *Builder {
	return &Builder{nfa: n, limit: limit, universe: n.NumStates()}
}

// Build runs subset construction to completion and returns the resulting
// DFA, or a *CapacityError if more than limit distinct NFA state sets are
// discovered.
func (b *Builder) Build() (*DFA, error) {
	initial := NewStateSet(b.universe)
	initial.Add(b.nfa.Entry)
	b.epsilonClosure(initial)

	initialIdx, err := b.register(initial)
	if err != nil {
		return nil, err
	}

	// Work queue is implicit: scan for any not-yet-expanded state. Since
	// register appends new, unvisited states to b.states, growing the
	// slice during iteration naturally drains the queue.
	for i := 0; i < len(b.states); i++ {
		moves := b.move(b.states[i].Members)
		for _, m := range moves {
			b.epsilonClosure(m.set)
			targetIdx, err := b.register(m.set)
			if err != nil {
				return nil, err
			}
			b.states[i].transitions = append(b.states[i].transitions, Transition{
				Byte:   m.b,
				Target: targetIdx,
			})
		}
	}

	return &DFA{states: b.states, Initial: initialIdx}, nil
}

// epsilonClosure grows set in place to include every NFA state reachable
// from a state already in set via any number of epsilon transitions. Each
// state is expanded at most once because membership is checked before
// pushing onto the work stack.
func (b *Builder) epsilonClosure(set *StateSet) {
	var stack []nfa.StateID
	set.ForEach(func(id nfa.StateID) {
		stack = append(stack, id)
	})

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, tr := range b.nfa.State(id).Transitions() {
			if tr.Epsilon && !set.Contains(tr.Target) {
				set.Add(tr.Target)
				stack = append(stack, tr.Target)
			}
		}
	}
}

type byteMove struct {
	b   byte
	set *StateSet
}

// move returns, for each distinct byte that labels some non-epsilon
// transition leaving a state in set, the union of the targets of those
// transitions: duplicate-byte transitions merge by set union.
func (b *Builder) move(set *StateSet) []byteMove {
	var result []byteMove
	set.ForEach(func(id nfa.StateID) {
		for _, tr := range b.nfa.State(id).Transitions() {
			if tr.Epsilon {
				continue
			}
			found := false
			for i := range result {
				if result[i].b == tr.Byte {
					result[i].set.Add(tr.Target)
					found = true
					break
				}
			}
			if !found {
				s := NewStateSet(b.universe)
				s.Add(tr.Target)
				result = append(result, byteMove{b: tr.Byte, set: s})
			}
		}
	})
	return result
}

// register looks up members against every already-registered DFA state
// (set equality decides identity) and returns its index, registering a
// new state only if no equal set exists yet.
func (b *Builder) register(members *StateSet) (int, error) {
	for i := range b.states {
		if b.states[i].Members.Equal(members) {
			return i, nil
		}
	}

	if len(b.states) >= b.limit {
		return 0, &CapacityError{Limit: b.limit}
	}

	b.states = append(b.states, State{
		Members:  members,
		Accepted: members.Contains(b.nfa.Exit),
	})
	return len(b.states) - 1, nil
}
