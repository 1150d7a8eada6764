// Package scanner drives a compiled DFA over an input string to find the
// leftmost, longest non-empty match.
package scanner

import "github.com/coregx/regrex/internal/dfa"

// Search returns the span of the leftmost non-empty match of d in input,
// or ok=false if no start offset admits one.
//
// For each start in 0..len(input), the scanner walks the DFA byte by byte,
// remembering the last position at which the current state was accepting.
// It commits to the first start that yields any non-empty match: a later
// start is never preferred over an earlier one even if it would produce a
// longer match.
func Search(d *dfa.DFA, input string) (start, end int, ok bool) {
	for s := 0; s <= len(input); s++ {
		state := d.Initial
		lastAccept := -1
		p := s

		for {
			if d.State(state).Accepted {
				lastAccept = p
			}
			if p >= len(input) {
				break
			}
			next, has := d.State(state).Next(input[p])
			if !has {
				break
			}
			state = next
			p++
		}

		if lastAccept >= 0 && lastAccept > s {
			return s, lastAccept, true
		}
	}
	return 0, 0, false
}
