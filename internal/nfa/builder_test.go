package nfa

import (
	"testing"

	"github.com/coregx/regrex/internal/ast"
)

func buildFrom(t *testing.T, pattern string, limit int) *NFA {
	t.Helper()
	tree, err := ast.Parse(pattern)
	if err != nil {
		t.Fatalf("ast.Parse(%q): %v", pattern, err)
	}
	n, err := NewBuilder(limit).Build(tree)
	if err != nil {
		t.Fatalf("Build(%q): %v", pattern, err)
	}
	return n
}

func TestBuilder_LiteralHasByteTransition(t *testing.T) {
	n := buildFrom(t, "a", 128)
	entry := n.State(n.Entry)
	if len(entry.Transitions()) != 1 {
		t.Fatalf("expected 1 transition from entry, got %d", len(entry.Transitions()))
	}
	tr := entry.Transitions()[0]
	if tr.Epsilon || tr.Byte != 'a' || tr.Target != n.Exit {
		t.Fatalf("unexpected transition: %+v", tr)
	}
}

func TestBuilder_EmptyIsEpsilon(t *testing.T) {
	n := buildFrom(t, "", 128)
	entry := n.State(n.Entry)
	if len(entry.Transitions()) != 1 || !entry.Transitions()[0].Epsilon {
		t.Fatalf("expected single epsilon transition, got %+v", entry.Transitions())
	}
}

func TestBuilder_CapacityExceeded(t *testing.T) {
	// Each concatenation allocates a fresh mid state: 50 concatenated atoms
	// need 51 states (entry, exit, 49 mids), far over a limit of 4.
	pattern := ""
	for i := 0; i < 50; i++ {
		pattern += "a"
	}
	_, err := NewBuilder(4).Build(mustParse(t, pattern))
	if err == nil {
		t.Fatal("expected capacity error")
	}
	var capErr *CapacityError
	if ce, ok := err.(*CapacityError); ok {
		capErr = ce
	}
	if capErr == nil {
		t.Fatalf("expected *CapacityError, got %T: %v", err, err)
	}
}

func mustParse(t *testing.T, pattern string) *ast.Node {
	t.Helper()
	tree, err := ast.Parse(pattern)
	if err != nil {
		t.Fatalf("ast.Parse(%q): %v", pattern, err)
	}
	return tree
}

func TestBuilder_StateIDsAreStable(t *testing.T) {
	n := buildFrom(t, "a|b", 128)
	// Re-fetching the same ID must return the same transitions.
	id := n.Entry
	first := n.State(id).Transitions()
	second := n.State(id).Transitions()
	if len(first) != len(second) {
		t.Fatalf("state transitions changed between reads")
	}
}
