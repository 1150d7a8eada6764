package nfa

import "github.com/coregx/regrex/internal/ast"

// Builder performs Thompson construction over an ast.Node, allocating
// states from a fixed-capacity arena as it goes. A Builder is single-use:
// create one with NewBuilder, call Build once.
type Builder struct {
	limit  int
	states []State
}

// NewBuilder creates a Builder whose arena holds at most limit states.
func NewBuilder(limit int) *Builder {
	return &Builder{limit: limit}
}

// Build compiles tree into an NFA via Thompson construction. Two fresh
// states are allocated as the overall entry and exit, then gen recursively
// wires transitions so that tree is matched by some path from entry to
// exit.
func (b *Builder) Build(tree *ast.Node) (*NFA, error) {
	entry, err := b.alloc()
	if err != nil {
		return nil, err
	}
	exit, err := b.alloc()
	if err != nil {
		return nil, err
	}

	if err := b.gen(tree, entry, exit); err != nil {
		return nil, err
	}

	return &NFA{states: b.states, Entry: entry, Exit: exit}, nil
}

func (b *Builder) alloc() (StateID, error) {
	if len(b.states) >= b.limit {
		return 0, &CapacityError{Limit: b.limit}
	}
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id})
	return id, nil
}

func (b *Builder) addEpsilon(from, to StateID) {
	s := &b.states[from]
	s.transitions = append(s.transitions, Transition{Epsilon: true, Target: to})
}

func (b *Builder) addByte(from StateID, c byte, to StateID) {
	s := &b.states[from]
	s.transitions = append(s.transitions, Transition{Byte: c, Target: to})
}

// gen adds transitions to the arena such that node is matched by some path
// from in to out.
func (b *Builder) gen(node *ast.Node, in, out StateID) error {
	switch node.Op {
	case ast.OpChar:
		b.addByte(in, node.Char, out)
		return nil

	case ast.OpEmpty:
		b.addEpsilon(in, out)
		return nil

	case ast.OpUnion:
		if err := b.gen(node.Left, in, out); err != nil {
			return err
		}
		return b.gen(node.Right, in, out)

	case ast.OpConcat:
		mid, err := b.alloc()
		if err != nil {
			return err
		}
		if err := b.gen(node.Left, in, mid); err != nil {
			return err
		}
		return b.gen(node.Right, mid, out)

	case ast.OpClosure:
		a, err := b.alloc()
		if err != nil {
			return err
		}
		c, err := b.alloc()
		if err != nil {
			return err
		}
		b.addEpsilon(in, a)
		if err := b.gen(node.Left, a, c); err != nil {
			return err
		}
		b.addEpsilon(c, a)  // loop back
		b.addEpsilon(a, out) // skip
		return nil

	default:
		panic("nfa: unreachable ast.Op in gen")
	}
}
