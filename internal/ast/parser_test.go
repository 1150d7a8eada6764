package ast

import (
	"errors"
	"testing"
)

func TestParse_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string // tree dump
	}{
		{"empty pattern", "", "EMPTY"},
		{"union alone", "|", "(union EMPTY EMPTY)"},
		{"empty group", "()", "EMPTY"},
		{"empty alternative", "a|", `(union "a" EMPTY)`},
		{"literal", "a", `"a"`},
		{"concat", "ab", `(concat "a" "b")`},
		{"star", "a*", `(closure "a")`},
		{"plus", "a+", `(concat "a" (closure "a"))`},
		{"grouped union", "(a|b)c", `(concat (union "a" "b") "c")`},
		{"chained union with empty", "a||b", `(union (union "a" EMPTY) "b")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tt.pattern, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"(a", ErrUnmatchedParen},
		{"a)", ErrTrailingInput},
		{"*a", ErrUnexpectedToken},
		{"+a", ErrUnexpectedToken},
		{"a**", ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got nil", tt.pattern)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Parse(%q): error %v is not *SyntaxError", tt.pattern, err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q): error %v does not wrap %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestParse_DoubleStarIsSyntaxError(t *testing.T) {
	// a** : factor() consumes "a*", leaving a stray '*' which term() cannot
	// absorb (it is not UNION/RPAR/END) — factor() is called again and
	// its primary() sees STAR and fails.
	_, err := Parse("a**")
	if err == nil {
		t.Fatal("expected a** to be a syntax error")
	}
}

func TestParse_PlusSharesSubtree(t *testing.T) {
	tree, err := Parse("a+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Op != OpConcat {
		t.Fatalf("expected OpConcat root, got %v", tree.Op)
	}
	if tree.Left == nil || tree.Right == nil || tree.Right.Op != OpClosure {
		t.Fatalf("expected Concat(X, Closure(X)), got %s", tree)
	}
	if tree.Left != tree.Right.Left {
		t.Fatalf("expected the same subtree object referenced by both branches")
	}
}
