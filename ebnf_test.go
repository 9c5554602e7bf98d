package pasteparser

import (
	"testing"

	"golang.org/x/exp/ebnf"
)

func TestVerifyGrammar(t *testing.T) {
	if err := VerifyGrammar(); err != nil {
		t.Fatal(err)
	}
	g, err := GrammarEBNF()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{GrammarStart, "Matrix", "Polar", "Cartesian", "Magnitude", "number"} {
		if g[name] == nil {
			t.Errorf("no production %s", name)
		}
	}
}

func TestGrammarEmptyRows(t *testing.T) {
	g, err := GrammarEBNF()
	if err != nil {
		t.Fatal(err)
	}
	// Matrix = "[" [ Row ] { RowSep [ Row ] } "]"
	seq, ok := g["Matrix"].Expr.(ebnf.Sequence)
	if !ok || len(seq) != 4 {
		t.Fatalf("Matrix is %#v, want a sequence of 4", g["Matrix"].Expr)
	}
	if _, ok := seq[1].(*ebnf.Option); !ok {
		t.Errorf("first row is %T, want optional", seq[1])
	}
	rep, ok := seq[2].(*ebnf.Repetition)
	if !ok {
		t.Fatalf("later rows are %T, want repetition", seq[2])
	}
	body, ok := rep.Body.(ebnf.Sequence)
	if !ok || len(body) != 2 {
		t.Fatalf("repeated rows are %#v, want a sequence of 2", rep.Body)
	}
	if _, ok := body[1].(*ebnf.Option); !ok {
		t.Errorf("row after separator is %T, want optional", body[1])
	}
}
