package pasteparser

import (
	_ "embed"
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of the published grammar.
const GrammarStart = "Paste"

//go:embed grammar.ebnf
var grammarSource string

// GrammarSource returns the EBNF text describing the syntax DefaultGrammar
// accepts. Whitespace other than line breaks may appear between any two
// tokens; line breaks matter only inside matrices.
func GrammarSource() string {
	return grammarSource
}

// GrammarEBNF parses the published grammar.
func GrammarEBNF() (ebnf.Grammar, error) {
	return ebnf.Parse("grammar.ebnf", strings.NewReader(grammarSource))
}

// VerifyGrammar checks that the published grammar is complete and that every
// production is reachable from GrammarStart.
func VerifyGrammar() error {
	g, err := GrammarEBNF()
	if err != nil {
		return err
	}
	return ebnf.Verify(g, GrammarStart)
}
