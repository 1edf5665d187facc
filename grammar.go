package mathtree

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarText is the accepted language in EBNF, as understood by golang.org/x/exp/ebnf.
//
// Whitespace between tokens is ignored. Lower-case productions are lexical.
const GrammarText = `Expression = Lead { Operator Operand } .
Lead       = [ sign ] number | Group .
Operand    = number | Group .
Group      = "(" Lead { Operator Operand } ")" .
Operator   = "+" | "-" | "*" | "/" .
sign       = "+" | "-" .
number     = digits [ "." digits ] .
digits     = digit { digit } .
digit      = "0" … "9" .
`

// Grammar parses and verifies GrammarText, starting from "Expression".
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("grammar.ebnf", strings.NewReader(GrammarText))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, "Expression"); err != nil {
		return nil, err
	}
	return grammar, nil
}
