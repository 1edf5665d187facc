package mathtree

import (
	"io"

	"github.com/alecthomas/mathtree/lexer"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Lexer is an Option that sets the lexer to use.
//
// The Definition must export the symbols "Number", "Operator" and "Paren". Operator tokens must be one
// of "+-*/" and Paren tokens one of "()".
func Lexer(def lexer.Definition) Option {
	return func(p *Parser) error {
		p.lex = def
		return nil
	}
}

// Trace the construction of each tree to "w".
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}
