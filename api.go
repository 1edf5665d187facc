package mathtree

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/mathtree/lexer"
)

// A Parser builds expression trees.
//
// A Parser is safe for concurrent use.
type Parser struct {
	lex      lexer.Definition
	trace    io.Writer
	mappers  []mapperByToken
	compiled []compiledMapper
	elide    []string
	elided   map[rune]bool

	numberType   rune
	operatorType rune
	parenType    rune
}

// Build a Parser.
func Build(options ...Option) (*Parser, error) {
	p := &Parser{lex: DefaultLexer}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	if _, err := lexer.MakeSymbolTable(p.lex, "Number", "Operator", "Paren"); err != nil {
		return nil, err
	}
	symbols := p.lex.Symbols()
	p.numberType = symbols["Number"]
	p.operatorType = symbols["Operator"]
	p.parenType = symbols["Paren"]
	if err := p.compileMappers(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustBuild calls Build(options...) and panics if an error occurs.
func MustBuild(options ...Option) *Parser {
	p, err := Build(options...)
	if err != nil {
		panic(err)
	}
	return p
}

var defaultParser = MustBuild()

// Parse "expr" with the default Parser.
func Parse(expr string) (*Tree, error) {
	return defaultParser.ParseString("", expr)
}

// Tokenize "expr" with the default Parser, folding unary signs into their numbers.
func Tokenize(filename, expr string) ([]Token, error) {
	return defaultParser.Tokenize(filename, strings.NewReader(expr))
}

// Tokenize reads "r" and returns its tokens with unary signs folded into the following numbers.
func (p *Parser) Tokenize(filename string, r io.Reader) ([]Token, error) {
	lex, err := p.lex.Lex(filename, r)
	if err != nil {
		return nil, err
	}
	tokens, _, err := p.tokenize(lex)
	return tokens, err
}

func (p *Parser) tokenize(lex lexer.Lexer) ([]Token, lexer.Position, error) {
	raw, err := lexer.ConsumeAll(lex)
	if err == nil {
		raw, err = p.applyMappers(raw)
	}
	if err != nil {
		if lerr, ok := err.(*lexer.Error); ok {
			return nil, lerr.Pos, &LexError{Err: lerr}
		}
		return nil, lexer.Position{}, err
	}
	tokens, eof, err := p.classify(raw)
	if err != nil {
		return nil, eof, err
	}
	tokens, err = normalizeSigns(tokens)
	return tokens, eof, err
}

func (p *Parser) parse(lex lexer.Lexer) (*Tree, error) {
	tokens, eof, err := p.tokenize(lex)
	if err != nil {
		return nil, err
	}
	var trace *tracer
	if p.trace != nil {
		trace = &tracer{w: p.trace}
	}
	root, err := newBuilder(trace).build(tokens, eof)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: root}, nil
}

// Parse from "r" into a Tree.
//
// "filename" is only used in error positions.
func (p *Parser) Parse(filename string, r io.Reader) (*Tree, error) {
	lex, err := p.lex.Lex(filename, r)
	if err != nil {
		return nil, err
	}
	return p.parse(lex)
}

// ParseString from "s" into a Tree.
func (p *Parser) ParseString(filename string, s string) (*Tree, error) {
	var (
		lex lexer.Lexer
		err error
	)
	if sd, ok := p.lex.(lexer.StringDefinition); ok {
		lex, err = sd.LexString(filename, s)
	} else {
		lex, err = p.lex.Lex(filename, strings.NewReader(s))
	}
	if err != nil {
		return nil, err
	}
	return p.parse(lex)
}

// ParseBytes from "b" into a Tree.
func (p *Parser) ParseBytes(filename string, b []byte) (*Tree, error) {
	return p.Parse(filename, bytes.NewReader(b))
}

// A Tree is a parsed expression.
//
// The structure of a Tree is never modified after parsing. String() rewrites the term count annotations
// under a lock, so a Tree may be rendered and evaluated concurrently.
type Tree struct {
	Root Node

	mu sync.Mutex
}

// Evaluate the tree.
func (t *Tree) Evaluate() (float64, error) {
	return Evaluate(t.Root)
}

// String renders the tree with minimal parentheses.
func (t *Tree) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Render(t.Root)
}
