package mathtree

import (
	"fmt"

	"github.com/alecthomas/mathtree/lexer"
)

type mapperByToken struct {
	symbols []string
	mapper  Mapper
}

// Mapper function for mutating tokens before they are classified.
type Mapper func(token lexer.Token) (lexer.Token, error)

// Map is an Option that configures the Parser to apply a mapping function to each Token from the lexer.
//
// This can be useful to rewrite tokens of a custom Lexer into ones the builder understands, eg. "×" into
// an "*" Operator.
//
// "symbols" specifies the token symbols that the Mapper will be applied to. If empty, all tokens will be mapped.
func Map(mapper Mapper, symbols ...string) Option {
	return func(p *Parser) error {
		p.mappers = append(p.mappers, mapperByToken{
			mapper:  mapper,
			symbols: symbols,
		})
		return nil
	}
}

// Elide drops tokens of the given types before they reach the builder.
func Elide(types ...string) Option {
	return func(p *Parser) error {
		p.elide = append(p.elide, types...)
		return nil
	}
}

// compiledMapper is a mapperByToken with symbol names resolved against the lexer.
type compiledMapper struct {
	table  map[rune]bool
	mapper Mapper
}

func (p *Parser) compileMappers() error {
	symbols := p.lex.Symbols()
	for _, m := range p.mappers {
		cm := compiledMapper{mapper: m.mapper}
		if len(m.symbols) > 0 {
			table, err := lexer.MakeSymbolTable(p.lex, m.symbols...)
			if err != nil {
				return err
			}
			cm.table = table
		}
		p.compiled = append(p.compiled, cm)
	}
	if len(p.elide) > 0 {
		p.elided = map[rune]bool{}
		for _, name := range p.elide {
			rn, ok := symbols[name]
			if !ok {
				return fmt.Errorf("can't elide unknown token type %q", name)
			}
			p.elided[rn] = true
		}
	}
	return nil
}

// applyMappers elides and maps raw tokens. EOF is passed through untouched.
func (p *Parser) applyMappers(raw []lexer.Token) ([]lexer.Token, error) {
	if len(p.compiled) == 0 && len(p.elided) == 0 {
		return raw, nil
	}
	out := make([]lexer.Token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			out = append(out, t)
			continue
		}
		if p.elided[t.Type] {
			continue
		}
		for _, m := range p.compiled {
			if m.table != nil && !m.table[t.Type] {
				continue
			}
			var err error
			t, err = m.mapper(t)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, t)
	}
	return out, nil
}
