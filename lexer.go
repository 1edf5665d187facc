package mathtree

import (
	"github.com/alecthomas/mathtree/lexer"
)

// DefaultLexer accepts decimal literals, the operators "+-*/" and parentheses, skipping whitespace.
var DefaultLexer = lexer.Must(lexer.Regexp(
	`(?P<Number>\d+(?:\.\d+)?)` +
		`|(?P<Operator>[-+*/])` +
		`|(?P<Paren>[()])` +
		`|(\s+)`,
))

// TokenType classifies a Token.
type TokenType int

// Token types. Operator tokens are always binary once signs are folded.
const (
	NumberToken TokenType = iota
	OperatorToken
	LParenToken
	RParenToken
)

func (t TokenType) String() string {
	switch t {
	case NumberToken:
		return "Number"
	case OperatorToken:
		return "Operator"
	case LParenToken:
		return "LParen"
	case RParenToken:
		return "RParen"
	}
	return "TokenType(?)"
}

// A Token of an expression, in source order.
type Token struct {
	Type  TokenType
	Value string
	Pos   lexer.Position
}

func (t Token) String() string { return t.Value }

func (t Token) isSign() bool {
	return t.Type == OperatorToken && (t.Value == "+" || t.Value == "-")
}

// classify maps raw lexer tokens onto Tokens, stopping at EOF.
func (p *Parser) classify(raw []lexer.Token) ([]Token, lexer.Position, error) {
	out := make([]Token, 0, len(raw))
	for _, t := range raw {
		switch {
		case t.EOF():
			return out, t.Pos, nil

		case t.Type == p.numberType:
			out = append(out, Token{Type: NumberToken, Value: t.Value, Pos: t.Pos})

		case t.Type == p.operatorType && len(t.Value) == 1 && isOp(Op(t.Value[0])):
			out = append(out, Token{Type: OperatorToken, Value: t.Value, Pos: t.Pos})

		case t.Type == p.parenType && t.Value == "(":
			out = append(out, Token{Type: LParenToken, Value: t.Value, Pos: t.Pos})

		case t.Type == p.parenType && t.Value == ")":
			out = append(out, Token{Type: RParenToken, Value: t.Value, Pos: t.Pos})

		default:
			return nil, t.Pos, &LexError{Err: lexer.Errorf(t.Pos, "unexpected token %q", t.Value)}
		}
	}
	return out, lexer.Position{}, nil
}

// normalizeSigns folds each unary sign into the Number that follows it.
//
// A "+" or "-" is a unary sign if it is the first token or immediately follows "(". A "-" sign is
// prefixed to the number's text, a "+" sign is dropped. The sign token is removed in both cases.
func normalizeSigns(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !tok.isSign() || (i > 0 && tokens[i-1].Type != LParenToken) {
			out = append(out, tok)
			continue
		}
		if i+1 >= len(tokens) || tokens[i+1].Type != NumberToken {
			return nil, malformedf(tok.Pos, "sign %q must be followed by a number", tok.Value)
		}
		num := tokens[i+1]
		if tok.Value == "-" {
			num.Value = "-" + num.Value
		}
		num.Pos = tok.Pos
		out = append(out, num)
		i++
	}
	return out, nil
}
