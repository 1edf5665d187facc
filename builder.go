package mathtree

import (
	"math"
	"strconv"

	"github.com/alecthomas/mathtree/lexer"
)

type slotKind int

const (
	parenSlot slotKind = iota
	opSlot
	leafSlot
)

// slot is a node of the tree under construction. Paren slots mark an open "(" and never survive into
// the finished tree.
type slot struct {
	kind  slotKind
	tok   Token
	op    Op
	value float64
	left  *slot
	right *slot
}

// precedence of each slot kind, lowest binding first. Leaves bind tightest so that an operator following
// a number always unwinds past it.
func (s *slot) precedence() int {
	switch s.kind {
	case parenSlot:
		return 1
	case leafSlot:
		return 4
	case opSlot:
		return opPrecedence(s.op)
	}
	panic("unsupported slot")
}

func opPrecedence(op Op) int {
	switch op {
	case Add, Sub:
		return 2
	case Mul, Div:
		return 3
	}
	panic("unsupported operator " + string(rune(op)))
}

// builder constructs a tree by precedence climbing over an explicit stack of open ancestors.
//
// "stack" always holds the ancestors of "cur", outermost first. The outermost is a synthetic "("
// sentinel wrapping the whole expression.
type builder struct {
	trace  *tracer
	cur    *slot
	stack  []*slot
	depth  int // unmatched "("
	opened []Token
	// expectOperand is true when the next token must be a Number or "(".
	expectOperand bool
}

func newBuilder(trace *tracer) *builder {
	return &builder{trace: trace, cur: &slot{kind: parenSlot}, expectOperand: true}
}

func (b *builder) push(s *slot) { b.stack = append(b.stack, s) }

func (b *builder) pop() *slot {
	s := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return s
}

func (b *builder) build(tokens []Token, eof lexer.Position) (Node, error) {
	for _, tok := range tokens {
		var err error
		switch tok.Type {
		case LParenToken:
			err = b.openParen(tok)
		case RParenToken:
			err = b.closeParen(tok)
		case NumberToken:
			err = b.number(tok)
		case OperatorToken:
			err = b.operator(tok)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(tokens) == 0 {
		return nil, malformedf(eof, "empty expression")
	}
	if b.expectOperand {
		last := tokens[len(tokens)-1]
		if last.Type == OperatorToken {
			return nil, malformedf(last.Pos, "operator %q is missing its right operand", last.Value)
		}
		return nil, malformedf(eof, "unexpected end of expression after %q", last.Value)
	}
	if b.depth > 0 {
		open := b.opened[len(b.opened)-1]
		return nil, malformedf(open.Pos, "unbalanced parentheses: %q is never closed", open.Value)
	}
	root := b.cur.right
	if len(b.stack) > 0 {
		root = b.stack[0].right
	}
	return freeze(root), nil
}

func (b *builder) openParen(tok Token) error {
	if !b.expectOperand {
		return malformedf(tok.Pos, "unexpected %q after operand", tok.Value)
	}
	paren := &slot{kind: parenSlot, tok: tok}
	b.cur.right = paren
	b.push(b.cur)
	b.cur = paren
	b.depth++
	b.opened = append(b.opened, tok)
	b.trace.printf(len(b.stack), tok, "open")
	return nil
}

func (b *builder) closeParen(tok Token) error {
	if b.depth == 0 {
		return malformedf(tok.Pos, "unbalanced parentheses: unexpected %q", tok.Value)
	}
	if b.expectOperand {
		return malformedf(tok.Pos, "unexpected %q, expected a number or %q", tok.Value, "(")
	}
	// A group closed directly inside another leaves the outer "(" as cur, off the stack.
	paren := b.cur
	if paren.kind != parenSlot {
		for b.stack[len(b.stack)-1].kind != parenSlot {
			b.pop()
		}
		paren = b.pop()
	}
	b.cur = b.pop()
	b.cur.right = paren.right
	b.depth--
	b.opened = b.opened[:len(b.opened)-1]
	b.trace.printf(len(b.stack), tok, "close")
	return nil
}

func (b *builder) number(tok Token) error {
	if !b.expectOperand {
		return malformedf(tok.Pos, "unexpected number %q after operand", tok.Value)
	}
	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil || math.IsInf(value, 0) {
		return malformedf(tok.Pos, "number %q is out of range", tok.Value)
	}
	leaf := &slot{kind: leafSlot, tok: tok, value: value}
	b.cur.right = leaf
	b.push(b.cur)
	b.cur = leaf
	b.expectOperand = false
	b.trace.printf(len(b.stack), tok, "leaf")
	return nil
}

func (b *builder) operator(tok Token) error {
	if b.expectOperand {
		return malformedf(tok.Pos, "operator %q is missing its left operand", tok.Value)
	}
	op := Op(tok.Value[0])
	prec := opPrecedence(op)
	for b.cur.precedence() >= prec {
		b.cur = b.pop()
		b.trace.printf(len(b.stack), tok, "unwind to %s", b.cur.describe())
	}
	node := &slot{kind: opSlot, tok: tok, op: op, left: b.cur.right}
	b.cur.right = node
	b.push(b.cur)
	b.cur = node
	b.expectOperand = true
	b.trace.printf(len(b.stack), tok, "operator")
	return nil
}

func (s *slot) describe() string {
	switch s.kind {
	case parenSlot:
		return "("
	case opSlot:
		return s.op.String()
	}
	return s.tok.Value
}

// freeze converts the finished slots into Nodes.
func freeze(s *slot) Node {
	switch s.kind {
	case leafSlot:
		return &Leaf{Pos: s.tok.Pos, Text: s.tok.Value, Value: s.value}
	case opSlot:
		return &Binary{Pos: s.tok.Pos, Op: s.op, Left: freeze(s.left), Right: freeze(s.right)}
	}
	panic("parenthesis slot left in finished tree")
}
