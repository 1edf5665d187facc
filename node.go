package mathtree

import (
	"github.com/alecthomas/mathtree/lexer"
)

// Op is a binary operator.
type Op rune

// Supported operators.
const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

func isOp(o Op) bool {
	switch o {
	case Add, Sub, Mul, Div:
		return true
	}
	return false
}

func (o Op) String() string { return string(rune(o)) }

// GoString implements fmt.GoStringer.
func (o Op) GoString() string {
	switch o {
	case Add:
		return "mathtree.Add"
	case Sub:
		return "mathtree.Sub"
	case Mul:
		return "mathtree.Mul"
	case Div:
		return "mathtree.Div"
	}
	return "mathtree.Op(?)"
}

// Apply the operator to two operands using IEEE-754 arithmetic.
func (o Op) Apply(l, r float64) float64 {
	switch o {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	}
	panic("unsupported operator " + string(rune(o)))
}

// A Node in an expression tree. It is either a *Leaf or a *Binary.
type Node interface {
	// Position of the token the node was built from.
	Position() lexer.Position
	node()
}

// Leaf is a numeric literal.
type Leaf struct {
	Pos lexer.Position
	// Text is the literal as it appeared in the source, including a folded "-" sign.
	Text  string
	Value float64
}

func (l *Leaf) Position() lexer.Position { return l.Pos }
func (l *Leaf) node()                    {}

// Binary applies Op to the values of Left and Right.
type Binary struct {
	Pos   lexer.Position
	Op    Op
	Left  Node
	Right Node

	// TermCount is the number of additive terms this node expands to when printed. It is only valid
	// after Annotate.
	TermCount int
}

func (b *Binary) Position() lexer.Position { return b.Pos }
func (b *Binary) node()                    {}
