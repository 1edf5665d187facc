package mathtree

import (
	"strconv"
	"strings"
)

// Render the tree rooted at "n" as an infix expression with the minimum parentheses required to
// preserve its evaluation order.
//
// Tokens are separated by a single space, eg. "2 - ( 3 + 4 )". Term counts are recomputed on each call.
//
// A signed literal anywhere other than the start of the expression or of a group is wrapped in its own
// group, eg. "1 - ( -3 )", so that the output parses back into the same tree.
func Render(n Node) string {
	Annotate(n)
	p := &printer{}
	p.print(n, true)
	return p.String()
}

type printer struct {
	strings.Builder
}

// print writes "n". "leading" is true if "n" starts the output or directly follows "(", the only places
// a signed literal can be read back as one token.
func (p *printer) print(n Node, leading bool) {
	switch n := n.(type) {
	case *Leaf:
		if !leading && isSigned(n.Text) {
			p.group(n)
			return
		}
		p.WriteString(n.Text)

	case *Binary:
		var groupLeft, groupRight bool
		switch n.Op {
		case Add:
		case Sub:
			groupRight = terms(n.Right) != 1
		case Mul:
			groupLeft = terms(n.Left) != 1
			groupRight = terms(n.Right) != 1
		case Div:
			groupLeft = terms(n.Left) != 1
			groupRight = !isPlainNumber(n.Right)
		}
		if groupLeft {
			p.group(n.Left)
		} else {
			p.print(n.Left, leading)
		}
		p.WriteString(" " + n.Op.String() + " ")
		if groupRight {
			p.group(n.Right)
		} else {
			p.print(n.Right, false)
		}

	default:
		panic("unsupported node")
	}
}

func (p *printer) group(n Node) {
	p.WriteString("( ")
	p.print(n, true)
	p.WriteString(" )")
}

// isPlainNumber reports whether "n" renders as an unsigned number literal.
func isPlainNumber(n Node) bool {
	sub := &printer{}
	sub.print(n, true)
	r := sub.String()
	if isSigned(r) {
		return false
	}
	_, err := strconv.ParseFloat(r, 64)
	return err == nil
}

func isSigned(text string) bool {
	return strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+")
}

func terms(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 1
	case *Binary:
		return n.TermCount
	}
	panic("unsupported node")
}
