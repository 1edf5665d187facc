// Package exprgen generates random arithmetic expressions in the syntax accepted by mathtree.
package exprgen

import (
	"math"
	"math/rand"
	"strconv"
)

// DefaultStddev is the default standard deviation used when generating random numbers.
const DefaultStddev = 10

var ops = []string{"+", "-", "*", "/"}

// A Generator generates random expressions.
type Generator struct {
	// If NoReals is set, all numerical constants will be integers.
	NoReals bool

	// If Signs is set, numbers in a sign position (the start of the expression or directly after "(")
	// may carry a unary "+" or "-".
	Signs bool

	// Stddev specifies the standard deviation for generating random numbers on a normal distribution.
	// If this is 0, DefaultStddev is used.
	Stddev float64

	// Rand is the source of randomness. If nil, the global source is used.
	Rand *rand.Rand
}

// Generate a random expression with a given maximum nesting depth.
//
// If maxDepth is 0, the result is a single number.
func (g *Generator) Generate(maxDepth int) string {
	return g.generate(maxDepth, true)
}

func (g *Generator) generate(maxDepth int, leading bool) string {
	if maxDepth == 0 || g.intn(maxDepth+1) == 0 {
		return g.operand(maxDepth, leading)
	}
	op := ops[g.intn(len(ops))]
	left := g.generate(maxDepth-1, leading)
	right := g.operand(maxDepth-1, false)
	return left + " " + op + " " + right
}

// operand is a number or, one time in three, a parenthesised sub-expression.
func (g *Generator) operand(maxDepth int, leading bool) string {
	if maxDepth > 0 && g.intn(3) == 0 {
		return "(" + g.generate(maxDepth-1, true) + ")"
	}
	num := g.number()
	if leading && g.Signs {
		switch g.intn(3) {
		case 0:
			num = "-" + num
		case 1:
			num = "+" + num
		}
	}
	return num
}

func (g *Generator) number() string {
	s := g.Stddev
	if s == 0 {
		s = DefaultStddev
	}
	num := math.Abs(g.normFloat64() * s)
	if g.NoReals {
		return strconv.Itoa(int(num + 0.5))
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

func (g *Generator) intn(n int) int {
	if g.Rand != nil {
		return g.Rand.Intn(n)
	}
	return rand.Intn(n)
}

func (g *Generator) normFloat64() float64 {
	if g.Rand != nil {
		return g.Rand.NormFloat64()
	}
	return rand.NormFloat64()
}
