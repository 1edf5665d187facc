package mathtree_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/mathtree"
	"github.com/alecthomas/mathtree/internal/exprgen"
)

var errRefDivByZero = errors.New("division by zero")

// refEval is a recursive descent evaluator used as an oracle. It shares no code with the tree builder.
type refEval struct {
	toks []string
	pos  int
}

func referenceEval(expr string) (float64, error) {
	spaced := strings.NewReplacer("(", " ( ", ")", " ) ", "+", " + ", "-", " - ", "*", " * ", "/", " / ").Replace(expr)
	r := &refEval{toks: strings.Fields(spaced)}
	v, err := r.expr()
	if err != nil {
		return 0, err
	}
	if r.pos != len(r.toks) {
		return 0, errors.New("trailing tokens")
	}
	return v, nil
}

func (r *refEval) peek() string {
	if r.pos < len(r.toks) {
		return r.toks[r.pos]
	}
	return ""
}

func (r *refEval) next() string {
	t := r.peek()
	r.pos++
	return t
}

func (r *refEval) expr() (float64, error) {
	l, err := r.term()
	if err != nil {
		return 0, err
	}
	for r.peek() == "+" || r.peek() == "-" {
		op := r.next()
		rhs, err := r.term()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			l += rhs
		} else {
			l -= rhs
		}
	}
	return l, nil
}

func (r *refEval) term() (float64, error) {
	l, err := r.factor()
	if err != nil {
		return 0, err
	}
	for r.peek() == "*" || r.peek() == "/" {
		op := r.next()
		rhs, err := r.factor()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			l *= rhs
		} else {
			if rhs == 0 {
				return 0, errRefDivByZero
			}
			l /= rhs
		}
	}
	return l, nil
}

func (r *refEval) factor() (float64, error) {
	switch tok := r.next(); tok {
	case "(":
		v, err := r.expr()
		if err != nil {
			return 0, err
		}
		if r.next() != ")" {
			return 0, errors.New("expected )")
		}
		return v, nil
	case "-", "+":
		v, err := strconv.ParseFloat(r.next(), 64)
		if tok == "-" {
			v = -v
		}
		return v, err
	default:
		return strconv.ParseFloat(tok, 64)
	}
}

func TestReferenceEvaluator(t *testing.T) {
	v, err := referenceEval("(-8.4 - 9 / 3.7) * 5.008 + (8.2 - 5.5)/8")
	require.NoError(t, err)
	require.InDelta(t, (-8.4-9/3.7)*5.008+(8.2-5.5)/8, v, 1e-12)
	_, err = referenceEval("1 / (2 - 2)")
	require.Equal(t, errRefDivByZero, err)
}

func TestEvaluateMatchesReference(t *testing.T) {
	nested := 0
	for _, g := range []*exprgen.Generator{
		{Rand: rand.New(rand.NewSource(1)), Signs: true},
		{Rand: rand.New(rand.NewSource(2)), Signs: true, NoReals: true},
	} {
		for i := 0; i < 500; i++ {
			expr := g.Generate(5)
			if strings.Contains(expr, "((") {
				nested++
			}
			expected, refErr := referenceEval(expr)
			tree, err := mathtree.Parse(expr)
			require.NoError(t, err, expr)
			actual, err := tree.Evaluate()
			if refErr != nil {
				var div *mathtree.DivisionByZeroError
				require.True(t, errors.As(err, &div), "%s: expected division by zero, got %v", expr, err)
				continue
			}
			require.NoError(t, err, expr)
			require.Equal(t, expected, actual, expr)
		}
	}
	require.NotZero(t, nested, "expected some directly nested groups")
}

// Without division and with small integers every intermediate value is exact, so reassociation by the
// printer cannot change the result.
func TestRenderPreservesValueExactly(t *testing.T) {
	g := &exprgen.Generator{Rand: rand.New(rand.NewSource(3)), Signs: true, NoReals: true, Stddev: 5}
	for i := 0; i < 500; i++ {
		expr := strings.ReplaceAll(g.Generate(3), "/", "*")
		tree, err := mathtree.Parse(expr)
		require.NoError(t, err, expr)
		expected, err := tree.Evaluate()
		require.NoError(t, err, expr)

		rendered := tree.String()
		rebuilt, err := mathtree.Parse(rendered)
		require.NoError(t, err, "%s rendered as %s", expr, rendered)
		actual, err := rebuilt.Evaluate()
		require.NoError(t, err, rendered)
		require.Equal(t, expected, actual, "%s rendered as %s", expr, rendered)
	}
}

func TestRenderPreservesValue(t *testing.T) {
	g := &exprgen.Generator{Rand: rand.New(rand.NewSource(4)), Signs: true}
	for i := 0; i < 500; i++ {
		expr := g.Generate(3)
		tree, err := mathtree.Parse(expr)
		require.NoError(t, err, expr)
		expected, err := tree.Evaluate()
		require.NoError(t, err, expr)

		rendered := tree.String()
		rebuilt, err := mathtree.Parse(rendered)
		require.NoError(t, err, "%s rendered as %s", expr, rendered)
		actual, err := rebuilt.Evaluate()
		require.NoError(t, err, rendered)
		require.InDelta(t, expected, actual, 1e-6*math.Max(1, math.Abs(expected)), "%s rendered as %s", expr, rendered)
	}
}

func TestEvaluateMatchesReferenceSamples(t *testing.T) {
	for _, expr := range []string{
		"3.4 + 4 * 2.8",
		"8 - 9.6 / 3",
		"(-8.4 - 9 / 3.7) * 5.008 + (8.2 - 5.5)/8",
		"-8.4 - 9 / 3.7",
		"((2.1 - 3) + 5) / 4.2 - (3.8 + 7)",
		"((1.5 + 2)) * ((3))",
		"(((-1.25) - 2) / ((0.5 + 4)))",
		"2 / ((3 - 1) * (((4))))",
	} {
		expected, err := referenceEval(expr)
		require.NoError(t, err)
		tree, err := mathtree.Parse(expr)
		require.NoError(t, err)
		actual, err := tree.Evaluate()
		require.NoError(t, err)
		require.Equal(t, expected, actual, expr)
	}
}
