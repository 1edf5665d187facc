package mathtree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/mathtree"
	"github.com/alecthomas/mathtree/lexer"
)

func TestErrorReporting(t *testing.T) {
	p := mathtree.MustBuild()
	_, err := p.ParseString("expr.txt", "1 +\n(2 * 3")
	require.EqualError(t, err, `expr.txt:2:1: unbalanced parentheses: "(" is never closed`)
	perr, ok := err.(mathtree.Error)
	require.True(t, ok)
	require.Equal(t, `unbalanced parentheses: "(" is never closed`, perr.Message())
	require.Equal(t, lexer.Position{Filename: "expr.txt", Offset: 4, Line: 2, Column: 1}, perr.Position())
}

func TestLexErrorUnwraps(t *testing.T) {
	_, err := mathtree.Parse("1 + a")
	var lerr *lexer.Error
	require.True(t, errors.As(err, &lerr))
	require.Equal(t, `invalid character 'a'`, lerr.Message())
	merr, ok := err.(mathtree.Error)
	require.True(t, ok)
	require.Equal(t, lexer.Position{Offset: 4, Line: 1, Column: 5}, merr.Position())
}
