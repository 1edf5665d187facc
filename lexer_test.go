package mathtree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/mathtree"
	"github.com/alecthomas/mathtree/lexer"
)

func values(tokens []mathtree.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple", "3.4 + 4 * 2.8", []string{"3.4", "+", "4", "*", "2.8"}},
		{"NoWhitespace", "(1+2)/3", []string{"(", "1", "+", "2", ")", "/", "3"}},
		{"LeadingMinus", "-8.4 - 9 / 3.7", []string{"-8.4", "-", "9", "/", "3.7"}},
		{"LeadingPlus", "+8 - 9", []string{"8", "-", "9"}},
		{"SignAfterParen", "2 * (-3 + 1)", []string{"2", "*", "(", "-3", "+", "1", ")"}},
		{"PlusAfterParen", "(+3)", []string{"(", "3", ")"}},
		{"NestedSigns", "((-1) - (+2))", []string{"(", "(", "-1", ")", "-", "(", "2", ")", ")"}},
		{"BinaryMinusKept", "1 - 2", []string{"1", "-", "2"}},
		{"LiteralsDoNotMerge", "1 2", []string{"1", "2"}},
		{"Empty", "", []string{}},
		{"Whitespace", " \t\n ", []string{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens, err := mathtree.Tokenize("", test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, values(tokens))
		})
	}
}

func TestTokenizeTypesAndPositions(t *testing.T) {
	tokens, err := mathtree.Tokenize("", "(-1)*2")
	require.NoError(t, err)
	require.Equal(t, []mathtree.Token{
		{Type: mathtree.LParenToken, Value: "(", Pos: lexer.Position{Offset: 0, Line: 1, Column: 1}},
		{Type: mathtree.NumberToken, Value: "-1", Pos: lexer.Position{Offset: 1, Line: 1, Column: 2}},
		{Type: mathtree.RParenToken, Value: ")", Pos: lexer.Position{Offset: 3, Line: 1, Column: 4}},
		{Type: mathtree.OperatorToken, Value: "*", Pos: lexer.Position{Offset: 4, Line: 1, Column: 5}},
		{Type: mathtree.NumberToken, Value: "2", Pos: lexer.Position{Offset: 5, Line: 1, Column: 6}},
	}, tokens)
}

func TestTokenizeLexError(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{"2 + x", `1:5: invalid character 'x'`},
		{"2 ^ 3", `1:3: invalid character '^'`},
		{"1.", `1:2: invalid character '.'`},
		{"1 +\n 2 % 3", `2:4: invalid character '%'`},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := mathtree.Tokenize("", test.input)
			require.EqualError(t, err, test.err)
			var lerr *mathtree.LexError
			require.True(t, errors.As(err, &lerr))
		})
	}
}

func TestTokenizeDanglingSign(t *testing.T) {
	for _, input := range []string{"-", "-(1)", "(+ (2))", "--1", "2 * (- )"} {
		t.Run(input, func(t *testing.T) {
			_, err := mathtree.Tokenize("", input)
			var merr *mathtree.MalformedExpressionError
			require.True(t, errors.As(err, &merr), "%v", err)
		})
	}
}
