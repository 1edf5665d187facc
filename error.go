package mathtree

import (
	"fmt"

	"github.com/alecthomas/mathtree/lexer"
)

// Error represents an error while tokenizing, building or evaluating an expression.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

var (
	_ Error = &LexError{}
	_ Error = &MalformedExpressionError{}
	_ Error = &DivisionByZeroError{}
)

// LexError is returned when the input contains text outside the accepted token grammar.
type LexError struct {
	Err *lexer.Error
}

func (l *LexError) Error() string            { return l.Err.Error() }
func (l *LexError) Message() string          { return l.Err.Message() } // nolint: golint
func (l *LexError) Position() lexer.Position { return l.Err.Position() } // nolint: golint
func (l *LexError) Unwrap() error            { return l.Err }

// MalformedExpressionError is returned for unbalanced parentheses, dangling operators, empty input or a
// unary sign that is not followed by a number.
type MalformedExpressionError struct {
	Msg string
	Pos lexer.Position
}

func malformedf(pos lexer.Position, format string, args ...interface{}) *MalformedExpressionError {
	return &MalformedExpressionError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (m *MalformedExpressionError) Error() string            { return lexer.FormatError(m.Pos, m.Msg) }
func (m *MalformedExpressionError) Message() string          { return m.Msg } // nolint: golint
func (m *MalformedExpressionError) Position() lexer.Position { return m.Pos } // nolint: golint

// DivisionByZeroError is returned by Evaluate when the right operand of a division evaluates to zero.
//
// Pos is the position of the "/" operator.
type DivisionByZeroError struct {
	Pos lexer.Position
}

func (d *DivisionByZeroError) Error() string            { return lexer.FormatError(d.Pos, d.Message()) }
func (d *DivisionByZeroError) Message() string          { return "division by zero" } // nolint: golint
func (d *DivisionByZeroError) Position() lexer.Position { return d.Pos }               // nolint: golint
