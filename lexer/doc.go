// Package lexer defines interfaces and implementations used by mathtree to perform lexing.
//
// The primary interfaces are Definition and Lexer. There is one concrete implementation included,
// the regular expression lexer returned by Regexp.
package lexer
