// Package mathtree builds binary expression trees from infix arithmetic expressions.
//
// The accepted language is decimal literals, the four binary operators "+ - * /", parentheses, and a
// unary sign that may appear at the start of the expression or immediately after "(":
//
//     -8.4 - 9 / 3.7
//     (2.1 - 3 + 5) / 4.2 - (+3.8 + 7)
//
// A Tree can be evaluated, or rendered back to an infix string with the fewest parentheses needed to
// preserve its evaluation order:
//
//     tree, err := mathtree.Parse("5 - (3 + 1) * (2)")
//     fmt.Println(tree)            // 5 - ( 3 + 1 ) * 2
//     value, err := tree.Evaluate() // -3
//
// Operators of equal precedence associate left to right.
package mathtree
