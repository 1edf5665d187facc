package mathtree

// Evaluate the tree rooted at "n".
//
// A *DivisionByZeroError is returned if the right operand of any "/" evaluates to exactly zero.
func Evaluate(n Node) (float64, error) {
	switch n := n.(type) {
	case *Leaf:
		return n.Value, nil

	case *Binary:
		l, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		if n.Op == Div && r == 0 {
			return 0, &DivisionByZeroError{Pos: n.Pos}
		}
		return n.Op.Apply(l, r), nil
	}
	panic("unsupported node")
}
