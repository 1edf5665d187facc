package mathtree

// Annotate computes Binary.TermCount for every node in the tree rooted at "n" and returns the term count
// of "n" itself.
//
// A leaf is one term, "+" and "-" nodes have the sum of their children's terms and "*" and "/" nodes are
// always a single term.
func Annotate(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 1
	case *Binary:
		left, right := Annotate(n.Left), Annotate(n.Right)
		switch n.Op {
		case Add, Sub:
			n.TermCount = left + right
		default:
			n.TermCount = 1
		}
		return n.TermCount
	}
	panic("unsupported node")
}
