package mathtree

// Visitor is called for every node during Visit. Calling "next" visits the node's children, which
// allows both pre-order and post-order walks.
type Visitor func(n Node, next func() error) error

// Visit all nodes in the tree rooted at "n", left child first.
//
// Visiting stops at the first error returned by "visitor".
func Visit(n Node, visitor Visitor) error {
	return visitor(n, func() error {
		switch n := n.(type) {
		case *Binary:
			if err := Visit(n.Left, visitor); err != nil {
				return err
			}
			return Visit(n.Right, visitor)

		case *Leaf:

		default:
			panic("unsupported node")
		}
		return nil
	})
}
