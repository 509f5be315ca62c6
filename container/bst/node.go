package bst

// Node is a node of a binary search tree. Every value held in the left subtree
// of a node orders before the node's value, and every value held in the right
// subtree orders after it.
//
// Nodes are owned by the Tree they were created by; programs may inspect them
// through the accessor methods but cannot modify them.
type Node[V any] struct {
	value V
	left  *Node[V]
	right *Node[V]
}

// Value returns the value held by n.
func (n *Node[V]) Value() V { return n.value }

// Left returns the root of the left subtree of n, or nil if n has no left
// child.
func (n *Node[V]) Left() *Node[V] { return n.left }

// Right returns the root of the right subtree of n, or nil if n has no right
// child.
func (n *Node[V]) Right() *Node[V] { return n.right }

// Height returns the number of edges on the longest path from n to a leaf.
// A leaf has a height of zero, and the height of a nil node is -1.
//
// Complexity: O(N)
func (n *Node[V]) Height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// Len returns the number of nodes in the subtree rooted at n.
//
// Complexity: O(N)
func (n *Node[V]) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Len() + n.right.Len()
}

// minimum follows the left children of n and returns the value of the last
// one. n must not be nil.
func minimum[V any](n *Node[V]) V {
	for n.left != nil {
		n = n.left
	}
	return n.value
}

func maximum[V any](n *Node[V]) V {
	for n.right != nil {
		n = n.right
	}
	return n.value
}
