package bst

import (
	"fmt"

	"github.com/Rattlehead90/binary-search-tree/container/list"
)

// Order is the order in which traversals visit the nodes of a tree.
type Order int

const (
	// InOrder visits the left subtree, then the node, then the right subtree.
	// Values are presented in ascending order.
	InOrder Order = iota
	// PreOrder visits the node, then its left and right subtrees.
	PreOrder
	// PostOrder visits the left and right subtrees, then the node.
	PostOrder
	// LevelOrder visits all the nodes at a given depth, from left to right,
	// before moving to the next depth.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "level-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Walk calls visit for each node of the tree, in the given order. If visit
// returns false, the traversal is stopped.
//
// visit must not modify the tree.
//
// Complexity: O(N)
func (t *Tree[V]) Walk(order Order, visit func(*Node[V]) bool) {
	switch order {
	case InOrder:
		inorder(t.root, visit)
	case PreOrder:
		preorder(t.root, visit)
	case PostOrder:
		postorder(t.root, visit)
	case LevelOrder:
		levelorder(t.root, visit)
	default:
		panic(fmt.Errorf("bst: unknown traversal order: %v", order))
	}
}

// Collect returns the results of calling transform on each node of the tree,
// in the given order.
//
// Complexity: O(N)
func Collect[V, R any](t *Tree[V], order Order, transform func(*Node[V]) R) []R {
	results := make([]R, 0, t.Len())
	t.Walk(order, func(n *Node[V]) bool {
		results = append(results, transform(n))
		return true
	})
	return results
}

// InOrder returns the values of the tree in ascending order.
func (t *Tree[V]) InOrder() []V { return t.values(InOrder) }

// PreOrder returns the values of the tree in pre-order.
func (t *Tree[V]) PreOrder() []V { return t.values(PreOrder) }

// PostOrder returns the values of the tree in post-order.
func (t *Tree[V]) PostOrder() []V { return t.values(PostOrder) }

// LevelOrder returns the values of the tree in breadth-first order. The
// traversal always reflects the current shape of the tree.
func (t *Tree[V]) LevelOrder() []V { return t.values(LevelOrder) }

func (t *Tree[V]) values(order Order) []V {
	return Collect(t, order, (*Node[V]).Value)
}

func inorder[V any](n *Node[V], visit func(*Node[V]) bool) bool {
	return n == nil || (inorder(n.left, visit) && visit(n) && inorder(n.right, visit))
}

func preorder[V any](n *Node[V], visit func(*Node[V]) bool) bool {
	return n == nil || (visit(n) && preorder(n.left, visit) && preorder(n.right, visit))
}

func postorder[V any](n *Node[V], visit func(*Node[V]) bool) bool {
	return n == nil || (postorder(n.left, visit) && postorder(n.right, visit) && visit(n))
}

func levelorder[V any](root *Node[V], visit func(*Node[V]) bool) {
	if root == nil {
		return
	}
	var queue list.List[*Node[V]]
	queue.PushBack(root)

	for queue.Len() > 0 {
		n, _ := queue.PopFront()
		if !visit(n) {
			return
		}
		if n.left != nil {
			queue.PushBack(n.left)
		}
		if n.right != nil {
			queue.PushBack(n.right)
		}
	}
}
