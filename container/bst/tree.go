// Package bst contains the implementation of an unbalanced binary search tree
// holding unique values.
//
// Trees are built from arbitrary sequences of values: the input is sorted and
// deduplicated, then the tree is constructed by repeatedly bisecting the
// sorted values, which produces a height-balanced tree. Inserts and deletes
// never rebalance the tree, programs that mutate a tree heavily should call
// Rebalance to restore the balanced shape.
//
// Trees are not safe to use concurrently from multiple goroutines. Read-only
// methods may be called concurrently with each other, but never concurrently
// with Insert, Delete, Rebalance or Init.
package bst

import (
	"golang.org/x/exp/constraints"

	"github.com/Rattlehead90/binary-search-tree/compare"
	"github.com/Rattlehead90/binary-search-tree/sequence"
)

// Stats contains counters tracking usage of a tree.
type Stats struct {
	Inserts    int64
	Duplicates int64
	Deletes    int64
	Misses     int64
	Rebalances int64
}

// Tree is a binary search tree of unique values of type V.
//
// The zero-value is a valid empty tree which supports lookups, traversals and
// deletes, but must be initialized prior to inserting values.
type Tree[V any] struct {
	cmp    compare.Func[V]
	sorted []V
	stale  bool
	root   *Node[V]
	len    int
	stats  Stats
}

// New constructs a tree holding the distinct values passed as argument, using
// their natural ordering.
func New[V constraints.Ordered](values []V) *Tree[V] {
	return NewFunc(compare.Function[V], values)
}

// NewFunc constructs a tree holding the distinct values passed as argument,
// ordered by the comparison function.
func NewFunc[V any](cmp compare.Func[V], values []V) *Tree[V] {
	t := new(Tree[V])
	t.Init(cmp, values)
	return t
}

// Init initializes (or re-initializes) the tree with the distinct values
// passed as argument. The comparison function will be used to order the
// values. Any node previously held by the tree is discarded, and the
// statistics are reset.
//
// Complexity: O(n log n)
func (t *Tree[V]) Init(cmp compare.Func[V], values []V) {
	t.cmp = cmp
	t.stats = Stats{}
	t.reset(sequence.Normalize(values, cmp))
}

func (t *Tree[V]) reset(sorted []V) {
	t.sorted = sorted
	t.stale = false
	t.root = build(sorted, 0, len(sorted)-1)
	t.len = len(sorted)
}

// build constructs a balanced tree from the sorted values between indexes
// start and finish (inclusive), rooting each subtree at the midpoint of its
// range.
func build[V any](sorted []V, start, finish int) *Node[V] {
	if start > finish {
		return nil
	}
	mid := (start + finish) / 2
	return &Node[V]{
		value: sorted[mid],
		left:  build(sorted, start, mid-1),
		right: build(sorted, mid+1, finish),
	}
}

// Root returns the root node of the tree, or nil if the tree is empty.
func (t *Tree[V]) Root() *Node[V] { return t.root }

// Len returns the number of values in the tree.
//
// Complexity: O(1)
func (t *Tree[V]) Len() int { return t.len }

// Stats returns the usage counters of the tree.
func (t *Tree[V]) Stats() Stats { return t.stats }

// Sorted returns a copy of the sorted values that the tree was last built
// from. The result does not reflect inserts and deletes applied since the last
// call to Init or Rebalance; Stale reports whether this happened.
func (t *Tree[V]) Sorted() []V {
	return append(make([]V, 0, len(t.sorted)), t.sorted...)
}

// Stale returns true if the tree was modified since it was last built.
func (t *Tree[V]) Stale() bool { return t.stale }

// Insert inserts a value in the tree, as a new leaf. If the value already
// existed, the tree is not modified. The method returns a boolean indicating
// whether the value was inserted.
//
// The tree must have been initialized by a call to New, NewFunc or Init or the
// call to Insert will panic.
//
// Complexity: O(h)
func (t *Tree[V]) Insert(value V) (inserted bool) {
	if t.cmp == nil {
		panic("bst: Insert called on a tree that was not initialized")
	}
	t.root, inserted = t.insert(t.root, value)
	if inserted {
		t.len++
		t.stale = true
		t.stats.Inserts++
	} else {
		t.stats.Duplicates++
	}
	return inserted
}

func (t *Tree[V]) insert(n *Node[V], value V) (root *Node[V], inserted bool) {
	if n == nil {
		return &Node[V]{value: value}, true
	}
	switch cmp := t.cmp(value, n.value); {
	case cmp < 0:
		n.left, inserted = t.insert(n.left, value)
	case cmp > 0:
		n.right, inserted = t.insert(n.right, value)
	}
	return n, inserted
}

// Delete removes a value from the tree. If the value does not exist, the tree
// is not modified. The method returns a boolean indicating whether the value
// was found.
//
// When the node holding the value has two children, its value is replaced by
// the smallest value of its right subtree, and the node which held that value
// is removed instead.
//
// Complexity: O(h)
func (t *Tree[V]) Delete(value V) (deleted bool) {
	if t.root != nil {
		t.root, deleted = t.delete(t.root, value)
	}
	if deleted {
		t.len--
		t.stale = true
		t.stats.Deletes++
	} else {
		t.stats.Misses++
	}
	return deleted
}

func (t *Tree[V]) delete(n *Node[V], value V) (root *Node[V], deleted bool) {
	if n == nil {
		return nil, false
	}
	switch cmp := t.cmp(value, n.value); {
	case cmp < 0:
		n.left, deleted = t.delete(n.left, value)
	case cmp > 0:
		n.right, deleted = t.delete(n.right, value)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// The minimum of the right subtree has no left child, removing it
		// below is a single-child case.
		n.value = minimum(n.right)
		// The value was just read from the right subtree, it always exists.
		n.right, _ = t.delete(n.right, n.value)
		deleted = true
	}
	return n, deleted
}

// Find returns the node holding the given value, or nil if the value does not
// exist in the tree.
//
// Complexity: O(h)
func (t *Tree[V]) Find(value V) *Node[V] {
	n := t.root
	for n != nil {
		switch cmp := t.cmp(value, n.value); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains returns true if the given value exists in the tree.
func (t *Tree[V]) Contains(value V) bool { return t.Find(value) != nil }

// Depth returns the number of edges between the root of the tree and the node
// holding the given value, and a boolean indicating whether the value was
// found. The depth of the root is zero.
//
// Complexity: O(h)
func (t *Tree[V]) Depth(value V) (depth int, found bool) {
	for n := t.root; n != nil; depth++ {
		switch cmp := t.cmp(value, n.value); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return depth, true
		}
	}
	return 0, false
}

// Min returns the smallest value in the tree.
//
// Complexity: O(h)
func (t *Tree[V]) Min() (value V, found bool) {
	if t.root != nil {
		value, found = minimum(t.root), true
	}
	return value, found
}

// Max returns the largest value in the tree.
//
// Complexity: O(h)
func (t *Tree[V]) Max() (value V, found bool) {
	if t.root != nil {
		value, found = maximum(t.root), true
	}
	return value, found
}

// Height returns the height of the tree, which is -1 when the tree is empty
// and zero when it holds a single value.
//
// Complexity: O(N)
func (t *Tree[V]) Height() int { return t.root.Height() }

// Balanced returns true if the heights of the two subtrees of the root differ
// by at most one. Only the root is checked, subtrees deeper in the tree may be
// unbalanced. An empty tree is balanced.
//
// Complexity: O(N)
func (t *Tree[V]) Balanced() bool {
	if t.root == nil {
		return true
	}
	diff := t.root.left.Height() - t.root.right.Height()
	return diff >= -1 && diff <= 1
}

// Rebalance rebuilds the tree from its values, restoring the balanced shape
// lost by inserts and deletes. The sorted values returned by Sorted are
// refreshed.
//
// Complexity: O(N)
func (t *Tree[V]) Rebalance() {
	t.reset(t.InOrder())
	t.stats.Rebalances++
}
