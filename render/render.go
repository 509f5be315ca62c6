// Package render draws the shape of binary search trees for debugging.
//
// Renderers only read the value and the children of each node, they never
// modify the trees they are given.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/Rattlehead90/binary-search-tree/container/bst"
)

// Format selects the layout used to render a tree.
type Format string

const (
	// Glyph draws one line per node, right subtrees above their parent and
	// left subtrees below, joined by box-drawing connectors.
	Glyph Format = "glyph"
	// Treeprint draws the tree top-down with github.com/xlab/treeprint, each
	// child labeled with the side it hangs from.
	Treeprint Format = "treeprint"
)

// ErrUnknownFormat is returned when parsing an unsupported format name.
var ErrUnknownFormat = errors.New("unknown render format")

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case Glyph, Treeprint:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write renders the tree rooted at root to w in the given format. Nothing is
// written for an empty tree.
func Write[V any](w io.Writer, root *bst.Node[V], format Format) error {
	if root == nil {
		return nil
	}
	var s string
	switch format {
	case Glyph:
		s = strings.Join(Lines(root), "\n") + "\n"
	case Treeprint:
		s = NewTreeprint(root).String()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	_, err := io.WriteString(w, s)
	return err
}

// Lines returns the glyph rendering of the tree rooted at root, one line per
// node.
func Lines[V any](root *bst.Node[V]) []string {
	var lines []string
	if root != nil {
		lines = glyphs(lines, root, "", true)
	}
	return lines
}

func glyphs[V any](lines []string, n *bst.Node[V], prefix string, isLeft bool) []string {
	if r := n.Right(); r != nil {
		lines = glyphs(lines, r, prefix+pick(isLeft, "│   ", "    "), false)
	}
	lines = append(lines, prefix+pick(isLeft, "└── ", "┌── ")+fmt.Sprint(n.Value()))
	if l := n.Left(); l != nil {
		lines = glyphs(lines, l, prefix+pick(isLeft, "    ", "│   "), true)
	}
	return lines
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// NewTreeprint converts the tree rooted at root to a treeprint.Tree. root must
// not be nil.
func NewTreeprint[V any](root *bst.Node[V]) treeprint.Tree {
	tree := treeprint.NewWithRoot(root.Value())
	addChildren(tree, root)
	return tree
}

func addChildren[V any](branch treeprint.Tree, n *bst.Node[V]) {
	for _, child := range []struct {
		side string
		node *bst.Node[V]
	}{
		{side: "L", node: n.Left()},
		{side: "R", node: n.Right()},
	} {
		switch c := child.node; {
		case c == nil:
		case c.Left() == nil && c.Right() == nil:
			branch.AddMetaNode(child.side, c.Value())
		default:
			addChildren(branch.AddMetaBranch(child.side, c.Value()), c)
		}
	}
}
