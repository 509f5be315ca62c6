package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rattlehead90/binary-search-tree/container/bst"
)

func TestLines(t *testing.T) {
	tests := []struct {
		scenario string
		values   []int
		want     []string
	}{
		{
			scenario: "an empty tree renders no lines",
			values:   nil,
			want:     nil,
		},

		{
			scenario: "a single node is drawn as the root",
			values:   []int{1},
			want:     []string{"└── 1"},
		},

		{
			scenario: "right subtrees are drawn above their parent and left subtrees below",
			values:   []int{1, 2, 3},
			want: []string{
				"│   ┌── 3",
				"└── 2",
				"    └── 1",
			},
		},

		{
			scenario: "prefixes accumulate with the depth of the nodes",
			values:   []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324},
			want: []string{
				"│           ┌── 6345",
				"│       ┌── 324",
				"│   ┌── 67",
				"│   │   │   ┌── 23",
				"│   │   └── 9",
				"└── 8",
				"    │       ┌── 7",
				"    │   ┌── 5",
				"    └── 4",
				"        │   ┌── 3",
				"        └── 1",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			tree := bst.New(test.values)
			assert.Equal(t, test.want, Lines(tree.Root()))
		})
	}
}

func TestWrite(t *testing.T) {
	tree := bst.New([]int{1, 2, 3, 4, 5, 6, 7})

	t.Run("glyph", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, Write(buf, tree.Root(), Glyph))
		assert.Equal(t, strings.Join(Lines(tree.Root()), "\n")+"\n", buf.String())
	})

	t.Run("treeprint", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, Write(buf, tree.Root(), Treeprint))

		out := strings.TrimRight(buf.String(), "\n")
		lines := strings.Split(out, "\n")
		require.Len(t, lines, tree.Len())
		assert.Equal(t, "4", lines[0])
		for _, line := range lines[1:] {
			assert.True(t, strings.Contains(line, "L") || strings.Contains(line, "R"), line)
		}
	})

	t.Run("empty tree", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, Write(buf, bst.New[int](nil).Root(), Glyph))
		assert.Zero(t, buf.Len())
	})

	t.Run("unknown format", func(t *testing.T) {
		err := Write(new(bytes.Buffer), tree.Root(), Format("dot"))
		assert.True(t, errors.Is(err, ErrUnknownFormat))
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("GLYPH")
	require.NoError(t, err)
	assert.Equal(t, Glyph, f)

	f, err = ParseFormat("treeprint")
	require.NoError(t, err)
	assert.Equal(t, Treeprint, f)

	_, err = ParseFormat("ascii")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
