package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/Rattlehead90/binary-search-tree/container/bst"
	"github.com/Rattlehead90/binary-search-tree/render"
)

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Usage:   "tree layout: glyph or treeprint",
	Value:   string(render.Glyph),
	EnvVars: []string{"BST_FORMAT"},
}

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "build a tree from integer values, apply mutations and print it",
	ArgsUsage: `<value>...`,
	Flags: []cli.Flag{
		formatFlag,
		&cli.IntSliceFlag{
			Name:  "insert",
			Usage: "value to insert after building the tree (repeatable)",
		},
		&cli.IntSliceFlag{
			Name:  "delete",
			Usage: "value to delete after the inserts (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "rebalance",
			Usage: "rebuild the tree after the mutations",
		},
	},
	Action: runBuild,
}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "build a sample tree, insert 2 and 1, then delete 8",
	Flags:  []cli.Flag{formatFlag},
	Action: runDemo,
}

var demoValues = []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324}

func runBuild(cctx *cli.Context) error {
	format, err := render.ParseFormat(cctx.String("format"))
	if err != nil {
		return err
	}
	values, err := parseValues(cctx.Args().Slice())
	if err != nil {
		return err
	}

	w := cctx.App.Writer
	tree := bst.New(values)
	fmt.Fprintf(w, "input:       %v\n", values)
	fmt.Fprintf(w, "normalized:  %v\n", tree.Sorted())

	for _, v := range cctx.IntSlice("insert") {
		insert(tree, v)
	}
	for _, v := range cctx.IntSlice("delete") {
		remove(tree, v)
	}
	if cctx.Bool("rebalance") {
		tree.Rebalance()
		slog.Debug("rebalanced tree", "height", tree.Height())
	}

	if err := printTree(w, tree, format); err != nil {
		return err
	}
	fmt.Fprintf(w, "inorder:     %v\n", tree.InOrder())
	fmt.Fprintf(w, "preorder:    %v\n", tree.PreOrder())
	fmt.Fprintf(w, "postorder:   %v\n", tree.PostOrder())
	fmt.Fprintf(w, "level-order: %v\n", tree.LevelOrder())
	fmt.Fprintf(w, "height:      %d\n", tree.Height())
	fmt.Fprintf(w, "balanced:    %t\n", tree.Balanced())

	logStats(tree)
	return nil
}

func runDemo(cctx *cli.Context) error {
	format, err := render.ParseFormat(cctx.String("format"))
	if err != nil {
		return err
	}

	w := cctx.App.Writer
	tree := bst.New(demoValues)
	fmt.Fprintf(w, "input:       %v\n", demoValues)
	fmt.Fprintf(w, "normalized:  %v\n", tree.Sorted())
	if err := printTree(w, tree, format); err != nil {
		return err
	}

	insert(tree, 2)
	insert(tree, 1)
	if err := printTree(w, tree, format); err != nil {
		return err
	}

	remove(tree, 8)
	if err := printTree(w, tree, format); err != nil {
		return err
	}

	logStats(tree)
	return nil
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func insert(tree *bst.Tree[int], v int) {
	if tree.Insert(v) {
		depth, _ := tree.Depth(v)
		slog.Debug("inserted value", "value", v, "depth", depth)
	} else {
		slog.Info("value already exists, ignoring insert", "value", v)
	}
}

func remove(tree *bst.Tree[int], v int) {
	if tree.Delete(v) {
		slog.Debug("deleted value", "value", v)
	} else {
		slog.Info("value does not exist, ignoring delete", "value", v)
	}
}

func printTree(w io.Writer, tree *bst.Tree[int], format render.Format) error {
	if root := tree.Root(); root != nil {
		fmt.Fprintf(w, "root:        %d\n", root.Value())
	} else {
		fmt.Fprintln(w, "root:        <empty>")
	}
	if err := render.Write(w, tree.Root(), format); err != nil {
		return fmt.Errorf("rendering tree: %w", err)
	}
	return nil
}

func logStats(tree *bst.Tree[int]) {
	stats := tree.Stats()
	slog.Debug("tree statistics",
		"len", tree.Len(),
		"stale", tree.Stale(),
		"inserts", stats.Inserts,
		"duplicates", stats.Duplicates,
		"deletes", stats.Deletes,
		"misses", stats.Misses,
		"rebalances", stats.Rebalances,
	)
}
