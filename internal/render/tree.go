package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mlsblk/mlsblk/internal/blockdev"
)

// Tree writes the forest as an indented tree. Roots print flush left, every
// descendant prints behind connector glyphs that reflect its position among
// its siblings. The name always occupies the first column position, so a
// NAME selected anywhere later in the column list is not repeated.
func Tree(w io.Writer, roots []*blockdev.Node, opts Options) error {
	cols := opts.columns()

	if !opts.NoHeadings {
		if err := writeHeader(w, cols); err != nil {
			return err
		}
	}

	for _, root := range roots {
		if _, err := fmt.Fprintln(w, treeRow(root, cols, opts)); err != nil {
			return err
		}
		if err := writeSubtree(w, root, "  ", cols, opts); err != nil {
			return err
		}
	}

	return nil
}

func writeSubtree(w io.Writer, n *blockdev.Node, prefix string, cols []Column, opts Options) error {
	for i, child := range n.Children {
		last := i == len(n.Children)-1

		connector := "├── "
		if last {
			connector = "└── "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, treeRow(child, cols, opts)); err != nil {
			return err
		}

		// The bar continues below a child that still has siblings after it.
		bar := "│"
		if last {
			bar = " "
		}
		if err := writeSubtree(w, child, prefix+bar+"  ", cols, opts); err != nil {
			return err
		}
	}

	return nil
}

func treeRow(n *blockdev.Node, cols []Column, opts Options) string {
	var b strings.Builder

	b.WriteString(n.Name)
	for _, c := range cols[1:] {
		if c == ColName {
			continue
		}
		b.WriteString(" ")
		b.WriteString(c.value(n, opts.Bytes))
	}

	return b.String()
}

func writeHeader(w io.Writer, cols []Column) error {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}

	_, err := fmt.Fprintln(w, strings.Join(names, " "))
	return err
}
