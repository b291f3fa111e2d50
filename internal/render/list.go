package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mlsblk/mlsblk/internal/blockdev"
)

// List writes a header row followed by one line per node, depth first with
// no indentation. Unlike the tree renderer the columns print exactly as
// selected, including repeats of NAME.
func List(w io.Writer, roots []*blockdev.Node, opts Options) error {
	cols := opts.columns()

	if !opts.NoHeadings {
		if err := writeHeader(w, cols); err != nil {
			return err
		}
	}

	for _, root := range roots {
		var err error
		root.Walk(func(n *blockdev.Node) {
			if err != nil {
				return
			}
			_, err = fmt.Fprintln(w, listRow(n, cols, opts))
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func listRow(n *blockdev.Node, cols []Column, opts Options) string {
	fields := make([]string, len(cols))
	for i, c := range cols {
		fields[i] = c.value(n, opts.Bytes)
	}

	return strings.Join(fields, " ")
}
