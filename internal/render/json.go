package render

import (
	"encoding/json"
	"io"

	"github.com/mlsblk/mlsblk/internal/blockdev"
)

// document is the fixed top level shape of the JSON output.
type document struct {
	BlockDevices []*blockdev.Node `json:"blockdevices"`
}

// JSON writes the forest as a single JSON document. Every node carries the
// full fixed field set regardless of column selection, sizes are plain byte
// integers, and a children array appears only on nodes that have children.
func JSON(w io.Writer, roots []*blockdev.Node) error {
	doc := document{BlockDevices: roots}
	if doc.BlockDevices == nil {
		doc.BlockDevices = []*blockdev.Node{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
