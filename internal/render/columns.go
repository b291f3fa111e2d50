// Package render writes a device forest as tree text, flat list text, or a
// JSON document.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mlsblk/mlsblk/internal/blockdev"
)

// Column identifies one output field by its header name.
type Column string

const (
	ColName       Column = "NAME"
	ColSize       Column = "SIZE"
	ColType       Column = "TYPE"
	ColMountPoint Column = "MOUNTPOINT"
	ColFSType     Column = "FSTYPE"
	ColLabel      Column = "LABEL"
	ColUUID       Column = "UUID"
)

// DefaultColumns returns the columns shown when the caller selects none.
func DefaultColumns() []Column {
	return []Column{ColName, ColSize, ColType, ColMountPoint}
}

// MetadataColumns returns the expanded default used when metadata enrichment
// is requested without an explicit column selection.
func MetadataColumns() []Column {
	return []Column{ColName, ColSize, ColType, ColFSType, ColMountPoint, ColLabel, ColUUID}
}

// ParseColumns parses a comma separated column selection. Matching is case
// insensitive and surrounding whitespace is ignored. Unrecognized tokens are
// dropped silently, but a selection that yields no usable column at all is
// an error. Repeated columns are kept in the order given.
func ParseColumns(spec string) ([]Column, error) {
	var cols []Column

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		c := Column(strings.ToUpper(tok))
		switch c {
		case ColName, ColSize, ColType, ColMountPoint, ColFSType, ColLabel, ColUUID:
			cols = append(cols, c)
		}
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("no recognized columns in %q", spec)
	}

	return cols, nil
}

// Options control the text renderers. The JSON renderer ignores all of them,
// its shape is fixed.
type Options struct {
	// Columns is the ordered column selection, DefaultColumns when empty.
	Columns []Column

	// Bytes prints sizes as exact byte counts instead of humanized values.
	Bytes bool

	// NoHeadings suppresses the header row.
	NoHeadings bool
}

func (o Options) columns() []Column {
	if len(o.Columns) == 0 {
		return DefaultColumns()
	}
	return o.Columns
}

// value renders one column of a node. Unset fields render as empty strings.
func (c Column) value(n *blockdev.Node, bytes bool) string {
	switch c {
	case ColName:
		return n.Name
	case ColSize:
		if bytes {
			return strconv.FormatUint(n.Size, 10)
		}
		return humanize.IBytes(n.Size)
	case ColType:
		return string(n.Kind)
	case ColMountPoint:
		return n.MountPoint
	case ColFSType:
		return n.FSType
	case ColLabel:
		return n.Label
	case ColUUID:
		return n.UUID
	default:
		return ""
	}
}
