// Package blockdev models the host's storage devices as a forest of nodes
// and enriches that forest with mount table and per-device metadata facts.
package blockdev

// Kind classifies a node as a whole device or a slice of one.
type Kind string

const (
	// KindDisk marks whole disks and synthesized APFS containers.
	KindDisk Kind = "disk"

	// KindPart marks partitions and logical volumes.
	KindPart Kind = "part"
)

// Node is a single disk, partition, APFS container, or volume. String fields
// default to empty, never absent, so renderers can print them directly. The
// JSON field names and their order are fixed independent of column selection.
type Node struct {
	// Name is the device identifier (e.g. disk0, disk0s1, disk3s1s1) and is
	// unique across the forest.
	Name string `json:"name"`

	// Size is the device size in bytes.
	Size uint64 `json:"size"`

	// Kind reports whether the node is a whole device or a slice of one.
	Kind Kind `json:"type"`

	// MountPoint is the path the device is mounted at, or empty.
	MountPoint string `json:"mountpoint"`

	// FSType is the display filesystem type derived from the device's
	// content tag or metadata, or empty.
	FSType string `json:"fstype"`

	// Label is the volume name, or empty.
	Label string `json:"label"`

	// UUID is the volume or disk UUID, or empty.
	UUID string `json:"uuid"`

	// Children holds the node's partitions or volumes in sorted order.
	Children []*Node `json:"children,omitempty"`

	parent *Node
}

// Parent returns the node's owner, or nil for a forest root.
func (n *Node) Parent() *Node {
	return n.parent
}

// attach links child under n. A node is attached at most once, repeated
// appearances of an identifier in the source listing must not produce
// duplicate edges.
func (n *Node) attach(child *Node) {
	if child == n || child.parent != nil {
		return
	}

	child.parent = n
	n.Children = append(n.Children, child)
}

// Walk visits n and all of its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
