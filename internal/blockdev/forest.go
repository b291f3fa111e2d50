package blockdev

import (
	"errors"
	"sort"
	"strings"

	"github.com/mlsblk/mlsblk/internal/diskutil/identifier"
	"github.com/mlsblk/mlsblk/internal/diskutil/types"
)

// maxFSTypeLen bounds content tags passed through as display filesystem
// types when no known mapping applies.
const maxFSTypeLen = 31

// Forest holds the device hierarchy built from a diskutil listing. The index
// is the single source of identity truth, every identifier maps to exactly
// one node no matter how often it appears in the listing.
type Forest struct {
	roots []*Node
	index map[string]*Node
	order []*Node
}

// Roots returns the forest's top level nodes in sorted order.
func (f *Forest) Roots() []*Node {
	return f.roots
}

// Nodes returns every node in the forest in creation order.
func (f *Forest) Nodes() []*Node {
	return f.order
}

// Lookup returns the node with the given identifier, or nil.
func (f *Forest) Lookup(name string) *Node {
	return f.index[name]
}

// Build constructs the device forest from a diskutil listing. Entries
// without a device identifier are skipped. After construction the roots and
// every node's children are sorted by identifier.
func Build(parts *types.SystemPartitions) (*Forest, error) {
	if parts == nil || parts.AllDisksAndPartitions == nil {
		return nil, errors.New("blockdev: device listing has no disk and partition data")
	}

	f := &Forest{index: make(map[string]*Node)}

	for i := range parts.AllDisksAndPartitions {
		f.addEntry(&parts.AllDisksAndPartitions[i])
	}

	for _, n := range f.order {
		if n.parent == nil {
			f.roots = append(f.roots, n)
		}
	}

	sortSiblings(f.roots)
	for _, root := range f.roots {
		sortChildren(root)
	}

	return f, nil
}

// addEntry indexes one top level listing entry (a whole disk or a
// synthesized APFS container) along with its partitions and volumes.
func (f *Forest) addEntry(d *types.DiskPart) {
	if d.DeviceIdentifier == "" {
		return
	}

	node := f.ensure(d.DeviceIdentifier, d.Size, classify(d.Content))
	if d.Content != "" {
		node.FSType = contentFSType(d.Content)
	}

	for i := range d.Partitions {
		f.addPartition(node, &d.Partitions[i])
	}
	for i := range d.APFSVolumes {
		f.addVolume(node, &d.APFSVolumes[i])
	}
}

// addPartition indexes a physical partition and attaches it to its disk.
func (f *Forest) addPartition(parent *Node, p *types.Partition) {
	if p.DeviceIdentifier == "" {
		return
	}

	node := f.ensure(p.DeviceIdentifier, p.Size, KindPart)
	node.FSType = contentFSType(p.Content)
	parent.attach(node)
}

// addVolume indexes an APFS logical volume and attaches it to its container.
// Volumes report their mount point, label, and UUID inline, empty values are
// discarded rather than stored.
func (f *Forest) addVolume(parent *Node, v *types.APFSVolume) {
	if v.DeviceIdentifier == "" {
		return
	}

	node := f.ensure(v.DeviceIdentifier, v.Size, KindPart)
	parent.attach(node)

	if v.MountPoint != "" {
		node.MountPoint = v.MountPoint
	}
	if v.VolumeName != "" {
		node.Label = v.VolumeName
	}
	if v.VolumeUUID != "" {
		node.UUID = v.VolumeUUID
	}
	node.FSType = "apfs"
}

// ensure returns the node for name, creating and indexing it on first sight.
// The size and kind supplied for an already known name are ignored.
func (f *Forest) ensure(name string, size uint64, kind Kind) *Node {
	if n, ok := f.index[name]; ok {
		return n
	}

	n := &Node{
		Name: name,
		Size: size,
		Kind: kind,
	}
	f.index[name] = n
	f.order = append(f.order, n)

	return n
}

// classify derives the node kind from a top level entry's content tag.
// Partition schemes and APFS containers present themselves as whole devices,
// anything else at the top level is treated as a bare slice.
func classify(content string) Kind {
	if strings.Contains(content, "_partition_scheme") || strings.Contains(content, "Apple_APFS_Container") {
		return KindDisk
	}
	return KindPart
}

// contentFSType maps a diskutil content tag to a display filesystem type.
// Recognized tags (by name or GPT type GUID fragment) map to their common
// names, partition scheme tags map to empty, and unknown tags pass through
// truncated to maxFSTypeLen bytes.
func contentFSType(content string) string {
	switch {
	case strings.Contains(content, "APFS") || strings.Contains(content, "41504653"):
		return "apfs"
	case strings.Contains(content, "HFS"):
		return "hfs"
	case strings.Contains(content, "EFI") || strings.Contains(content, "C12A7328"):
		return "vfat"
	case strings.Contains(content, "_partition_scheme"):
		return ""
	}

	if len(content) > maxFSTypeLen {
		return content[:maxFSTypeLen]
	}
	return content
}

// sortChildren orders n's children by identifier, recursively.
func sortChildren(n *Node) {
	sortSiblings(n.Children)
	for _, child := range n.Children {
		sortChildren(child)
	}
}

func sortSiblings(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return identifier.Compare(nodes[i].Name, nodes[j].Name) < 0
	})
}
