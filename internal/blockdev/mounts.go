package blockdev

import (
	"strings"

	"github.com/mlsblk/mlsblk/internal/mounts"
)

// devPrefix is the directory device nodes appear under in the mount table.
const devPrefix = "/dev/"

// ApplyMounts overlays live mount table entries onto the forest. Entries
// whose device does not live under /dev (network mounts, devfs, and the
// like) are skipped, as are entries naming devices outside the forest. The
// whole forest is searched for every entry so duplicate matches, while not
// expected, would all be updated.
func ApplyMounts(roots []*Node, entries []mounts.Entry) {
	for _, e := range entries {
		if !strings.HasPrefix(e.Device, devPrefix) {
			continue
		}
		name := strings.TrimPrefix(e.Device, devPrefix)

		for _, root := range roots {
			root.Walk(func(n *Node) {
				if n.Name == name {
					n.MountPoint = e.Path
				}
			})
		}
	}
}
