package blockdev

import (
	"context"

	"github.com/mlsblk/mlsblk/internal/diskutil/types"
)

// InfoSource supplies per-device metadata, keyed by device identifier.
// diskutil.DiskUtil satisfies it.
type InfoSource interface {
	Info(ctx context.Context, id string) (*types.DiskInfo, error)
}

// EnrichInfo queries src once per node and overlays the returned metadata.
// Enrichment is best effort, a failed query leaves that node untouched and
// never fails the run.
func EnrichInfo(ctx context.Context, src InfoSource, forest *Forest) {
	for _, n := range forest.Nodes() {
		info, err := src.Info(ctx, n.Name)
		if err != nil || info == nil {
			continue
		}
		applyDiskInfo(n, info)
	}
}

// applyDiskInfo overlays metadata onto a node. The volume name wins over the
// generic media name for the label, and the volume UUID wins over the disk
// UUID. Empty values never clobber what the forest already knows.
func applyDiskInfo(n *Node, info *types.DiskInfo) {
	if info.FilesystemType != "" {
		n.FSType = info.FilesystemType
	}

	if info.VolumeName != "" {
		n.Label = info.VolumeName
	}
	if n.Label == "" && info.MediaName != "" {
		n.Label = info.MediaName
	}

	if info.VolumeUUID != "" {
		n.UUID = info.VolumeUUID
	} else if info.DiskUUID != "" {
		n.UUID = info.DiskUUID
	}

	if info.MountPoint != "" {
		n.MountPoint = info.MountPoint
	}
}
