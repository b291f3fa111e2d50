// Package mounts reads the live mount table so volumes can be matched back
// to the block devices they are mounted from.
package mounts

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// Entry is a single mount table row, pairing a device node with the path it
// is mounted at.
type Entry struct {
	// Device is the mounted device as reported by the kernel (e.g. /dev/disk3s1).
	Device string

	// Path is the filesystem location the device is mounted at.
	Path string
}

// Source provides the current mount table.
type Source interface {
	// Mounts returns all mount table entries known to the host.
	Mounts(ctx context.Context) ([]Entry, error)
}

// SystemSource reads the mount table from the running host.
type SystemSource struct{}

// Mounts returns every mounted filesystem, including system and virtual
// mounts. Callers filter for the device prefixes they care about.
func (SystemSource) Mounts(ctx context.Context) ([]Entry, error) {
	partitions, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("mounts: failed to read mount table: %w", err)
	}

	entries := make([]Entry, 0, len(partitions))
	for _, p := range partitions {
		entries = append(entries, Entry{
			Device: p.Device,
			Path:   p.Mountpoint,
		})
	}

	return entries, nil
}
