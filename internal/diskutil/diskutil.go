// Package diskutil provides the functionality necessary for interacting with
// macOS's diskutil CLI.
package diskutil

//go:generate mockgen -destination mocks/mock_diskutil.go github.com/mlsblk/mlsblk/internal/diskutil DiskUtil

import (
	"context"
	"errors"
	"strings"

	"github.com/mlsblk/mlsblk/internal/diskutil/types"
	"github.com/mlsblk/mlsblk/internal/system"

	"github.com/Masterminds/semver"
)

// DiskUtil outlines the read-only functionality the lister needs from
// macOS's diskutil tool.
type DiskUtil interface {
	// Info fetches disk information for the specified device identifier.
	Info(ctx context.Context, id string) (*types.DiskInfo, error)
	// List fetches all disk and partition information for the system.
	// This output will be filtered based on the args provided.
	List(ctx context.Context, args []string) (*types.SystemPartitions, error)
}

// ForProduct creates a diskutil controller for the given product. The plist
// shapes consumed here (list, info) are stable from High Sierra on, so every
// supported release shares one implementation; a future release that changes
// the output format gets its own case and struct here. Releases predating
// APFS are rejected.
func ForProduct(p *system.Product) (DiskUtil, error) {
	switch p.Release {
	case system.HighSierra, system.Mojave, system.Catalina, system.BigSur,
		system.Monterey, system.Ventura, system.Sonoma, system.Sequoia, system.Tahoe:
		return newStandard(p.Version)
	default:
		return nil, errors.New("unsupported macOS release")
	}
}

// newStandard configures the DiskUtil shared by all supported releases.
func newStandard(version semver.Version) (*diskutilStandard, error) {
	du := &diskutilStandard{
		embeddedDiskutil: &DiskUtilityCmd{},
		dec:              &PlistDecoder{},
	}

	return du, nil
}

// embeddedDiskutil is a private interface used to embed UtilImpl into
// implementation-specific structs.
type embeddedDiskutil interface {
	UtilImpl
}

// diskutilStandard wraps all the functionality necessary for interacting
// with macOS's diskutil on the supported releases.
type diskutilStandard struct {
	// embeddedDiskutil provides the diskutil implementation to prevent manual wiring between UtilImpl and DiskUtil.
	embeddedDiskutil

	// dec is the Decoder used to decode the raw output from UtilImpl into usable structs.
	dec Decoder
}

// List utilizes the UtilImpl.List method to fetch the raw list output from
// diskutil and returns the decoded output in a SystemPartitions struct.
func (d *diskutilStandard) List(ctx context.Context, args []string) (*types.SystemPartitions, error) {
	return list(ctx, d.embeddedDiskutil, d.dec, args)
}

// Info utilizes the UtilImpl.Info method to fetch the raw disk output from
// diskutil and returns the decoded output in a DiskInfo struct.
func (d *diskutilStandard) Info(ctx context.Context, id string) (*types.DiskInfo, error) {
	return info(ctx, d.embeddedDiskutil, d.dec, id)
}

// info is a wrapper that fetches the raw diskutil info data and decodes it into a usable types.DiskInfo struct.
func info(ctx context.Context, util UtilImpl, decoder Decoder, id string) (*types.DiskInfo, error) {
	rawDisk, err := util.Info(ctx, id)
	if err != nil {
		return nil, err
	}

	reader := strings.NewReader(rawDisk)

	disk, err := decoder.DecodeDiskInfo(reader)
	if err != nil {
		return nil, err
	}

	return disk, nil
}

// list is a wrapper that fetches the raw diskutil list data and decodes it into a usable types.SystemPartitions struct.
func list(ctx context.Context, util UtilImpl, decoder Decoder, args []string) (*types.SystemPartitions, error) {
	rawPartitions, err := util.List(ctx, args)
	if err != nil {
		return nil, err
	}

	reader := strings.NewReader(rawPartitions)

	partitions, err := decoder.DecodeSystemPartitions(reader)
	if err != nil {
		return nil, err
	}

	return partitions, nil
}
