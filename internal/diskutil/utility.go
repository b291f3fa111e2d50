package diskutil

import (
	"context"
	"fmt"

	"github.com/mlsblk/mlsblk/internal/util"
)

// UtilImpl outlines the raw interactions with macOS's diskutil tool. The
// methods are intentionally named to correspond to diskutil(8)'s subcommand
// names as its API.
type UtilImpl interface {
	// Info fetches raw disk information for the specified device identifier.
	Info(ctx context.Context, id string) (string, error)
	// List fetches all disk and partition information for the system.
	// This output will be filtered based on the args provided.
	List(ctx context.Context, args []string) (string, error)
}

// DiskUtilityCmd is an empty struct that provides the implementation for the
// UtilImpl interface by shelling out to diskutil.
type DiskUtilityCmd struct{}

// List uses the macOS diskutil list command to list disks and partitions in a
// plist format by passing the -plist arg. List also appends any given args to
// fully support the diskutil list verb (e.g. limiting output to one device).
func (d *DiskUtilityCmd) List(ctx context.Context, args []string) (string, error) {
	cmdListDisks := []string{"diskutil", "list", "-plist"}
	if len(args) > 0 {
		cmdListDisks = append(cmdListDisks, args...)
	}

	cmdOut, err := util.ExecuteCommand(ctx, cmdListDisks)
	if err != nil {
		return cmdOut.Stdout, fmt.Errorf("diskutil: failed to run diskutil command to list all disks, stderr: [%s]: %w", cmdOut.Stderr, err)
	}

	return cmdOut.Stdout, nil
}

// Info uses the macOS diskutil info command to get detailed information about
// a disk, partition, or container in plist format by passing the -plist arg.
func (d *DiskUtilityCmd) Info(ctx context.Context, id string) (string, error) {
	cmdDiskInfo := []string{"diskutil", "info", "-plist", id}

	cmdOut, err := util.ExecuteCommand(ctx, cmdDiskInfo)
	if err != nil {
		return cmdOut.Stdout, fmt.Errorf("diskutil: failed to run diskutil command to fetch disk information, stderr: [%s]: %w", cmdOut.Stderr, err)
	}

	return cmdOut.Stdout, nil
}
