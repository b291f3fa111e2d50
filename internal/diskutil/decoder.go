package diskutil

import (
	"fmt"
	"io"

	"github.com/mlsblk/mlsblk/internal/diskutil/types"

	"howett.net/plist"
)

// Decoder outlines the functionality necessary for decoding plist output
// from the macOS diskutil command.
type Decoder interface {
	DecodeSystemPartitions(reader io.ReadSeeker) (*types.SystemPartitions, error)
	DecodeDiskInfo(reader io.ReadSeeker) (*types.DiskInfo, error)
}

// PlistDecoder is an empty struct that provides the implementation for the
// Decoder interface.
type PlistDecoder struct{}

// DecodeSystemPartitions reads raw "diskutil list -plist" output and decodes
// it into a new SystemPartitions struct.
func (d *PlistDecoder) DecodeSystemPartitions(reader io.ReadSeeker) (partitions *types.SystemPartitions, err error) {
	// Decode can panic on malformed documents, surface that as an error
	defer func() {
		if panicErr := recover(); panicErr != nil {
			partitions = nil
			err = fmt.Errorf("diskutil: panic occurred while decoding: %s", panicErr)
		}
	}()

	partitions = &types.SystemPartitions{}
	decoder := plist.NewDecoder(reader)

	err = decoder.Decode(partitions)
	if err != nil {
		return nil, fmt.Errorf("diskutil: failed to decode diskutil list disks output: %v", err)
	}

	return partitions, nil
}

// DecodeDiskInfo reads raw "diskutil info -plist" output and decodes it into
// a new DiskInfo struct.
func (d *PlistDecoder) DecodeDiskInfo(reader io.ReadSeeker) (disk *types.DiskInfo, err error) {
	// Decode can panic on malformed documents, surface that as an error
	defer func() {
		if panicErr := recover(); panicErr != nil {
			disk = nil
			err = fmt.Errorf("diskutil: panic occurred while decoding: %s", panicErr)
		}
	}()

	disk = &types.DiskInfo{}
	decoder := plist.NewDecoder(reader)

	err = decoder.Decode(disk)
	if err != nil {
		return nil, fmt.Errorf("diskutil: failed to decode diskutil disk info output: %v", err)
	}

	return disk, nil
}
