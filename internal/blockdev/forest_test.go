package blockdev

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlsblk/mlsblk/internal/diskutil/types"
)

func TestBuildRejectsMissingListing(t *testing.T) {
	tests := []struct {
		name  string
		parts *types.SystemPartitions
	}{
		{
			name:  "nil listing",
			parts: nil,
		},
		{
			name:  "listing without disk and partition data",
			parts: &types.SystemPartitions{AllDisks: []string{"disk0"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.parts)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestBuildRoundTrip(t *testing.T) {
	parts := &types.SystemPartitions{
		AllDisksAndPartitions: []types.DiskPart{
			{
				DeviceIdentifier: "disk0",
				Content:          "GUID_partition_scheme",
				Size:             500107862016,
				Partitions: []types.Partition{
					{DeviceIdentifier: "disk0s2", Content: "Apple_APFS", Size: 499763888128},
					{DeviceIdentifier: "disk0s1", Content: "EFI", Size: 314572800},
				},
			},
		},
	}

	forest, err := Build(parts)
	require.NoError(t, err)

	roots := forest.Roots()
	require.Len(t, roots, 1)

	root := roots[0]
	assert.Equal(t, "disk0", root.Name)
	assert.Equal(t, KindDisk, root.Kind)
	assert.Equal(t, uint64(500107862016), root.Size)
	assert.Empty(t, root.FSType)
	assert.Nil(t, root.Parent())

	require.Len(t, root.Children, 2)
	assert.Equal(t, "disk0s1", root.Children[0].Name)
	assert.Equal(t, "disk0s2", root.Children[1].Name)
	for _, child := range root.Children {
		assert.Equal(t, KindPart, child.Kind)
		assert.Same(t, root, child.Parent())
	}
	assert.Equal(t, "vfat", root.Children[0].FSType)
	assert.Equal(t, "apfs", root.Children[1].FSType)
}

func TestBuildContainerVolumes(t *testing.T) {
	parts := &types.SystemPartitions{
		AllDisksAndPartitions: []types.DiskPart{
			{
				DeviceIdentifier: "disk1",
				Content:          "Apple_APFS_Container",
				Size:             499763888128,
				APFSVolumes: []types.APFSVolume{
					{
						DeviceIdentifier: "disk1s2",
						Size:             412316860416,
						MountPoint:       "/System/Volumes/Data",
						VolumeName:       "Data",
						VolumeUUID:       "0FD46D9E-0566-43D2-B3EB-3D60C2E581BC",
					},
					{
						DeviceIdentifier: "disk1s1",
						Size:             15984640,
					},
				},
			},
		},
	}

	forest, err := Build(parts)
	require.NoError(t, err)

	roots := forest.Roots()
	require.Len(t, roots, 1)

	container := roots[0]
	assert.Equal(t, KindDisk, container.Kind)
	assert.Equal(t, "apfs", container.FSType)
	require.Len(t, container.Children, 2)

	data := forest.Lookup("disk1s2")
	require.NotNil(t, data)
	assert.Equal(t, KindPart, data.Kind)
	assert.Equal(t, "apfs", data.FSType)
	assert.Equal(t, "/System/Volumes/Data", data.MountPoint)
	assert.Equal(t, "Data", data.Label)
	assert.Equal(t, "0FD46D9E-0566-43D2-B3EB-3D60C2E581BC", data.UUID)

	preboot := forest.Lookup("disk1s1")
	require.NotNil(t, preboot)
	assert.Equal(t, "apfs", preboot.FSType)
	assert.Empty(t, preboot.MountPoint)
	assert.Empty(t, preboot.Label)
	assert.Empty(t, preboot.UUID)
}

func TestBuildSkipsEntriesWithoutIdentifier(t *testing.T) {
	parts := &types.SystemPartitions{
		AllDisksAndPartitions: []types.DiskPart{
			{
				Content: "GUID_partition_scheme",
				Size:    500107862016,
			},
			{
				DeviceIdentifier: "disk0",
				Content:          "GUID_partition_scheme",
				Partitions: []types.Partition{
					{Content: "EFI", Size: 314572800},
					{DeviceIdentifier: "disk0s2", Content: "Apple_APFS"},
				},
				APFSVolumes: []types.APFSVolume{
					{VolumeName: "orphan"},
				},
			},
		},
	}

	forest, err := Build(parts)
	require.NoError(t, err)

	roots := forest.Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, "disk0", roots[0].Name)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "disk0s2", roots[0].Children[0].Name)
	assert.Len(t, forest.Nodes(), 2)
}

func TestEnsureIdentity(t *testing.T) {
	f := &Forest{index: make(map[string]*Node)}

	first := f.ensure("disk2", 1000, KindDisk)
	second := f.ensure("disk2", 9999, KindPart)

	assert.Same(t, first, second)
	assert.Equal(t, uint64(1000), second.Size)
	assert.Equal(t, KindDisk, second.Kind)
	assert.Len(t, f.order, 1)
}

func TestBuildDeduplicatesRepeatedEntries(t *testing.T) {
	// The same partition reported under two disks stays attached to the
	// disk that claimed it first.
	parts := &types.SystemPartitions{
		AllDisksAndPartitions: []types.DiskPart{
			{
				DeviceIdentifier: "disk0",
				Content:          "GUID_partition_scheme",
				Partitions: []types.Partition{
					{DeviceIdentifier: "disk0s1", Content: "Apple_APFS", Size: 100},
				},
			},
			{
				DeviceIdentifier: "disk1",
				Content:          "GUID_partition_scheme",
				Partitions: []types.Partition{
					{DeviceIdentifier: "disk0s1", Content: "EFI", Size: 200},
				},
			},
		},
	}

	forest, err := Build(parts)
	require.NoError(t, err)

	roots := forest.Roots()
	require.Len(t, roots, 2)
	require.Len(t, roots[0].Children, 1)
	assert.Empty(t, roots[1].Children)

	child := forest.Lookup("disk0s1")
	assert.Same(t, roots[0], child.Parent())
	assert.Equal(t, uint64(100), child.Size)
}

func TestBuildSortsForest(t *testing.T) {
	parts := &types.SystemPartitions{
		AllDisksAndPartitions: []types.DiskPart{
			{
				DeviceIdentifier: "disk10",
				Content:          "GUID_partition_scheme",
			},
			{
				DeviceIdentifier: "disk2",
				Content:          "GUID_partition_scheme",
				Partitions: []types.Partition{
					{DeviceIdentifier: "disk2s10", Content: "Apple_APFS"},
					{DeviceIdentifier: "disk2s2", Content: "Apple_APFS"},
					{DeviceIdentifier: "disk2s1", Content: "EFI"},
				},
			},
		},
	}

	forest, err := Build(parts)
	require.NoError(t, err)

	roots := forest.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "disk2", roots[0].Name)
	assert.Equal(t, "disk10", roots[1].Name)

	var childNames []string
	for _, child := range roots[0].Children {
		childNames = append(childNames, child.Name)
	}
	assert.Equal(t, []string{"disk2s1", "disk2s2", "disk2s10"}, childNames)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		content string
		want    Kind
	}{
		{content: "GUID_partition_scheme", want: KindDisk},
		{content: "FDisk_partition_scheme", want: KindDisk},
		{content: "Apple_partition_scheme", want: KindDisk},
		{content: "Apple_APFS_Container", want: KindDisk},
		{content: "Apple_APFS", want: KindPart},
		{content: "EFI", want: KindPart},
		{content: "", want: KindPart},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.content))
		})
	}
}

func TestContentFSType(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "APFS tag",
			content: "Apple_APFS",
			want:    "apfs",
		},
		{
			name:    "APFS type GUID",
			content: "41504653-0000-11AA-AA11-00306543ECAC",
			want:    "apfs",
		},
		{
			name:    "HFS tag",
			content: "Apple_HFS",
			want:    "hfs",
		},
		{
			name:    "EFI tag",
			content: "EFI",
			want:    "vfat",
		},
		{
			name:    "EFI system partition GUID",
			content: "C12A7328-F81F-11D2-BA4B-00A0C93EC93B",
			want:    "vfat",
		},
		{
			name:    "GUID scheme maps to empty",
			content: "GUID_partition_scheme",
			want:    "",
		},
		{
			name:    "FDisk scheme maps to empty",
			content: "FDisk_partition_scheme",
			want:    "",
		},
		{
			name:    "unknown tag passes through",
			content: "Windows_NTFS",
			want:    "Windows_NTFS",
		},
		{
			name:    "long unknown tag is truncated",
			content: strings.Repeat("x", 40),
			want:    strings.Repeat("x", 31),
		},
		{
			name:    "empty tag",
			content: "",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentFSType(tt.content))
		})
	}
}
