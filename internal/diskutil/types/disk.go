package types

// DiskInfo mirrors the subset of "diskutil info -plist <device>" output that
// the lister consumes, plus the identity fields diskutil always reports.
// FilesystemType, VolumeName, MediaName, VolumeUUID, DiskUUID, and MountPoint
// feed the metadata overlay; absent keys decode to zero values.
type DiskInfo struct {
	BusProtocol               string `plist:"BusProtocol"`
	Content                   string `plist:"Content"`
	DeviceIdentifier          string `plist:"DeviceIdentifier"`
	DeviceNode                string `plist:"DeviceNode"`
	DiskUUID                  string `plist:"DiskUUID"`
	Ejectable                 bool   `plist:"Ejectable"`
	FilesystemName            string `plist:"FilesystemName"`
	FilesystemType            string `plist:"FilesystemType"`
	FilesystemUserVisibleName string `plist:"FilesystemUserVisibleName"`
	Internal                  bool   `plist:"Internal"`
	MediaName                 string `plist:"MediaName"`
	MediaType                 string `plist:"MediaType"`
	MountPoint                string `plist:"MountPoint"`
	ParentWholeDisk           string `plist:"ParentWholeDisk"`
	Size                      uint64 `plist:"Size"`
	SolidState                bool   `plist:"SolidState"`
	TotalSize                 uint64 `plist:"TotalSize"`
	VirtualOrPhysical         string `plist:"VirtualOrPhysical"`
	VolumeName                string `plist:"VolumeName"`
	VolumeSize                uint64 `plist:"VolumeSize"`
	VolumeUUID                string `plist:"VolumeUUID"`
	WholeDisk                 bool   `plist:"WholeDisk"`
	Writable                  bool   `plist:"Writable"`
}
