// Package system provides the host lookups needed to describe the running
// macOS product before any diskutil invocation is attempted.
package system

import (
	"fmt"
	"io"
	"os"

	"howett.net/plist"
)

const (
	// versionPath is the standard location of the SystemVersion plist.
	versionPath = "/System/Library/CoreServices/SystemVersion.plist"

	// dotVersionPath is a sibling of versionPath that carries the real product
	// version even when the process runs with SYSTEM_VERSION_COMPAT=1.
	dotVersionPath = "/System/Library/CoreServices/.SystemVersionPlatform.plist"

	// dotVersionSwitch is the pinned version reported in compatibility mode.
	// Seeing it means versionPath cannot be trusted and dotVersionPath must be
	// consulted instead.
	dotVersionSwitch = "10.16"
)

// System caches the host details gathered by Scan.
type System struct {
	versionInfo *VersionInfo
	product     *Product
}

func (sys *System) Product() *Product {
	return sys.product
}

// Scan reads the host's version plist and resolves the macOS product from it.
func Scan() (*System, error) {
	version, err := readVersion()
	if err != nil {
		return nil, fmt.Errorf("system: failed to read product version: %w", err)
	}

	product, err := version.Product()
	if err != nil {
		return nil, fmt.Errorf("system: failed to resolve product from version %q: %w", version.ProductVersion, err)
	}

	system := &System{
		versionInfo: version,
		product:     product,
	}

	return system, nil
}

// VersionInfo mirrors the keys of the SystemVersion plist file.
type VersionInfo struct {
	ProductBuildVersion       string `plist:"ProductBuildVersion"`
	ProductCopyright          string `plist:"ProductCopyright"`
	ProductName               string `plist:"ProductName"`
	ProductUserVisibleVersion string `plist:"ProductUserVisibleVersion"`
	ProductVersion            string `plist:"ProductVersion"`
	IOSSupportVersion         string `plist:"iOSSupportVersion"`
}

// Product resolves the macOS product that the VersionInfo's ProductVersion
// belongs to.
func (v *VersionInfo) Product() (*Product, error) {
	return newProduct(v.ProductVersion)
}

// decodeVersionInfo decodes a plist document from the reader into a new
// VersionInfo struct.
func decodeVersionInfo(reader io.ReadSeeker) (version *VersionInfo, err error) {
	version = &VersionInfo{}
	decoder := plist.NewDecoder(reader)

	err = decoder.Decode(version)
	if err != nil {
		return nil, fmt.Errorf("system failed to decode contents of reader: %w", err)
	}

	return version, nil
}

// readVersion loads the host's version info from versionPath. When the file
// reports the compatibility-mode pin, the platform dot file is read instead
// to recover the real version.
func readVersion() (*VersionInfo, error) {
	version, err := readProductVersionFile(versionPath)
	if err != nil {
		return nil, err
	}

	if version.ProductVersion == dotVersionSwitch {
		return readProductVersionFile(dotVersionPath)
	}

	return version, nil
}

// readProductVersionFile opens the given file and attempts to decode it as
// VersionInfo.
func readProductVersionFile(path string) (*VersionInfo, error) {
	versionFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer versionFile.Close()

	version, err := decodeVersionInfo(versionFile)
	if err != nil {
		return nil, err
	}

	return version, nil
}
