// Package build holds metadata stamped into the binary at build time.
package build

const (
	// GitHubLink is the static HTTPS URL for the mlsblk public GitHub repository.
	GitHubLink = "https://github.com/mlsblk/mlsblk"
)

var (
	// CommitDate is the date of the latest commit in the repository. This variable gets set at build-time.
	CommitDate string

	// Version is the latest version of the utility. This variable gets set at build-time.
	Version string
)
