package system

import (
	"fmt"

	"github.com/Masterminds/semver"
)

// Release enumerates the macOS releases the lister knows about.
type Release uint8

const (
	Unknown Release = iota
	HighSierra
	Mojave
	Catalina
	BigSur
	Monterey
	Ventura
	Sonoma
	Sequoia
	Tahoe
	CompatMode
)

func (r Release) String() string {
	switch r {
	case HighSierra:
		return "High Sierra"
	case Mojave:
		return "Mojave"
	case Catalina:
		return "Catalina"
	case BigSur:
		return "Big Sur"
	case Monterey:
		return "Monterey"
	case Ventura:
		return "Ventura"
	case Sonoma:
		return "Sonoma"
	case Sequoia:
		return "Sequoia"
	case Tahoe:
		return "Tahoe"
	case CompatMode:
		return "Compatibility Mode"
	default:
		return "unknown"
	}
}

var (
	// highSierraConstraints identify High Sierra versions (10.13.x), the first release with APFS system volumes.
	highSierraConstraints = mustInitConstraint(semver.NewConstraint("~10.13"))
	// mojaveConstraints identify Mojave versions (10.14.x).
	mojaveConstraints = mustInitConstraint(semver.NewConstraint("~10.14"))
	// catalinaConstraints identify Catalina versions (10.15.x).
	catalinaConstraints = mustInitConstraint(semver.NewConstraint("~10.15"))
	// bigSurConstraints identify Big Sur versions (11.x.x).
	bigSurConstraints = mustInitConstraint(semver.NewConstraint("~11"))
	// montereyConstraints identify Monterey versions (12.x.x).
	montereyConstraints = mustInitConstraint(semver.NewConstraint("~12"))
	// venturaConstraints identify Ventura versions (13.x.x).
	venturaConstraints = mustInitConstraint(semver.NewConstraint("~13"))
	// sonomaConstraints identify Sonoma versions (14.x.x).
	sonomaConstraints = mustInitConstraint(semver.NewConstraint("~14"))
	// sequoiaConstraints identify Sequoia versions (15.x.x).
	sequoiaConstraints = mustInitConstraint(semver.NewConstraint("~15"))
	// tahoeConstraints identify Tahoe versions (26.x.x).
	tahoeConstraints = mustInitConstraint(semver.NewConstraint("~26"))
	// compatModeConstraints identify the pinned version reported when the
	// system runs with SYSTEM_VERSION_COMPAT=1 and the bypass read failed.
	compatModeConstraints = mustInitConstraint(semver.NewConstraint("~10.16"))
)

// mustInitConstraint ensures that a semver.Constraints can be initialized and used.
func mustInitConstraint(c *semver.Constraints, err error) *semver.Constraints {
	if err != nil {
		panic(fmt.Errorf("must initialize semver constraint: %w", err))
	}
	return c
}

// Product identifies a macOS release and product version (e.g. Sonoma 14.x).
type Product struct {
	Release
	Version semver.Version
}

func (p Product) String() string {
	return fmt.Sprintf("macOS %s %s", p.Release, p.Version.String())
}

// newProduct parses the version string into a semver.Version and resolves
// the Release it belongs to.
func newProduct(version string) (*Product, error) {
	ver, err := semver.NewVersion(version)
	if err != nil {
		return nil, err
	}

	release := getVersionRelease(*ver)

	product := &Product{
		Release: release,
		Version: *ver,
	}

	return product, nil
}

// getVersionRelease checks all known release constraints to determine which
// Release the version belongs to.
func getVersionRelease(version semver.Version) Release {
	switch {
	case highSierraConstraints.Check(&version):
		return HighSierra
	case mojaveConstraints.Check(&version):
		return Mojave
	case catalinaConstraints.Check(&version):
		return Catalina
	case bigSurConstraints.Check(&version):
		return BigSur
	case montereyConstraints.Check(&version):
		return Monterey
	case venturaConstraints.Check(&version):
		return Ventura
	case sonomaConstraints.Check(&version):
		return Sonoma
	case sequoiaConstraints.Check(&version):
		return Sequoia
	case tahoeConstraints.Check(&version):
		return Tahoe
	case compatModeConstraints.Check(&version):
		return CompatMode
	default:
		return Unknown
	}
}
