// Package identifier parses and orders BSD device identifiers of the form
// disk<N>[s<M>...] as reported by diskutil.
package identifier

import (
	"regexp"
	"strings"
)

// deviceIDExp matches a device identifier with any partition suffix.
var deviceIDExp = regexp.MustCompile(`disk[0-9]+(s[0-9]+)*`)

// ParseDiskID extracts a device identifier from a string such as "disk3",
// "/dev/disk0s2", or diskutil output. Returns the empty string when no
// identifier is present.
func ParseDiskID(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return deviceIDExp.FindString(s)
}

// Compare orders two device identifiers naturally: numeric runs compare as
// integers ("disk9" before "disk10") and the "s" partition separator orders
// a sliced identifier after anything else diverging at the same position, so
// a whole disk sorts before its partitions. Arbitrary strings are tolerated
// and fall back to byte comparison. The result is negative, zero, or
// positive in the usual way and forms a total preorder usable as a sort key.
func Compare(a, b string) int {
	a = strings.TrimPrefix(a, "disk")
	b = strings.TrimPrefix(b, "disk")

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		switch {
		case isDigit(ca) && isDigit(cb):
			ra, rb := digitRun(a, i), digitRun(b, j)
			if c := compareRuns(a[i:ra], b[j:rb]); c != 0 {
				return c
			}
			i, j = ra, rb
		case ca == cb:
			i++
			j++
		case ca == 's':
			return 1
		case cb == 's':
			return -1
		default:
			return int(ca) - int(cb)
		}
	}

	// One side is a prefix of the other; the longer one carries a partition
	// suffix or extra bytes and orders after.
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitRun returns the index just past the run of digits starting at i.
func digitRun(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// compareRuns compares two digit runs as integers of arbitrary length:
// leading zeros are insignificant, then a longer run is the larger number,
// then equal-length runs compare bytewise.
func compareRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
