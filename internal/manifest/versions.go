package manifest

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SortByVersion returns a copy of records ordered newest version first.
// Records whose version is not valid semver keep their relative order after
// all parseable ones.
func SortByVersion(records []InstallRecord) []InstallRecord {
	out := make([]InstallRecord, len(records))
	copy(out, records)

	parsed := make(map[int]*semver.Version, len(out))
	idx := make([]int, len(out))
	for i := range out {
		idx[i] = i
		if v, err := parseSemver(out[i].Version); err == nil {
			parsed[i] = v
		}
	}

	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := parsed[idx[a]], parsed[idx[b]]
		switch {
		case va == nil:
			return false
		case vb == nil:
			return true
		default:
			return va.GreaterThan(vb)
		}
	})

	sorted := make([]InstallRecord, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// Latest returns the newest install record, if any.
func Latest(records []InstallRecord) (InstallRecord, bool) {
	if len(records) == 0 {
		return InstallRecord{}, false
	}
	return SortByVersion(records)[0], true
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
