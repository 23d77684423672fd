package provenance

import (
	"strings"

	"github.com/skill-launcher/skill-launcher/internal/frontmatter"
)

// officialLicenseMarkers are lower-case fragments found in the license line
// of skills bundled by Anthropic.
var officialLicenseMarkers = []string{
	"proprietary",
	"license.txt",
	"complete terms",
}

// IsOfficial reports whether the header's license value looks like the one
// shipped with bundled skills. A missing header or license is not official.
func IsOfficial(header *frontmatter.Block) bool {
	license, ok := header.Get("license")
	if !ok {
		return false
	}
	license = strings.ToLower(license)
	for _, marker := range officialLicenseMarkers {
		if strings.Contains(license, marker) {
			return true
		}
	}
	return false
}
