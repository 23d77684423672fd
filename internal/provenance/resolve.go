package provenance

import (
	"slices"

	"github.com/skill-launcher/skill-launcher/internal/frontmatter"
	"github.com/skill-launcher/skill-launcher/internal/manifest"
)

// Kind classifies how a provenance label was reached.
type Kind int

const (
	KindLocal Kind = iota
	KindOfficial
	KindInstalled
)

func (k Kind) String() string {
	switch k {
	case KindOfficial:
		return "official"
	case KindInstalled:
		return "installed"
	default:
		return "local"
	}
}

// Provenance is the attribution chosen for one skill.
type Provenance struct {
	Label string
	Kind  Kind
	Match *manifest.Entry // manifest entry that matched; nil unless KindInstalled
}

// Resolve attributes a skill. An official license wins outright. Otherwise
// the first manifest entry whose package name equals any alias of name
// supplies the label; keys lacking a source id are ignored. With no match the
// skill is Local.
//
// Manifest entries are visited in unspecified order, so a name that matches
// packages from several sources may resolve to any one of them.
func Resolve(name string, header *frontmatter.Block, idx *manifest.Index) Provenance {
	if IsOfficial(header) {
		return Provenance{Label: LabelOfficial, Kind: KindOfficial}
	}

	if idx != nil {
		aliases := Aliases(name)
		for _, entry := range idx.Entries() {
			if !entry.Attributable() || !slices.Contains(aliases, entry.Package) {
				continue
			}
			e := entry
			return Provenance{
				Label: SourceLabel(entry.Source),
				Kind:  KindInstalled,
				Match: &e,
			}
		}
	}

	return Provenance{Label: LabelLocal, Kind: KindLocal}
}
