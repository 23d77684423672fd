package query

import (
	"sort"

	"github.com/skill-launcher/skill-launcher/internal/registry"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
)

// SortByUsage returns a copy of skills with used skills first, highest usage
// score first. Skills without a usage record keep their scan order after
// them.
func SortByUsage(skills []registry.Skill, usage *userdata.UsageData) []registry.Skill {
	out := make([]registry.Skill, len(skills))
	copy(out, skills)
	if usage == nil || len(usage.Usage) == 0 {
		return out
	}

	scores := make(map[string]int64, len(usage.Usage))
	for _, r := range usage.Usage {
		scores[r.Name] = r.Score()
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, iok := scores[out[i].Name]
		sj, jok := scores[out[j].Name]
		switch {
		case iok && jok:
			return si > sj
		default:
			return iok && !jok
		}
	})
	return out
}
