package provenance

import "strings"

// knownAliases lists directory names whose plugin is published under a
// different package name.
var knownAliases = map[string][]string{
	"obsidian-markdown": {"obsidian"},
}

// Aliases returns the names to try when matching a skill directory against
// manifest package names. The exact name always comes first. Names in the
// alias table add their listed aliases; any other hyphenated name adds the
// name cut at its last hyphen and the name cut at its first hyphen. The
// result is not de-duplicated.
func Aliases(name string) []string {
	out := []string{name}

	if extra, ok := knownAliases[name]; ok {
		return append(out, extra...)
	}

	if i := strings.LastIndex(name, "-"); i >= 0 {
		out = append(out, name[:i])
	}
	if i := strings.Index(name, "-"); i >= 0 {
		out = append(out, name[:i])
	}
	return out
}
