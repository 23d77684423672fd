package provenance

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fixed provenance labels.
const (
	LabelOfficial = "Anthropic"
	LabelLocal    = "Local"
)

// sourceLabels maps known plugin source ids to display names.
var sourceLabels = map[string]string{
	"obsidian-skills":         "Obsidian",
	"superpowers-marketplace": "Superpowers",
	"happy-claude-skills":     "Happy Claude",
}

// SourceLabel returns the display name for a plugin source id. Unknown ids
// have hyphens turned into spaces and the first character of each word
// upper-cased, so "acme-tools" becomes "Acme Tools". The rest of each word is
// left as is.
func SourceLabel(source string) string {
	if label, ok := sourceLabels[source]; ok {
		return label
	}

	// Title-case one character at a time; over a whole word the caser would
	// also capitalize letters that follow digits ("1password").
	caser := cases.Title(language.English, cases.NoLower)
	words := strings.Split(strings.ReplaceAll(source, "-", " "), " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = caser.String(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
