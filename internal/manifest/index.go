package manifest

import (
	"log/slog"
	"os"
	"strings"
)

// Index is a read-only lookup table over the installed-plugins manifest.
type Index struct {
	plugins map[string][]InstallRecord
}

// NewIndex wraps an already-decoded plugin map. A nil map is an empty index.
func NewIndex(plugins map[string][]InstallRecord) *Index {
	if plugins == nil {
		plugins = map[string][]InstallRecord{}
	}
	return &Index{plugins: plugins}
}

// Load reads and validates the manifest at path. Any failure is logged at
// debug level and yields an empty index. The file is read on every call.
func Load(path string, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("plugins manifest unavailable", "path", path, "error", err)
		return NewIndex(nil)
	}

	doc, report, err := Decode(data)
	switch {
	case err != nil:
		logger.Debug("plugins manifest unreadable", "path", path, "error", err)
		return NewIndex(nil)
	case doc == nil:
		logger.Debug("plugins manifest does not match schema", "path", path, "problems", len(report.Problems))
		return NewIndex(nil)
	}
	return NewIndex(doc.Plugins)
}

// Len returns the number of manifest keys.
func (idx *Index) Len() int {
	return len(idx.plugins)
}

// Entries returns every manifest key split into package and source. The order
// follows map iteration and is deliberately unspecified; callers that stop at
// the first match may see different winners across runs when a package name
// is installed from several sources.
func (idx *Index) Entries() []Entry {
	entries := make([]Entry, 0, len(idx.plugins))
	for key, records := range idx.plugins {
		pkg, source := SplitKey(key)
		entries = append(entries, Entry{
			Key:     key,
			Package: pkg,
			Source:  source,
			Records: records,
		})
	}
	return entries
}

// Lookup returns every attributable entry whose package name equals name.
func (idx *Index) Lookup(name string) []Entry {
	var out []Entry
	for _, e := range idx.Entries() {
		if e.Attributable() && e.Package == name {
			out = append(out, e)
		}
	}
	return out
}

// SplitKey splits a manifest key on its first "@". A key without "@" is all
// package name with an empty source.
func SplitKey(key string) (pkg, source string) {
	pkg, source, _ = strings.Cut(key, "@")
	return pkg, source
}

// Attributable reports whether the key names both a package and a source.
// Keys without "@", or with nothing after it, cannot label a skill.
func (e Entry) Attributable() bool {
	return e.Package != "" && e.Source != ""
}
