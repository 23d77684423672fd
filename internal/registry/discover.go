package registry

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/skill-launcher/skill-launcher/internal/branding"
	"github.com/skill-launcher/skill-launcher/internal/frontmatter"
	"github.com/skill-launcher/skill-launcher/internal/manifest"
	"github.com/skill-launcher/skill-launcher/internal/provenance"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
)

// Options tune a discovery pass.
type Options struct {
	// Exclude holds doublestar patterns matched against skill directory
	// names. Hidden directories are always skipped.
	Exclude []string
	Logger  *slog.Logger
}

// Discover scans sources in order and returns one Skill per distinct name.
// Sources that do not exist are skipped. A source that exists but cannot be
// listed aborts the scan with a *ScanError and no partial result.
func Discover(sources []Source, idx *manifest.Index, opts Options) ([]Skill, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seen := make(map[string]bool)
	result := make([]Skill, 0)

	for _, src := range sources {
		skills, err := walkSource(src, idx, opts.Exclude, logger)
		if err != nil {
			return nil, err
		}
		for _, s := range skills {
			if seen[s.Name] {
				logger.Debug("skill shadowed by higher-priority source", "name", s.Name, "source", src.Name)
				continue
			}
			seen[s.Name] = true
			result = append(result, s)
		}
	}

	return result, nil
}

// walkSource lists the immediate subdirectories of one source and parses the
// SKILL.md in each. Subdirectories without a readable SKILL.md are skipped.
func walkSource(src Source, idx *manifest.Index, exclude []string, logger *slog.Logger) ([]Skill, error) {
	info, err := os.Stat(src.BasePath)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(src.BasePath)
	if err != nil {
		return nil, &ScanError{Dir: src.BasePath, Err: err}
	}

	var skills []Skill
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || isExcluded(name, exclude) {
			continue
		}

		dir := filepath.Join(src.BasePath, name)
		if !isDir(entry, dir) {
			continue
		}

		skill, ok := parseSkill(name, dir, idx, logger)
		if !ok {
			continue
		}
		skill.Scope = src.Scope
		skills = append(skills, skill)
	}
	return skills, nil
}

// parseSkill reads <dir>/SKILL.md and builds the Skill record for it.
func parseSkill(name, dir string, idx *manifest.Index, logger *slog.Logger) (Skill, bool) {
	data, err := os.ReadFile(filepath.Join(dir, userdata.SkillFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("skipping unreadable skill", "dir", dir, "error", err)
		}
		return Skill{}, false
	}

	content := string(data)
	header, _ := frontmatter.Parse(content)

	displayName := name
	if v, ok := header.Get("name"); ok {
		displayName = v
	}

	location := dir
	if abs, err := filepath.Abs(dir); err == nil {
		location = abs
	}

	prov := provenance.Resolve(name, header, idx)
	var pluginKey string
	if prov.Match != nil {
		pluginKey = prov.Match.Key
	}

	return Skill{
		Name:        name,
		DisplayName: displayName,
		Description: frontmatter.Description(content, header),
		Category:    DefaultCategory,
		Provenance:  prov.Label,
		Location:    location,
		Invocation:  branding.CommandPrefix() + name,
		Attribution: prov.Kind.String(),
		PluginKey:   pluginKey,
	}, true
}

// isDir reports whether entry is a directory, following symlinks.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isExcluded reports whether name matches any exclude pattern. Malformed
// patterns never match.
func isExcluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
