package registry

import (
	"os"
	"path/filepath"

	"github.com/skill-launcher/skill-launcher/internal/branding"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
)

// ProjectRoot picks the project directory. The SKILL_LAUNCHER_PROJECT_ROOT
// environment variable is tried first, then configured; the first one that
// is an existing directory wins. Otherwise the working directory is used.
// ok is false only when none of these can be determined.
func ProjectRoot(p userdata.Provider, configured string) (root string, ok bool) {
	var candidates []string
	if v, found := p.LookupEnv(branding.EnvVar("PROJECT_ROOT")); found && v != "" {
		candidates = append(candidates, v)
	}
	if configured != "" {
		candidates = append(candidates, configured)
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c, true
		}
	}

	wd, err := p.WorkingDir()
	if err != nil || wd == "" {
		return "", false
	}
	return wd, true
}

// CandidateSources returns the skill directories to scan, highest priority
// first: <project>/skills, <project>/.codex/skills, <project>/.claude/skills,
// then the global skills directory. Project entries are omitted when no
// project root can be determined. The global entry is always last; without a
// home directory it is resolved against the working directory.
func CandidateSources(p userdata.Provider, configuredRoot string) []Source {
	var sources []Source

	if root, ok := ProjectRoot(p, configuredRoot); ok {
		sources = append(sources,
			Source{Name: "project", BasePath: filepath.Join(root, userdata.SkillsDir), Scope: ScopeProject},
			Source{Name: "project-codex", BasePath: filepath.Join(root, userdata.CodexDir, userdata.SkillsDir), Scope: ScopeProject},
			Source{Name: "project-claude", BasePath: filepath.Join(root, userdata.ClaudeDir, userdata.SkillsDir), Scope: ScopeProject},
		)
	}

	global, err := userdata.GetGlobalSkillsDir(p)
	if err != nil {
		global = filepath.Join(".", userdata.ClaudeDir, userdata.SkillsDir)
	}
	sources = append(sources, Source{Name: "global", BasePath: global, Scope: ScopeUser})

	return sources
}
