package userdata

import (
	"fmt"
	"path/filepath"

	"github.com/skill-launcher/skill-launcher/internal/branding"
)

// Directory and file name constants for the Claude home layout.
const (
	ClaudeDir        = ".claude"
	SkillsDir        = "skills"
	PluginsDir       = "plugins"
	InstalledPlugins = "installed_plugins.json"
	CodexDir         = ".codex"
	SkillFile        = "SKILL.md"
	UsageFile        = "skill-usage.json"
	ConfigFile       = "config.yaml"
)

// Permission constants.
const (
	DirPermNormal  = 0755
	FilePermNormal = 0644
)

// GetGlobalSkillsDir returns the user-wide skills directory.
// It checks SKILL_LAUNCHER_SKILLS_DIR first, then falls back to ~/.claude/skills.
func GetGlobalSkillsDir(p Provider) (string, error) {
	if v, ok := p.LookupEnv(branding.EnvVar("SKILLS_DIR")); ok && v != "" {
		return v, nil
	}
	home, err := p.HomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ClaudeDir, SkillsDir), nil
}

// GetPluginsManifestPath returns the installed-plugins manifest location.
// It checks SKILL_LAUNCHER_PLUGINS_MANIFEST first, then falls back to
// ~/.claude/plugins/installed_plugins.json.
func GetPluginsManifestPath(p Provider) (string, error) {
	if v, ok := p.LookupEnv(branding.EnvVar("PLUGINS_MANIFEST")); ok && v != "" {
		return v, nil
	}
	home, err := p.HomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ClaudeDir, PluginsDir, InstalledPlugins), nil
}

// GetAppDir returns the launcher's own directory (~/.skill-launcher).
func GetAppDir(p Provider) (string, error) {
	home, err := p.HomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetUsagePath returns the usage record file. It checks
// SKILL_LAUNCHER_USAGE_FILE first, then falls back to
// ~/.skill-launcher/skill-usage.json.
func GetUsagePath(p Provider) (string, error) {
	if v, ok := p.LookupEnv(branding.EnvVar("USAGE_FILE")); ok && v != "" {
		return v, nil
	}
	dir, err := GetAppDir(p)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, UsageFile), nil
}

// GetConfigPath returns ~/.skill-launcher/config.yaml.
func GetConfigPath(p Provider) (string, error) {
	dir, err := GetAppDir(p)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}
