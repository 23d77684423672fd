// Package branding holds the product identity baked into the binary from
// branding.yaml: command name, home directory, env prefix, and the prefix
// used to build skill invocations.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

type identity struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	CommandPrefix string `yaml:"command_prefix"`
}

// fallback applies to any field branding.yaml leaves empty.
var fallback = identity{
	CLIName:       "skill-launcher",
	DisplayName:   "Skill Launcher",
	Description:   "Discover, attribute, and launch Claude skills",
	HomeDir:       ".skill-launcher",
	EnvPrefix:     "SKILL_LAUNCHER",
	CommandPrefix: "claude /",
}

var current = sync.OnceValue(func() identity {
	id := fallback
	_ = yaml.Unmarshal(rawBranding, &id)
	return id
})

// CLIName returns the root command name.
func CLIName() string { return current().CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return current().DisplayName }

// Description returns the one-line product summary.
func Description() string { return current().Description }

// HomeDir returns the dot-directory under $HOME holding config and usage.
func HomeDir() string { return current().HomeDir }

// EnvPrefix returns the environment variable prefix.
func EnvPrefix() string { return current().EnvPrefix }

// CommandPrefix returns the text placed before a skill name to build its
// invocation, e.g. "claude /".
func CommandPrefix() string { return current().CommandPrefix }

// EnvVar qualifies suffix with the env prefix: EnvVar("project_root") is
// "SKILL_LAUNCHER_PROJECT_ROOT".
func EnvVar(suffix string) string {
	return current().EnvPrefix + "_" + strings.ToUpper(suffix)
}
