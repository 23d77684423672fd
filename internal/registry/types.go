package registry

import "fmt"

// DefaultCategory is assigned to every skill until categories are read from
// skill metadata.
const DefaultCategory = "general"

// Scope values for Skill.Scope.
const (
	ScopeProject = "project"
	ScopeUser    = "user"
)

// Source is one directory that may hold skill subdirectories.
type Source struct {
	Name     string // e.g., "project", "project-claude", "global"
	BasePath string // absolute path to the directory
	Scope    string // ScopeProject or ScopeUser
}

// Skill is a resolved skill ready for display or launch.
type Skill struct {
	Name        string `json:"name"`         // directory name, unique in a scan
	DisplayName string `json:"display_name"` // header name, else Name
	Description string `json:"description"`
	Category    string `json:"category"`
	Provenance  string `json:"provenance"`           // "Anthropic", a plugin source label, or "Local"
	Location    string `json:"path"`                 // absolute path to the skill directory
	Invocation  string `json:"command"`              // e.g., "claude /docx"
	Scope       string `json:"scope"`                // "project" or "user"
	Attribution string `json:"attribution"`          // "official", "installed", or "local"
	PluginKey   string `json:"plugin_key,omitempty"` // manifest key that supplied Provenance
}

// ScanError reports a skill directory that exists but could not be listed.
// It is the only error a scan returns.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("reading skills directory %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }
