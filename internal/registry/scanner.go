package registry

import (
	"log/slog"

	"github.com/skill-launcher/skill-launcher/internal/manifest"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
)

// Scanner runs a full scan: directory priority, manifest load, discovery.
// The manifest is re-read on every Scan.
type Scanner struct {
	Provider    userdata.Provider
	ProjectRoot string   // configured project root; the environment override still wins
	Exclude     []string // doublestar patterns for skill directory names
	Logger      *slog.Logger
}

// NewScanner returns a Scanner for the running process.
func NewScanner() *Scanner {
	return &Scanner{Provider: userdata.OS{}}
}

// Sources returns the directories Scan would read, highest priority first.
func (s *Scanner) Sources() []Source {
	return CandidateSources(s.provider(), s.ProjectRoot)
}

// LoadIndex reads the installed-plugins manifest. It never fails; an
// unresolvable manifest path gives an empty index.
func (s *Scanner) LoadIndex() *manifest.Index {
	path, err := userdata.GetPluginsManifestPath(s.provider())
	if err != nil {
		return manifest.NewIndex(nil)
	}
	return manifest.Load(path, s.Logger)
}

// Scan discovers every skill visible from the current project.
func (s *Scanner) Scan() ([]Skill, error) {
	return Discover(s.Sources(), s.LoadIndex(), Options{
		Exclude: s.Exclude,
		Logger:  s.Logger,
	})
}

func (s *Scanner) provider() userdata.Provider {
	if s.Provider == nil {
		return userdata.OS{}
	}
	return s.Provider
}
