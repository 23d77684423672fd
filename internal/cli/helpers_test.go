package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skill-launcher/skill-launcher/internal/userdata"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

// testEnv is a temporary home and project directory.
type testEnv struct {
	home    string
	project string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	return testEnv{home: t.TempDir(), project: t.TempDir()}
}

func (e testEnv) provider() userdata.Provider {
	return userdata.Static{Home: e.home, Dir: e.project}
}

func (e testEnv) globalSkills() string { return filepath.Join(e.home, ".claude", "skills") }

func (e testEnv) projectSkills() string { return filepath.Join(e.project, ".claude", "skills") }

func (e testEnv) usagePath() string {
	return filepath.Join(e.home, ".skill-launcher", "skill-usage.json")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeSkill(t *testing.T, base, name, content string) {
	t.Helper()
	writeFile(t, filepath.Join(base, name, "SKILL.md"), content)
}

func (e testEnv) writeManifest(t *testing.T, content string) {
	t.Helper()
	writeFile(t, filepath.Join(e.home, ".claude", "plugins", "installed_plugins.json"), content)
}

// resetFlags restores every package-level flag variable to its default.
// Cobra keeps flag values between Execute calls on the same command tree.
func resetFlags() {
	verbose = false
	projectRootFlag = ""
	listJSON = false
	listByUsage = false
	searchJSON = false
	useNoRecord = false
	infoJSON = false
	checkManifest = ""
	versionShort = false
	versionJSON = false
}

// run executes the root command against env and returns combined output.
func run(t *testing.T, env testEnv, args ...string) (string, error) {
	t.Helper()

	prevProvider, prevNow := provider, now
	t.Cleanup(func() {
		provider, now = prevProvider, prevNow
		resetFlags()
	})
	provider = env.provider()
	now = func() time.Time { return fixedNow }
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
