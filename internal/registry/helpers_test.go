package registry

import (
	"os"
	"path/filepath"
	"testing"
)

// writeSkill creates <base>/<name>/SKILL.md with content.
func writeSkill(t *testing.T, base, name, content string) string {
	t.Helper()
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0644); err != nil {
		t.Fatalf("writing SKILL.md in %s: %v", dir, err)
	}
	return dir
}

func findSkill(skills []Skill, name string) *Skill {
	for i := range skills {
		if skills[i].Name == name {
			return &skills[i]
		}
	}
	return nil
}
