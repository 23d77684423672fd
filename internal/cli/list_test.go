package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/skill-launcher/skill-launcher/internal/registry"
)

const officialHeader = "---\nname: docx\nlicense: Proprietary. LICENSE.txt has complete terms\ndescription: Word documents\n---\n"

func TestList_Table(t *testing.T) {
	env := newTestEnv(t)
	writeSkill(t, env.globalSkills(), "docx", officialHeader)
	writeSkill(t, env.globalSkills(), "notes", "Take notes quickly.\n\nMore text.")

	out, err := run(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"NAME", "docx", "Anthropic", "Word documents", "notes", "Local", "Take notes quickly."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestList_JSON(t *testing.T) {
	env := newTestEnv(t)
	writeSkill(t, env.globalSkills(), "shared", "Global copy.")
	writeSkill(t, env.projectSkills(), "shared", "Project copy.")

	out, err := run(t, env, "list", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}

	var skills []registry.Skill
	if err := json.Unmarshal([]byte(out), &skills); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if len(skills) != 1 {
		t.Fatalf("got %d skills, want 1", len(skills))
	}
	if skills[0].Description != "Project copy." {
		t.Errorf("Description = %q, want project copy to win", skills[0].Description)
	}
	if skills[0].Scope != registry.ScopeProject {
		t.Errorf("Scope = %q, want %q", skills[0].Scope, registry.ScopeProject)
	}
	if skills[0].Invocation != "claude /shared" {
		t.Errorf("Invocation = %q, want %q", skills[0].Invocation, "claude /shared")
	}
}

func TestList_EmptyJSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := run(t, env, "list", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("output = %q, want []", out)
	}
}

func TestList_Empty(t *testing.T) {
	env := newTestEnv(t)

	out, err := run(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No skills found.") {
		t.Errorf("output = %q, want empty notice", out)
	}
}

func TestList_ByUsage(t *testing.T) {
	env := newTestEnv(t)
	writeSkill(t, env.globalSkills(), "alpha", "A.")
	writeSkill(t, env.globalSkills(), "beta", "B.")
	writeFile(t, env.usagePath(), `{"usage":[{"name":"beta","lastUsed":1700000000000,"count":3}]}`)

	out, err := run(t, env, "list", "--json", "--by-usage")
	if err != nil {
		t.Fatalf("list --by-usage: %v", err)
	}
	var skills []registry.Skill
	if err := json.Unmarshal([]byte(out), &skills); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(skills) != 2 || skills[0].Name != "beta" {
		t.Errorf("got order %v, want beta first", skills)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"ééééééé", 5, "éé..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
