package query

import (
	"testing"

	"github.com/skill-launcher/skill-launcher/internal/registry"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Input
	}{
		{"", Input{Mode: ModeSearch}},
		{"  Commit ", Input{Mode: ModeSearch, Query: "commit"}},
		{"/commit", Input{Mode: ModeDirect, SkillName: "commit"}},
		{"/commit   fix the   bug", Input{Mode: ModeTask, SkillName: "commit", Task: "fix the bug"}},
		{"/", Input{Mode: ModeDirect}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Parse(tt.raw); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

var sample = []registry.Skill{
	{Name: "commit", DisplayName: "Git Commit", Description: "docx mention"},
	{Name: "commit-push", DisplayName: "commit-push"},
	{Name: "docx", DisplayName: "Word Documents"},
}

func names(skills []registry.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{"commit", "commit-push", "docx"}},
		{"COMMIT", []string{"commit", "commit-push"}},
		{"word", []string{"docx"}},
		{"mention", []string{}},
		{"/commit", []string{"commit", "commit-push"}},
		{"/commit-p tidy up", []string{"commit-push"}},
		{"/zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := names(Filter(sample, Parse(tt.raw)))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCommand(t *testing.T) {
	s := registry.Skill{Name: "commit"}
	if got := Command(s, Parse("/commit")); got != "/commit" {
		t.Errorf("Command = %q, want /commit", got)
	}
	if got := Command(s, Parse("/com write tests")); got != "/commit write tests" {
		t.Errorf("Command = %q, want %q", got, "/commit write tests")
	}
	if got := Command(registry.Skill{Name: "/slashed"}, Parse("slashed")); got != "/slashed" {
		t.Errorf("Command = %q, want /slashed", got)
	}
}
