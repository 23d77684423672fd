package userdata

import (
	"path/filepath"
	"testing"
)

func TestGetGlobalSkillsDir_Default(t *testing.T) {
	p := Static{Home: "/home/tester"}
	got, err := GetGlobalSkillsDir(p)
	if err != nil {
		t.Fatalf("GetGlobalSkillsDir: %v", err)
	}
	want := filepath.Join("/home/tester", ".claude", "skills")
	if got != want {
		t.Errorf("GetGlobalSkillsDir = %q, want %q", got, want)
	}
}

func TestGetGlobalSkillsDir_EnvOverride(t *testing.T) {
	p := Static{
		Home: "/home/tester",
		Env:  map[string]string{"SKILL_LAUNCHER_SKILLS_DIR": "/opt/skills"},
	}
	got, err := GetGlobalSkillsDir(p)
	if err != nil {
		t.Fatalf("GetGlobalSkillsDir: %v", err)
	}
	if got != "/opt/skills" {
		t.Errorf("GetGlobalSkillsDir = %q, want %q", got, "/opt/skills")
	}
}

func TestGetPluginsManifestPath(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"default", nil, filepath.Join("/h", ".claude", "plugins", "installed_plugins.json")},
		{"override", map[string]string{"SKILL_LAUNCHER_PLUGINS_MANIFEST": "/tmp/p.json"}, "/tmp/p.json"},
		{"empty override ignored", map[string]string{"SKILL_LAUNCHER_PLUGINS_MANIFEST": ""}, filepath.Join("/h", ".claude", "plugins", "installed_plugins.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetPluginsManifestPath(Static{Home: "/h", Env: tt.env})
			if err != nil {
				t.Fatalf("GetPluginsManifestPath: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetPluginsManifestPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetUsagePath(t *testing.T) {
	got, err := GetUsagePath(Static{Home: "/h"})
	if err != nil {
		t.Fatalf("GetUsagePath: %v", err)
	}
	want := filepath.Join("/h", ".skill-launcher", "skill-usage.json")
	if got != want {
		t.Errorf("GetUsagePath = %q, want %q", got, want)
	}
}
