package query

import (
	"strings"

	"github.com/skill-launcher/skill-launcher/internal/registry"
)

// Mode is how launcher input should be interpreted.
type Mode string

const (
	ModeSearch Mode = "search"
	ModeDirect Mode = "direct"
	ModeTask   Mode = "task"
)

// Input is parsed launcher input.
type Input struct {
	Mode      Mode
	Query     string // lower-cased search text (search mode)
	SkillName string // name after "/" (direct and task modes)
	Task      string // words after the skill name (task mode)
}

// Parse interprets raw launcher input.
func Parse(raw string) Input {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "/") {
		return Input{Mode: ModeSearch, Query: strings.ToLower(trimmed)}
	}

	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return Input{Mode: ModeDirect}
	}
	in := Input{Mode: ModeDirect, SkillName: fields[0]}
	if len(fields) > 1 {
		in.Mode = ModeTask
		in.Task = strings.Join(fields[1:], " ")
	}
	return in
}

// Filter returns the skills that match in, preserving order. Search mode
// matches a case-insensitive substring of the name or display name and never
// looks at descriptions; an empty query matches everything. Direct and task
// modes match skills whose name starts with the requested name.
func Filter(skills []registry.Skill, in Input) []registry.Skill {
	out := make([]registry.Skill, 0, len(skills))
	for _, s := range skills {
		if matches(s, in) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s registry.Skill, in Input) bool {
	if in.Mode == ModeSearch {
		if in.Query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(s.Name), in.Query) ||
			strings.Contains(strings.ToLower(s.DisplayName), in.Query)
	}
	return strings.HasPrefix(s.Name, in.SkillName)
}

// Command returns the slash command text to send for s, with the task
// appended in task mode.
func Command(s registry.Skill, in Input) string {
	cmd := "/" + strings.TrimPrefix(s.Name, "/")
	if in.Mode == ModeTask && in.Task != "" {
		cmd += " " + in.Task
	}
	return cmd
}
