// Package registry finds skills on disk. It computes the prioritized list of
// skill directories (project-local first, the user's global directory last),
// scans each one for <dir>/<skill>/SKILL.md, and turns every hit into a Skill
// record with its description and provenance resolved. A skill name seen in a
// higher-priority directory hides the same name further down the list.
package registry
