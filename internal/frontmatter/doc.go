// Package frontmatter extracts the "---" delimited key/value header from a
// SKILL.md document and derives the skill description from it.
//
// The header is read as flat "key: value" lines rather than YAML: values such
// as "Proprietary. See LICENSE.txt for complete terms." or descriptions
// containing ": " must come through verbatim.
package frontmatter
