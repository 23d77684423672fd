// Package provenance attributes a skill to the place it came from: a bundled
// official skill, a plugin source recorded in the installed-plugins manifest,
// or a local directory the user created.
//
// Attribution is best effort. The official check is a license-text heuristic
// and the manifest match tolerates naming drift through alias expansion; none
// of it is a trust boundary.
package provenance
