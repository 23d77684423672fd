// Package manifest loads the installed-plugins manifest that records which
// packages were installed from which plugin sources. Keys have the form
// "<name>@<source-id>" and map to one or more install records.
//
// Loading never fails: a missing, unparsable, or structurally invalid file
// produces an empty Index. The document is checked against an embedded JSON
// schema before decoding.
package manifest
