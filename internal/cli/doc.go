// Package cli defines the Cobra command tree for the skill-launcher CLI. Each
// file in this package registers one top-level command (list, search, use,
// etc.) with the root command. Commands delegate scanning, attribution, and
// matching to internal packages and only handle flags and output formatting.
package cli
