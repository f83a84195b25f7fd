// Package arbor exposes module-level metadata shared by the library and
// the grove CLI.
package arbor

// Version is the arbor module version reported by the CLI.
const Version = "0.1.0"
