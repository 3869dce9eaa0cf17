// Package fuzzharness drives the resolver from the binary fuzz-input
// format (package fuzzcompile), the "fuzz-driven wrapper" referenced
// by spec §6. It recovers an *election.InvariantViolation panic (capi
// relies on it for that, and the CLI has its own recovery) — turning it into a
// reported, crash-equivalent fuzz failure instead of taking the whole
// process down — since a fuzz run needs to keep iterating even after
// an input reproduces a contract break.
package fuzzharness
