// Package capi implements spec §6's "external callable surface": a
// foreign harness constructs a resolver context (optionally verbose),
// destroys it, and runs it against a byte buffer, getting back a
// small signed status distinguishing success, malformed input, and an
// internal invariant violation.
//
// The three operations are exported for cgo under the cgo build tag;
// every exported function is a thin, allocation-careful shim around
// fuzzcompile.Decompile and winner.Resolve — the actual algorithm
// lives entirely in the pure election/potential/winner packages.
package capi
