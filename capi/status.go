package capi

// Status codes returned by electorium_run, mirroring
// fuzzharness.Status but frozen as a stable ABI-facing contract: a C
// caller links against these numbers, so they must never be
// renumbered once shipped.
const (
	StatusOK                int32 = 0
	StatusMalformedInput    int32 = 1
	StatusInvariantViolated int32 = 2
)
