// Package electorium is a resolver for delegated-vote ("liquid
// democracy") elections: every candidate either abstains or casts a
// single vote for one other candidate, and the resolver must name
// exactly one winner, handling delegation chains, delegation rings,
// and patron-based promotion deterministically.
//
// The resolver itself lives in a handful of small packages, each
// covering one stage of resolution:
//
//	election/    — the input model and the normalized functional graph
//	potential/   — total-potential computation, ring detection, patron bookkeeping
//	winner/      — bucket selection, patron promotion, and tie-breaking
//
// Around the core sit the packages that get the core talked to:
//
//	textfmt/     — the plain-text election case format
//	fuzzcompile/ — a binary case format used by the fuzz corpus and the C API
//	fuzzharness/ — a fuzz wrapper that recovers an invariant-violation
//	               panic into a status (capi runs through it too)
//	capi/        — a cgo-exported C ABI around the resolver
//	cmd/electorium/ — a small CLI wrapping the resolver for manual use
//
// Call winner.Resolve to run an election end to end; everything else
// is plumbing around that one call.
package electorium
