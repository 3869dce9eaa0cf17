// Package election defines the input data model for Electorium: the
// Candidate and Election records that describe a delegated-vote
// election, and the S1 graph-build step that turns an ordered list of
// Candidates into a dense-integer-indexed delegation graph.
//
// What:
//
//   - Candidate: an opaque byte-sequence identity, a non-negative
//     anonymous vote count, and a vote target (another candidate's
//     identity, or "abstain").
//   - Election: an ordered, duplicate-free sequence of Candidates.
//   - Graph: the S1 output — dense ids 0..N-1 in input order, an
//     identity→id index, and a target[i] array where target[i] is
//     either a valid id or NoTarget (abstain).
//
// Why:
//
//   - Every downstream stage (potential-vote computation, ring
//     detection, tie-breaking) operates on dense integer ids rather
//     than re-hashing byte-slice identities on every chain step.
//   - Resolving dangling/self/empty targets to NoTarget happens once,
//     here, so later stages can assume target[i] is always either
//     NoTarget or a valid index.
//
// Errors:
//
//	ErrDuplicateIdentity - two candidates share the same identity.
//
// Complexity: Build is O(N) given an identity index built in one pass.
package election
