// Package winner implements S3 through S5 of the Electorium resolver:
// ring/bucket identification, tentative-winner selection with patron
// recursion, and the two tie-breaking disciplines, wired together by
// the top-level Resolve entry point.
//
// Resolve is the one exported operation the rest of the repository
// (textfmt, fuzzcompile, fuzzharness, capi, cmd/electorium) calls: it
// takes an election.Election and returns an Outcome, running S1
// (package election) and S2 (package potential) internally before S3
// through S5.
//
// Design:
//
//   - S3's bucket only ever contains candidates who could actually
//     hold the win outright: terminals (those who abstain) and ring
//     members. A candidate who delegates always has a
//     total_potential exactly mirrored by its own target (and every
//     node further along its chain), so admitting it to the race
//     would tie it with its own target by construction — and would
//     make R2 unusable as the patron gate, since the patron is
//     usually that very candidate. See eligible in buckets.go.
//   - S3 groups the maximum-total_potential bucket into "groups": a
//     genuine ring, or a synthetic one-member "ring" for an isolated
//     top candidate whose chain terminates without joining a cycle.
//     A single group feeds the normal S4 flow (solo/tentative-winner/
//     patron); more than one group is a tie, resolved per S5 — purely
//     via the within-ring hash discipline (§4.5a) if every tied group
//     is a singleton, or via the out-of-ring discipline (§4.5b,
//     falling back to §4.5a on a further tie) the moment at least one
//     tied group is a genuine ring.
//   - S4's solo votes and S5b's out-of-ring votes are, for every
//     candidate that can appear in either role, exactly the Solo
//     value S2 already computed (see package potential's doc comment
//     for why); S4/S5 never recompute a subtree sum from scratch.
//   - Patron recursion (§4.4) walks the reverse graph one non-ring
//     hop at a time from the tentative winner, always measuring the
//     ">50%" threshold against the *original* tentative winner's solo
//     votes, and stops the moment a found patron fails the R2 check —
//     it does not keep searching past a rejected patron.
//
// Errors: Resolve panics with an *election.InvariantViolation (never
// returns one as an error) when one of the resolver's own contracts
// breaks; see election.InvariantViolation and §7.
//
// Configuration: Resolve takes a resolveOption slice (functional
// options, as the reference graph library configures its Graph/DFS
// types) for the few knobs the core exposes — currently just
// WithHashFunc, letting a caller swap out the §4.5a tie-break hash
// (e.g. for a deterministic test double) without changing Resolve's
// signature. See options.go.
package winner
