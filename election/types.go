package election

import "bytes"

// Identity is a candidate's opaque byte-sequence identity. Equality
// is byte-exact (bytes.Equal); ordering, where the specification
// calls for a deterministic secondary key, is lexicographic over the
// raw bytes.
type Identity []byte

// Equal reports whether id and other are the same identity.
func (id Identity) Equal(other Identity) bool {
	return bytes.Equal(id, other)
}

// Compare returns -1, 0, or +1 per bytes.Compare, giving a total
// order over identities usable as a deterministic tie-break key.
func (id Identity) Compare(other Identity) int {
	return bytes.Compare(id, other)
}

// String renders the identity for logging/diagnostics only; it is
// never used for equality or ordering decisions.
func (id Identity) String() string {
	return string(id)
}

// Candidate is one participant: it may receive votes (its own Anon
// count, plus whatever the delegation graph routes to it) and it may
// cast exactly one vote, named by VoteFor.
//
// A VoteFor that is nil/empty, or equal to ID, means "abstain". That
// normalization is NOT performed when a Candidate or Election is
// constructed; normalization (including dangling-target resolution) is the job of
// the S1 graph build in build.go, so that an Election value remains a
// faithful, unmodified record of what was actually submitted.
type Candidate struct {
	// ID is this candidate's unique identity within its Election.
	ID Identity

	// Anon is the candidate's own anonymous vote count (votes cast by
	// non-candidate voters directly for this candidate). It must not
	// include votes delegated by other candidates — those are derived
	// by the potential-vote computation (see package potential).
	Anon uint64

	// VoteFor names the candidate this Candidate delegates its single
	// vote to. Empty, or equal to ID, means abstain. A VoteFor that
	// does not match any Candidate.ID in the same Election is also
	// treated as abstain (§7: dangling vote_for is not an error).
	VoteFor Identity
}

// Election is an ordered, duplicate-free sequence of Candidates. The
// order is significant only insofar as it assigns dense internal ids
// (see Graph); it must never affect the winner (§8, invariant 2).
type Election struct {
	Candidates []Candidate
}

// Len reports the number of candidates in the election.
func (e Election) Len() int {
	return len(e.Candidates)
}
