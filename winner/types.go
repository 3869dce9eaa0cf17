package winner

import "github.com/cjdelisle/electorium/election"

// Outcome is the result of Resolve: either a single winning candidate
// identity, or NoCandidates for an empty election (§7 — not an
// error).
type Outcome struct {
	// HasWinner is true iff the source election had at least one
	// candidate.
	HasWinner bool

	// Winner is the winning candidate's identity. Only meaningful when
	// HasWinner is true; NoCandidates leaves it nil.
	Winner election.Identity
}

// NoCandidates is the Outcome for an empty election.
var NoCandidates = Outcome{}

// group is a best-bucket partition used internally by S3/S4/S5: a
// genuine ring, or a synthetic one-member "ring" standing in for an
// isolated top candidate (see doc.go).
type group struct {
	members   []int // ascending candidate id
	ringID    int   // potential.NoRing for a synthetic singleton group
	potential uint64
}
