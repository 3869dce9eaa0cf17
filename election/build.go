package election

import "fmt"

// NoTarget marks a candidate's delegation target as "abstain": either
// the candidate never named a target, named itself, or named an
// identity absent from the election (a dangling reference, silently
// downgraded per §7).
const NoTarget = -1

// Graph is the S1 output: a dense-integer-indexed view of an
// Election. Ids are assigned 0..N-1 in Election.Candidates order.
//
// Graph is built once per Resolve call and never mutated afterward;
// every array is indexed by the dense id, not re-derived from
// identity bytes, so later stages (potential-vote computation, ring
// detection, tie-breaking) are pure array/slice arithmetic.
type Graph struct {
	// Candidates mirrors the source Election in the same order; index
	// i is the candidate assigned dense id i.
	Candidates []Candidate

	// Target[i] is the dense id that candidate i delegates to, or
	// NoTarget if i abstains (directly or by normalization).
	Target []int

	// index maps an identity's byte content to its dense id. Built
	// once in Build and kept private: callers outside this package
	// have no business looking up arbitrary identities, only walking
	// Target.
	index map[string]int
}

// Build indexes election's candidates into dense integer ids (order
// preserved) and resolves every candidate's vote target to either a
// valid id or NoTarget.
//
// Build fails only with ErrDuplicateIdentity; every other shape of
// input (empty target, self-vote, dangling target) is accepted and
// normalized to NoTarget, per §7. An empty election (zero candidates)
// is valid and yields an empty, non-nil Graph — "no candidates" is a
// property the caller (package winner) turns into Outcome, not an
// error here.
//
// Complexity: O(N) — one pass to build the identity index, one pass
// to resolve targets.
func Build(e Election) (*Graph, error) {
	n := len(e.Candidates)
	index := make(map[string]int, n)
	for i, c := range e.Candidates {
		key := string(c.ID)
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("election: Build: %w: %q", ErrDuplicateIdentity, c.ID)
		}
		index[key] = i
	}

	target := make([]int, n)
	for i, c := range e.Candidates {
		target[i] = resolveTarget(c, index)
	}

	return &Graph{
		Candidates: e.Candidates,
		Target:     target,
		index:      index,
	}, nil
}

// resolveTarget implements the S1 normalization rules: empty target,
// self-vote, and dangling target all collapse to NoTarget.
func resolveTarget(c Candidate, index map[string]int) int {
	if len(c.VoteFor) == 0 {
		return NoTarget
	}
	if c.VoteFor.Equal(c.ID) {
		return NoTarget
	}
	id, ok := index[string(c.VoteFor)]
	if !ok {
		return NoTarget
	}

	return id
}

// Len returns the number of candidates (and thus the valid id range
// [0, Len())) in the graph.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.Candidates)
}

// IDOf returns the dense id assigned to identity, and whether it was
// found. Exposed for diagnostics and tests; the resolver itself never
// needs to look up an identity after Build.
func (g *Graph) IDOf(identity Identity) (int, bool) {
	id, ok := g.index[string(identity)]

	return id, ok
}
