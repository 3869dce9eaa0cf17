package winner_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/winner"
)

func cand(id string, anon uint64, voteFor string) election.Candidate {
	c := election.Candidate{ID: election.Identity(id), Anon: anon}
	if voteFor != "" {
		c.VoteFor = election.Identity(voteFor)
	}

	return c
}

func mustResolve(t *testing.T, cands ...election.Candidate) winner.Outcome {
	t.Helper()
	out, err := winner.Resolve(election.Election{Candidates: cands})
	require.NoError(t, err)

	return out
}

// A straight three-way race with no delegation (the shape of scenario
// S2): largest anon wins.
func TestResolve_BaseThreeWay(t *testing.T) {
	out := mustResolve(t,
		cand("A", 100, ""),
		cand("B", 50, ""),
		cand("C", 30, ""),
	)
	require.True(t, out.HasWinner)
	assert.Equal(t, election.Identity("A"), out.Winner)
}

// Delegation funnels votes up to an otherwise-unremarkable candidate
// (the shape of scenario S1), who ends up with the most total_potential.
func TestResolve_SimpleDelegationChain(t *testing.T) {
	out := mustResolve(t,
		cand("A", 10, ""),
		cand("B", 5, "A"),
		cand("C", 5, "A"),
		cand("D", 8, ""),
	)
	require.True(t, out.HasWinner)
	assert.Equal(t, election.Identity("A"), out.Winner)
}

// S3: a two-member ring at the maximum resolves via the hash
// tie-break (§4.5a), not via arbitrary iteration order. The ring's
// shared total_potential is 20 (10+10); Blake2b-512("B"||u64_le(20))
// is lexicographically smaller than Blake2b-512("A"||u64_le(20)), so
// the mandated winner is specifically B, not merely "one of the ring".
func TestResolve_RingOfTwoHashTiebreak(t *testing.T) {
	out := mustResolve(t,
		cand("A", 10, "B"),
		cand("B", 10, "A"),
	)
	require.True(t, out.HasWinner)
	assert.Equal(t, election.Identity("B"), out.Winner)
}

// S4: a patron whose own total_potential is a strict majority of the
// original tentative winner's solo votes, and exceeds R2, promotes.
// P delegates to W, so P never competes for the bucket directly (see
// eligible in buckets.go) — W is the sole eligible top candidate at
// total_potential 0+10=10. P's own total_potential is 10, clearing
// >50% of W's solo (10). R2 = 3 (the best of X, Y), well below P's
// 10, so P promotes and has no qualifying patron of its own.
func TestResolve_PatronPromotion(t *testing.T) {
	out := mustResolve(t,
		cand("W", 0, ""),
		cand("P", 10, "W"),
		cand("X", 3, ""),
		cand("Y", 2, ""),
	)
	require.True(t, out.HasWinner)
	assert.Equal(t, election.Identity("P"), out.Winner)
}

// S5: a found patron that does not clear R2 stops recursion; the
// original tentative winner stands. W's own anon (4) keeps its
// total_potential (4+6=10) strictly ahead of P's (6), so W alone is
// the eligible top bucket; P's own total_potential (6) clears >50% of
// W's solo (10), but R (total_potential 7) sits above P's 6, so the
// patron is rejected and recursion stops at the original tentative
// winner, W.
func TestResolve_PatronBlockedByR2(t *testing.T) {
	out := mustResolve(t,
		cand("W", 4, ""),
		cand("P", 6, "W"),
		cand("R", 7, ""),
	)
	require.True(t, out.HasWinner)
	assert.Equal(t, election.Identity("W"), out.Winner)
}

// WithHashFunc substitutes a deterministic stand-in for Blake2b-512,
// so a test can assert an exact tie-break outcome by construction
// rather than by hand-computing a real digest.
func TestResolve_WithHashFuncOverridesTiebreak(t *testing.T) {
	forceWinner := func(id election.Identity) func(election.Identity, uint64) [64]byte {
		return func(candidate election.Identity, _ uint64) [64]byte {
			if candidate.Equal(id) {
				return [64]byte{} // lexicographically smallest possible digest
			}

			var h [64]byte
			h[0] = 0xFF

			return h
		}
	}

	cands := election.Election{Candidates: []election.Candidate{
		cand("A", 10, "B"),
		cand("B", 10, "A"),
	}}

	out, err := winner.Resolve(cands, winner.WithHashFunc(forceWinner(election.Identity("A"))))
	require.NoError(t, err)
	assert.Equal(t, election.Identity("A"), out.Winner)

	out, err = winner.Resolve(cands, winner.WithHashFunc(forceWinner(election.Identity("B"))))
	require.NoError(t, err)
	assert.Equal(t, election.Identity("B"), out.Winner)
}

// S6: an empty election has no winner and is not an error.
func TestResolve_EmptyElection(t *testing.T) {
	out := mustResolve(t)
	assert.Equal(t, winner.NoCandidates, out)
	assert.False(t, out.HasWinner)
}

// Invariant 1: exactly one winner for any non-empty election.
func TestResolve_AlwaysProducesAWinner(t *testing.T) {
	out := mustResolve(t,
		cand("A", 1, ""),
		cand("B", 1, "A"),
		cand("C", 1, "B"),
	)
	assert.True(t, out.HasWinner)
	assert.NotEmpty(t, out.Winner)
}

// Invariant 2: candidate order must never affect the outcome.
func TestResolve_ReorderInvariance(t *testing.T) {
	base := []election.Candidate{
		cand("A", 7, ""),
		cand("B", 3, "A"),
		cand("C", 4, "A"),
		cand("D", 6, ""),
		cand("E", 2, "D"),
	}
	want := mustResolve(t, base...)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]election.Candidate(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := mustResolve(t, shuffled...)
		assert.Equal(t, want.Winner, got.Winner, "trial %d", trial)
	}
}

// Invariant 3: a winner who casts a vote (outside any ring) still wins
// once that vote is changed to abstain. The first case's winner A
// already abstains; the second pair has P win while voting for W (by
// patron promotion) and checks that P still wins after abstaining.
func TestResolve_VotingDoesNotPenalize(t *testing.T) {
	out := mustResolve(t,
		cand("A", 100, ""),
		cand("B", 5, ""), // abstains
		cand("C", 3, "B"),
	)
	require.True(t, out.HasWinner)
	assert.Equal(t, election.Identity("A"), out.Winner)

	voting := mustResolve(t,
		cand("W", 0, ""),
		cand("P", 10, "W"),
		cand("X", 3, ""),
	)
	abstaining := mustResolve(t,
		cand("W", 0, ""),
		cand("P", 10, ""),
		cand("X", 3, ""),
	)
	require.Equal(t, election.Identity("P"), voting.Winner)
	assert.Equal(t, voting.Winner, abstaining.Winner)
}

// Invariant 4: ring members always share one total_potential (T1),
// exercised indirectly through a winner that must come from the ring
// and not be penalized relative to its ring-mates.
func TestResolve_RingSharesPotential(t *testing.T) {
	out := mustResolve(t,
		cand("A", 3, "B"),
		cand("B", 3, "C"),
		cand("C", 4, "A"),
		cand("D", 9, ""), // just below the ring's shared total of 10
	)
	require.True(t, out.HasWinner)
	assert.Contains(t, []string{"A", "B", "C"}, string(out.Winner))
}

// Invariant 6: the hash tie-break is deterministic and total — running
// the same tied election twice yields the same winner.
func TestResolve_TiebreakDeterminism(t *testing.T) {
	cands := []election.Candidate{
		cand("alpha", 10, ""),
		cand("beta", 10, ""),
		cand("gamma", 10, ""),
	}
	first := mustResolve(t, cands...)
	for i := 0; i < 5; i++ {
		got := mustResolve(t, cands...)
		assert.Equal(t, first.Winner, got.Winner)
	}
}

func TestResolve_DuplicateIdentityIsAnError(t *testing.T) {
	_, err := winner.Resolve(election.Election{Candidates: []election.Candidate{
		cand("A", 1, ""),
		cand("A", 2, ""),
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, election.ErrDuplicateIdentity)
}
