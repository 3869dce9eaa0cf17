package fuzzharness_test

import (
	"testing"

	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/fuzzcompile"
	"github.com/cjdelisle/electorium/fuzzharness"
)

// FuzzRun seeds the corpus with a handful of compiled spec scenarios,
// then hands raw (fuzzer-mutated) bytes straight to Run: the only
// invariant checked here is that Run never panics — a genuine
// invariant violation must come back as StatusInvariantViolation, not
// escape the harness.
func FuzzRun(f *testing.F) {
	seed := func(cands ...election.Candidate) {
		f.Add(fuzzcompile.Compile(election.Election{Candidates: cands}))
	}

	seed() // S6: empty election
	seed(
		election.Candidate{ID: election.Identity("A"), Anon: 2},
		election.Candidate{ID: election.Identity("B"), Anon: 3, VoteFor: election.Identity("A")},
		election.Candidate{ID: election.Identity("C"), Anon: 4, VoteFor: election.Identity("A")},
	)
	seed(
		election.Candidate{ID: election.Identity("A"), Anon: 10, VoteFor: election.Identity("B")},
		election.Candidate{ID: election.Identity("B"), Anon: 10, VoteFor: election.Identity("A")},
	)
	f.Add([]byte("not a compiled election at all"))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Run panicked on input it should have reported as a status instead: %v", r)
			}
		}()

		_, status := fuzzharness.Run(data)
		switch status {
		case fuzzharness.StatusOK, fuzzharness.StatusMalformed, fuzzharness.StatusInvariantViolation:
		default:
			t.Fatalf("Run returned an unrecognized status %d", status)
		}
	})
}
