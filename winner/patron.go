package winner

import (
	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/potential"
)

// tentativeWinner runs the solo half of S4: among a group's members,
// the one with strictly greatest Solo is the tentative winner. If two
// or more members tie for the maximum, the within-ring tie-break
// (§4.5a) applies and patron recursion is skipped entirely — the
// caller is told via tied=true.
func tentativeWinner(res *potential.Result, grp group) (w int, tied bool, tiedMembers []int) {
	var maxSolo uint64
	for _, m := range grp.members {
		if res.Solo[m] > maxSolo {
			maxSolo = res.Solo[m]
		}
	}

	for _, m := range grp.members {
		if res.Solo[m] == maxSolo {
			tiedMembers = append(tiedMembers, m)
		}
	}

	if len(tiedMembers) == 1 {
		return tiedMembers[0], false, nil
	}

	return 0, true, tiedMembers
}

// findPatron looks for x's patron (§4.4, Design Notes): the unique
// direct non-ring reverse-neighbor of x whose own total_potential —
// which, being non-ring, is exactly "votes flowing in via that
// candidate" (see package potential's doc comment) — exceeds half of
// originalSolo, the *original* tentative winner's solo votes. The
// spec guarantees at most one direct child can clear that bar, since
// a fixed threshold can only be exceeded by one part of a partition;
// finding more than one is an internal invariant violation.
func findPatron(res *potential.Result, x int, originalSolo uint64) (patron int, found bool) {
	for _, c := range res.Children[x] {
		if res.RingID[c] != potential.NoRing {
			continue // rule 1: a patron is never a member of any ring
		}
		// strict majority: 2*contribution > originalSolo
		if 2*res.TotalPotential[c] > originalSolo {
			if found {
				election.Violate("winner.findPatron", "more than one candidate (%d and %d) independently clear the majority threshold against the same reference", patron, c)
			}
			patron, found = c, true
		}
	}

	return patron, found
}

// promoteByPatronChain runs the patron-recursion half of S4. Starting
// at the unique tentative winner w, it repeatedly looks for a patron
// of the current candidate, replacing it only when the patron's own
// total_potential strictly exceeds r2; it stops the instant a found
// patron fails that check (the *current* candidate stands — recursion
// does not continue searching past a rejected patron), and otherwise
// continues until no qualifying patron remains.
//
// The 50%-majority threshold is fixed at w's own solo votes for the
// entire recursion, per §4.4's explicit "original tentative winner"
// rule — never recomputed against the current candidate's votes.
func promoteByPatronChain(g *election.Graph, res *potential.Result, w int, r2 uint64) int {
	originalSolo := res.Solo[w]
	current := w

	for {
		patron, found := findPatron(res, current, originalSolo)
		if !found {
			return current
		}
		if res.TotalPotential[patron] <= r2 {
			return current
		}
		if !chainReaches(g, patron, w) {
			election.Violate("winner.promoteByPatronChain", "patron %d does not reach tentative winner %d", patron, w)
		}
		current = patron
	}
}

// chainReaches is a defensive structural check: walking forward from
// from via Target must arrive at to within at most n hops. A patron
// found by findPatron is, by the functional-graph structure, always
// upstream of the candidate it was found from (and thus of w) — this
// only ever trips if some other invariant has already broken.
func chainReaches(g *election.Graph, from, to int) bool {
	n := g.Len()
	cur := from
	for steps := 0; steps <= n; steps++ {
		if cur == to {
			return true
		}
		if cur == election.NoTarget {
			return false
		}
		cur = g.Target[cur]
	}

	return false
}
