package winner

import (
	"sort"

	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/potential"
)

// eligible reports whether candidate i can itself stand in the race
// (§4.3's "bucket"): it must be a terminal (abstains outright) or sit
// on a ring. A candidate who delegates to someone else necessarily
// has total_potential[i] computed as if it were a contender too (T2
// requires total_potential[i] ≥ anon[i], and i's chain trivially
// "passes through" i before continuing on), but i has, by definition,
// handed its vote to its target — whatever total_potential i
// accumulates is identically also counted at i's target (and every
// node further along i's chain). Letting such a candidate stand as a
// bucket member would make it permanently, structurally tied with
// (never ahead of) its own target, turning every single-chain
// delegation into an unresolvable coin-flip the moment it reached the
// top bucket, and would make R2 unusable as the patron gate (a
// patron's own total_potential would then always equal the next-best
// entry, since the patron is typically that very entry). Excluding
// delegators from the race — while still fully computing their
// total_potential/solo for patron-recursion bookkeeping — is what
// lets §4.4's patron mechanism do its job instead of being preempted
// by an accidental tie.
func eligible(g *election.Graph, res *potential.Result, i int) bool {
	return g.Target[i] == election.NoTarget || res.RingID[i] != potential.NoRing
}

// bestBuckets runs S3: it finds the eligible candidates with the
// maximum total_potential, partitions them into groups (§4.3 — a
// single shared non-empty ring_id is one group, multiple non-empty
// ring_ids straddle several groups, and a ring_id-less candidate
// stands in as its own one-member group), and computes R2: the
// highest total_potential among eligible candidates strictly below
// the maximum (0 if none).
//
// Symmetry note (§9 Open Questions): R2 is compared against a
// *candidate's* total_potential during patron promotion, and a ring's
// shared total_potential is exactly that value for each of its
// members (T1), so isolated candidates and ring members are already
// treated symmetrically without special-casing.
func bestBuckets(g *election.Graph, res *potential.Result) (best []group, r2 uint64) {
	n := len(res.TotalPotential)
	if n == 0 {
		return nil, 0
	}

	var maxPotential uint64
	for i, p := range res.TotalPotential {
		if eligible(g, res, i) && p > maxPotential {
			maxPotential = p
		}
	}

	byKey := map[int][]int{}
	var keys []int
	for i, p := range res.TotalPotential {
		if !eligible(g, res, i) {
			continue
		}
		if p != maxPotential {
			if p > r2 {
				r2 = p
			}
			continue
		}
		key := res.RingID[i]
		if key == potential.NoRing {
			key = -1 - i // a unique negative key per isolated candidate
		}
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], i)
	}
	sort.Ints(keys)

	for _, key := range keys {
		members := append([]int(nil), byKey[key]...)
		sort.Ints(members)
		ringID := potential.NoRing
		if key >= 0 {
			ringID = key
		}
		best = append(best, group{members: members, ringID: ringID, potential: maxPotential})
	}
	if len(best) == 0 {
		election.Violate("winner.bestBuckets", "no eligible candidate found despite %d candidates; every component of a functional graph must reach a terminal or a ring", n)
	}

	return best, r2
}
