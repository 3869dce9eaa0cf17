package winner

import (
	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/potential"
)

// Resolve runs the full election: S1 (election.Build), S2
// (potential.Compute), and S3 through S5 (this package), returning the
// single winning identity. opts configures the few knobs Resolve
// itself exposes — see resolveOption and WithHashFunc.
//
// Resolve returns an error only for ErrDuplicateIdentity (a malformed
// Election, §7); every other irregularity in the input is normalized
// away during Build. A sound Election that nonetheless breaks one of
// the resolver's own invariants (§7, §8) is not recoverable — Resolve
// panics with an *election.InvariantViolation in that case instead of
// returning an error, since continuing would silently produce a wrong
// winner.
func Resolve(e election.Election, opts ...resolveOption) (Outcome, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := election.Build(e)
	if err != nil {
		return Outcome{}, err
	}
	if g.Len() == 0 {
		return NoCandidates, nil
	}

	res := potential.Compute(g)
	groups, r2 := bestBuckets(g, res)
	w := selectWinner(g, res, groups, r2, cfg.hash)

	return Outcome{HasWinner: true, Winner: g.Candidates[w].ID}, nil
}

// selectWinner runs S4/S5 over the groups S3 found at the maximum
// total_potential.
func selectWinner(g *election.Graph, res *potential.Result, groups []group, r2 uint64, hash hashFunc) int {
	if len(groups) == 1 {
		return resolveSingleGroup(g, res, groups[0], r2, hash)
	}

	return resolveTiedGroups(g, res, groups, hash)
}

// resolveSingleGroup runs the normal S4 flow for the one bucket
// holding the maximum total_potential: pick the tentative winner by
// solo votes (falling back to the within-ring hash tie-break, §4.5a,
// on a solo tie — patron recursion never applies to that path), then
// run patron recursion (§4.4) to promote it if a qualifying patron
// exists.
func resolveSingleGroup(g *election.Graph, res *potential.Result, grp group, r2 uint64, hash hashFunc) int {
	w, tied, tiedMembers := tentativeWinner(res, grp)
	if tied {
		return breakTie(g, tiedMembers, grp.potential, hash)
	}

	return promoteByPatronChain(g, res, w, r2)
}

// resolveTiedGroups runs S5 when S3 found more than one group sharing
// the maximum total_potential. Patron recursion never applies once
// there is more than one group — §4.4 only promotes within a single
// standing tentative winner, and a multi-group tie means S3 could not
// settle on one.
//
// Per §4.3/§4.5, two shapes are possible:
//
//   - every tied group is a synthetic singleton (no genuine ring
//     reached the maximum): §4.5a applies directly over the union of
//     candidates, by potential (all equal, so this is really just the
//     hash tie-break).
//   - at least one tied group is a genuine ring: §4.5b applies first,
//     comparing out-of-ring votes — which, for every candidate able to
//     appear in a tied top bucket, is exactly the Solo value S2 already
//     computed (see package potential's doc comment) — before falling
//     back to §4.5a on a further tie.
func resolveTiedGroups(g *election.Graph, res *potential.Result, groups []group, hash hashFunc) int {
	allSingleton := true
	var union []int
	for _, grp := range groups {
		if grp.ringID != potential.NoRing {
			allSingleton = false
		}
		union = append(union, grp.members...)
	}

	if allSingleton {
		return breakTie(g, union, groups[0].potential, hash)
	}

	var maxOutOfRing uint64
	for _, m := range union {
		if res.Solo[m] > maxOutOfRing {
			maxOutOfRing = res.Solo[m]
		}
	}

	var tiedOut []int
	for _, m := range union {
		if res.Solo[m] == maxOutOfRing {
			tiedOut = append(tiedOut, m)
		}
	}
	if len(tiedOut) == 1 {
		return tiedOut[0]
	}

	return breakTie(g, tiedOut, groups[0].potential, hash)
}
