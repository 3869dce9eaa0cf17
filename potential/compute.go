package potential

import (
	"sort"

	"github.com/cjdelisle/electorium/election"
)

// visit state for the cycle-finding walk, mirroring the reference
// graph library's white/gray/black DFS marking (see package dfs),
// specialised for a single-successor ("functional") graph: following
// Target is already an iterative walk, so no recursion stack is
// needed to find the ring on a component.
const (
	white = 0
	gray  = 1
	black = 2
)

// Compute runs S2 over g: it finds every ring and computes
// total_potential/solo for every candidate.
//
// Complexity: O(N) — each candidate is pushed onto the walk path at
// most once (cycle phase), and each candidate is enqueued/dequeued at
// most once in the topological drain (potential phase).
func Compute(g *election.Graph) *Result {
	n := g.Len()
	res := &Result{
		TotalPotential: make([]uint64, n),
		Solo:           make([]uint64, n),
		RingID:         make([]int, n),
		Children:       make([][]int, n),
	}
	for i := range res.RingID {
		res.RingID[i] = NoRing
	}
	if n == 0 {
		return res
	}

	findRings(g, res)
	buildChildren(g, res)
	drainPotential(g, res)
	finalizeRingTotals(g, res)

	return res
}

// findRings walks every component's delegation chain once, marking
// white/gray/black, and records the ring (if any) found on each
// component. Vertices are pushed onto path while gray and popped
// (conceptually — the array is just left in place and reused as a
// scratch buffer per component) once the whole component is black.
func findRings(g *election.Graph, res *Result) {
	n := g.Len()
	state := make([]uint8, n)
	posInPath := make([]int, n)
	path := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if state[start] != white {
			continue
		}

		path = path[:0]
		cur := start
		for cur != election.NoTarget && state[cur] == white {
			state[cur] = gray
			posInPath[cur] = len(path)
			path = append(path, cur)
			cur = g.Target[cur]
		}

		if cur != election.NoTarget && state[cur] == gray {
			recordRing(res, path[posInPath[cur]:])
		}

		for _, v := range path {
			state[v] = black
		}
	}
}

// recordRing assigns a fresh ring id to members (given in discovery
// order around the cycle) and stores them canonically sorted.
func recordRing(res *Result, members []int) {
	canon := append([]int(nil), members...)
	sort.Ints(canon)

	ringID := len(res.Rings)
	res.Rings = append(res.Rings, Ring{Members: canon})
	for _, m := range canon {
		res.RingID[m] = ringID
	}
}

// buildChildren populates the reverse adjacency: Children[t] is every
// s with Target[s] == t, ascending by s.
func buildChildren(g *election.Graph, res *Result) {
	for s, t := range g.Target {
		if t != election.NoTarget {
			res.Children[t] = append(res.Children[t], s)
		}
	}
}

// drainPotential computes Solo[i] = anon[i] plus the drained sum of
// every non-ring child's own Solo, via a Kahn-style topological drain
// over the non-ring part of the reverse graph. Ring members never
// forward their own drained sum past themselves (that's precisely
// what keeps a ring's internal rotation from being double-counted);
// their shared ring total is finished separately afterward.
func drainPotential(g *election.Graph, res *Result) {
	n := g.Len()
	pending := make([]int, n) // count of not-yet-drained non-ring children

	for i := 0; i < n; i++ {
		res.Solo[i] = g.Candidates[i].Anon
	}
	for t := 0; t < n; t++ {
		for _, c := range res.Children[t] {
			if res.RingID[c] == NoRing {
				pending[t]++
			}
		}
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if res.RingID[i] == NoRing && pending[i] == 0 {
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		i := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		t := g.Target[i]
		if t == election.NoTarget {
			continue
		}
		res.Solo[t] += res.Solo[i]
		pending[t]--
		if pending[t] == 0 && res.RingID[t] == NoRing {
			queue = append(queue, t)
		}
	}

	for i := 0; i < n; i++ {
		if pending[i] != 0 && res.RingID[i] == NoRing {
			election.Violate("potential.Compute", "non-ring candidate %d never fully drained (pending=%d); the delegation graph is not a valid functional graph", i, pending[i])
		}
	}
}

// finalizeRingTotals sums each ring's members' drained Solo values
// into the ring's shared TotalPotential, then sets TotalPotential to
// that ring total for every member, and to the candidate's own Solo
// for every non-ring candidate. It
// also checks T1 (ring members share one total) and T2
// (total_potential ≥ anon), panicking via election.Violate if either
// is broken — these would otherwise silently produce a wrong winner
// downstream.
func finalizeRingTotals(g *election.Graph, res *Result) {
	for ri := range res.Rings {
		var total uint64
		for _, m := range res.Rings[ri].Members {
			total += res.Solo[m]
		}
		res.Rings[ri].TotalPotential = total
	}

	for i := range res.TotalPotential {
		if rid := res.RingID[i]; rid != NoRing {
			res.TotalPotential[i] = res.Rings[rid].TotalPotential
		} else {
			res.TotalPotential[i] = res.Solo[i]
		}
		if anon := g.Candidates[i].Anon; res.TotalPotential[i] < anon {
			election.Violate("potential.Compute", "T2 violated: total_potential[%d]=%d < anon[%d]=%d", i, res.TotalPotential[i], i, anon)
		}
	}

	for _, r := range res.Rings {
		for _, m := range r.Members {
			if res.TotalPotential[m] != r.TotalPotential {
				election.Violate("potential.Compute", "T1 violated: ring member %d potential %d != ring total %d", m, res.TotalPotential[m], r.TotalPotential)
			}
		}
	}
}
