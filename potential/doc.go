// Package potential implements S2 of the Electorium resolver:
// potential-vote computation and ring (cycle) identification over the
// dense delegation graph produced by package election.
//
// What:
//
//   - Ring detection: each node has out-degree ≤ 1, so the graph is a
//     "functional graph" — every weakly-connected component has at
//     most one simple cycle. Rings are found with the classic
//     three-colour (white/gray/black) visit used for cycle detection,
//     specialised for the single-successor case: no recursion is
//     needed, since following target[] is already an iterative walk.
//   - Potential computation: total_potential[i] is the sum of anon
//     over every candidate whose delegation chain passes through i.
//     Computed by building the reverse adjacency (children[t] = {s :
//     target[s] = t}) once, then propagating anon sums bottom-up
//     through the non-ring part of that reverse graph with a
//     Kahn-style topological drain — never recursing into a ring
//     member's own forward edge, since ring members don't "forward"
//     contributions past themselves (their shared total comes from
//     summing every member's own drained subtree instead).
//
// Why this shape: the naive per-candidate "walk the whole chain and
// add anon to everything visited" described in §4.2 is O(N²) on a
// long chain. Memoizing each node's drained subtree sum and reusing
// it for every node above it in the chain makes the whole stage
// linear, exactly as §4.2's design contract requires.
//
// Key identity used throughout package winner: for a non-ring
// candidate i, total_potential[i] equals its own drained subtree sum
// (anon[i] plus every contribution that reaches i without passing
// another ring member) — which is *also* exactly "solo votes" (§4.4)
// when i sits on a ring, and exactly "votes flowing in via a patron"
// (§4.4 patron rule, Design Notes) when i is a candidate non-ring
// patron. Result.Solo exposes that one array; callers never need a
// second, differently-shaped computation for either purpose.
package potential
