package winner

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/cjdelisle/electorium/election"
)

// tieHash computes h(c) = Blake2b-512(identity_bytes(c) ||
// u64_le(potential)), per §4.5a. Endianness and field order are fixed
// exactly as specified: no internal index or order-dependent field
// ever enters the hash, only the candidate's externally visible
// identity and potential.
func tieHash(id election.Identity, potential uint64) [blake2b.Size]byte {
	var buf bytes.Buffer
	buf.Write(id)

	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], potential)
	buf.Write(le[:])

	return blake2b.Sum512(buf.Bytes())
}

// breakTie resolves §4.5a: the winner is the candidate whose digest
// (by default Blake2b-512, or whatever hash WithHashFunc supplied),
// over (identity || u64_le(maxPotential)), is lexicographically
// smallest. Ties in the digest itself (astronomically unlikely, but
// required by §8 invariant 6 to be handled rather than left to
// map/slice iteration order) fall back to the identity's own
// byte-lexicographic order as a secondary key.
func breakTie(g *election.Graph, candidates []int, maxPotential uint64, hash hashFunc) int {
	best := candidates[0]
	bestHash := hash(g.Candidates[best].ID, maxPotential)

	for _, c := range candidates[1:] {
		h := hash(g.Candidates[c].ID, maxPotential)
		switch bytes.Compare(h[:], bestHash[:]) {
		case -1:
			best, bestHash = c, h
		case 0:
			if g.Candidates[c].ID.Compare(g.Candidates[best].ID) < 0 {
				best, bestHash = c, h
			}
		}
	}

	return best
}
