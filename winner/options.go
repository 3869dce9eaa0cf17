package winner

import (
	"golang.org/x/crypto/blake2b"

	"github.com/cjdelisle/electorium/election"
)

// hashFunc computes the §4.5a tie-break digest over a candidate's
// identity and its bucket's total_potential. The default, tieHash, is
// Blake2b-512; WithHashFunc lets a caller substitute a different
// function (e.g. a deterministic stub) without touching Resolve's
// signature, mirroring the reference graph library's GraphOption/
// DFSOptions functional-options idiom.
type hashFunc func(id election.Identity, potential uint64) [blake2b.Size]byte

// resolveConfig holds the few knobs Resolve itself exposes. Zero value
// is never used directly — defaultConfig seeds it before options run.
type resolveConfig struct {
	hash hashFunc
}

func defaultConfig() resolveConfig {
	return resolveConfig{hash: tieHash}
}

// resolveOption configures a resolveConfig before Resolve runs.
type resolveOption func(*resolveConfig)

// WithHashFunc overrides the §4.5a tie-break hash function, primarily
// so tests can supply a deterministic stand-in instead of Blake2b-512
// and assert an exact, hand-computed tie-break outcome.
func WithHashFunc(h func(id election.Identity, potential uint64) [blake2b.Size]byte) resolveOption {
	return func(c *resolveConfig) { c.hash = h }
}
