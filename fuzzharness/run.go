package fuzzharness

import (
	"errors"

	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/fuzzcompile"
	"github.com/cjdelisle/electorium/winner"
)

// Status distinguishes the three outcomes spec §6's external callable
// surface (and, by extension, this fuzz wrapper) must report.
type Status int

const (
	// StatusOK means Run produced a winner (or NoCandidates) cleanly.
	StatusOK Status = iota
	// StatusMalformed means data failed to decompile into a valid
	// election (bad magic, truncated buffer, checksum mismatch), or the
	// decoded election was rejected by winner.Resolve (duplicate
	// identity).
	StatusMalformed
	// StatusInvariantViolation means the decompiled election resolved,
	// but the resolver's own internal contract broke — a crash-
	// equivalent result recovered here instead of propagating.
	StatusInvariantViolation
)

// Run decompiles data and resolves it, recovering an
// *election.InvariantViolation into StatusInvariantViolation instead
// of letting it crash the fuzz worker. The pure core never recovers
// that panic itself; besides this wrapper (which capi uses), only the
// CLI in cmd/electorium recovers it, to map it to an exit code.
func Run(data []byte) (winnerID election.Identity, status Status) {
	e, err := fuzzcompile.Decompile(data)
	if err != nil {
		return nil, StatusMalformed
	}

	return resolveRecovering(e)
}

func resolveRecovering(e election.Election) (winnerID election.Identity, status Status) {
	defer func() {
		if r := recover(); r != nil {
			var iv *election.InvariantViolation
			if errors.As(asError(r), &iv) {
				winnerID, status = nil, StatusInvariantViolation

				return
			}
			panic(r) // not ours to recover
		}
	}()

	out, err := winner.Resolve(e)
	if err != nil {
		return nil, StatusMalformed
	}
	if !out.HasWinner {
		return nil, StatusOK
	}

	return out.Winner, StatusOK
}

// asError adapts a recover() value (any) to an error for errors.As,
// since *election.InvariantViolation already implements error.
func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return nil
}
