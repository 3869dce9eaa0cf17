package capi

import (
	"go.uber.org/zap"

	"github.com/cjdelisle/electorium/election"
	"github.com/cjdelisle/electorium/fuzzharness"
)

// Context is a resolver context: the pure-Go state behind the
// construct/destroy/run triple the cgo shim (cgo.go) exports. It
// holds nothing but an optional logger — the core itself is stateless
// per call, so a Context is reusable across any number of Run calls.
type Context struct {
	log *zap.Logger
}

// NewContext constructs a Context. When verbose is true, each Run's
// outcome is logged via zap's development logger (success and malformed
// input at debug level, an invariant violation at error level); when false, log is a no-op logger so Run pays
// nothing for logging calls.
func NewContext(verbose bool) *Context {
	log := zap.NewNop()
	if verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}

	return &Context{log: log}
}

// Close releases the Context's logger.
func (c *Context) Close() error {
	return c.log.Sync()
}

// Run decompiles data and resolves it, returning the winning
// identity's raw bytes (nil unless status is StatusOK and a winner
// was found) and a status code from Status.
func (c *Context) Run(data []byte) (winner []byte, status int32) {
	id, fhStatus := fuzzharness.Run(data)
	switch fhStatus {
	case fuzzharness.StatusMalformed:
		c.log.Debug("electorium: malformed input", zap.Int("bytes", len(data)))

		return nil, StatusMalformedInput
	case fuzzharness.StatusInvariantViolation:
		c.log.Error("electorium: internal invariant violated", zap.Int("bytes", len(data)))

		return nil, StatusInvariantViolated
	default:
		c.log.Debug("electorium: resolved", zap.Stringer("winner", election.Identity(id)))

		return []byte(id), StatusOK
	}
}
