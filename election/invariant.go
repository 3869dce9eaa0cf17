package election

import "fmt"

// InvariantViolation marks a fatal break of one of the resolver's own
// contracts (§7) — e.g. T1 (ring members sharing total_potential), T2
// (total_potential ≥ anon), or a patron whose chain does not actually
// reach the tentative winner it was promoted over. These are bugs in
// the implementation, not malformed caller input, so the resolver
// never converts them into a returned error: it panics, giving a
// crash-equivalent outcome rather than risk returning a wrong winner.
type InvariantViolation struct {
	Stage   string // which stage detected the break, e.g. "potential.Compute"
	Message string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("electorium: invariant violation in %s: %s", e.Stage, e.Message)
}

// Violate panics with an *InvariantViolation built from stage and a
// formatted message. Call sites use this rather than returning an
// error; see InvariantViolation's doc comment for why.
func Violate(stage, format string, args ...interface{}) {
	panic(&InvariantViolation{Stage: stage, Message: fmt.Sprintf(format, args...)})
}
