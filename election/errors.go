package election

import "errors"

// ErrDuplicateIdentity indicates that two or more Candidates in an
// Election share the same identity. Per §7 of the specification this
// is a MalformedInput condition: the caller provided an invalid
// Election and must be told, rather than the resolver silently
// picking one of the duplicates.
var ErrDuplicateIdentity = errors.New("election: duplicate candidate identity")
