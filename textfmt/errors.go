package textfmt

import "errors"

// ErrMalformedInput indicates a line could not be parsed as a
// candidate record: wrong field count, or a VOTES field that is not a
// non-negative decimal integer. Per spec §7, this is always a parser
// error, never a core invariant violation.
var ErrMalformedInput = errors.New("textfmt: malformed input")
