package fuzzcompile

import "errors"

// ErrTruncated indicates the byte buffer ended before a complete
// record (or the trailing checksum) could be read.
var ErrTruncated = errors.New("fuzzcompile: truncated input")

// ErrBadMagic indicates the buffer does not start with the expected
// format magic bytes.
var ErrBadMagic = errors.New("fuzzcompile: bad magic")

// ErrChecksumMismatch indicates the trailing FNV-1a checksum does not
// match the buffer's contents — the corpus entry was corrupted or is
// not one Compile produced.
var ErrChecksumMismatch = errors.New("fuzzcompile: checksum mismatch")
