// Package fuzzcompile implements the binary fuzz-input format
// referenced by spec §6: a format "deterministically derivable from
// the text format," consumed by fuzzharness and never by the core
// directly.
//
// The core (election/potential/winner) only ever sees
// election.Election values; Compile/Decompile exist purely so a fuzz
// corpus can store and replay election cases as flat byte buffers.
//
// Wire format (little-endian throughout):
//
//	magic      [4]byte  "ELC1"
//	count      uint32   number of candidates
//	per candidate:
//	  idLen    uint16
//	  id       [idLen]byte
//	  anon     uint64
//	  voteLen  uint16   0 means abstain
//	  vote     [voteLen]byte
//	checksum   uint32   FNV-1a over every byte preceding it
package fuzzcompile
