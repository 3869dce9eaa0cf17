package fuzzcompile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/cjdelisle/electorium/election"
)

var magic = [4]byte{'E', 'L', 'C', '1'}

// Compile serializes e into the binary fuzz-input format: a flat,
// length-prefixed record per candidate followed by an FNV-1a
// checksum, so a corpus entry that a fuzzer mutates byte-for-byte can
// be validated before being handed to Decompile.
func Compile(e election.Election) []byte {
	var buf bytes.Buffer
	buf.Write(magic[:])

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(e.Candidates)))
	buf.Write(count[:])

	for _, c := range e.Candidates {
		writeField(&buf, c.ID)

		var anon [8]byte
		binary.LittleEndian.PutUint64(anon[:], c.Anon)
		buf.Write(anon[:])

		writeField(&buf, c.VoteFor)
	}

	sum := fnv.New32a()
	sum.Write(buf.Bytes())

	var checksum [4]byte
	binary.LittleEndian.PutUint32(checksum[:], sum.Sum32())
	buf.Write(checksum[:])

	return buf.Bytes()
}

func writeField(buf *bytes.Buffer, field []byte) {
	var length [2]byte
	binary.LittleEndian.PutUint16(length[:], uint16(len(field)))
	buf.Write(length[:])
	buf.Write(field)
}

// Decompile parses the binary fuzz-input format produced by Compile.
// It validates the magic bytes and trailing checksum before decoding
// any record, so a fuzzer-mutated buffer that merely flips a length
// field fails fast with ErrChecksumMismatch rather than panicking
// partway through decoding.
func Decompile(data []byte) (election.Election, error) {
	if len(data) < len(magic)+4 {
		return election.Election{}, ErrTruncated
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return election.Election{}, ErrBadMagic
	}

	body, checksumBytes := data[:len(data)-4], data[len(data)-4:]
	want := binary.LittleEndian.Uint32(checksumBytes)
	sum := fnv.New32a()
	sum.Write(body)
	if sum.Sum32() != want {
		return election.Election{}, ErrChecksumMismatch
	}

	r := body[len(magic):]
	if len(r) < 4 {
		return election.Election{}, ErrTruncated
	}
	count := binary.LittleEndian.Uint32(r[:4])
	r = r[4:]

	e := election.Election{Candidates: make([]election.Candidate, 0, count)}
	for i := uint32(0); i < count; i++ {
		var c election.Candidate

		id, rest, err := readField(r)
		if err != nil {
			return election.Election{}, fmt.Errorf("fuzzcompile: Decompile: candidate %d id: %w", i, err)
		}
		c.ID = election.Identity(id)
		r = rest

		if len(r) < 8 {
			return election.Election{}, fmt.Errorf("fuzzcompile: Decompile: candidate %d anon: %w", i, ErrTruncated)
		}
		c.Anon = binary.LittleEndian.Uint64(r[:8])
		r = r[8:]

		vote, rest, err := readField(r)
		if err != nil {
			return election.Election{}, fmt.Errorf("fuzzcompile: Decompile: candidate %d vote_for: %w", i, err)
		}
		if len(vote) > 0 {
			c.VoteFor = election.Identity(vote)
		}
		r = rest

		e.Candidates = append(e.Candidates, c)
	}

	return e, nil
}

func readField(r []byte) (field, rest []byte, err error) {
	if len(r) < 2 {
		return nil, nil, ErrTruncated
	}
	length := binary.LittleEndian.Uint16(r[:2])
	r = r[2:]
	if len(r) < int(length) {
		return nil, nil, ErrTruncated
	}

	return r[:length], r[length:], nil
}
