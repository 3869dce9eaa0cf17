package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cjdelisle/electorium/election"
)

// abstainMarker is the placeholder VOTE_FOR value used throughout the
// spec's worked examples (e.g. `A 0 _`) to spell "no vote cast"
// explicitly rather than leaving the field empty.
const abstainMarker = "_"

// Parse reads the text election format from r and returns an
// election.Election. Parse itself never deduplicates or resolves
// targets — that normalization is election.Build's job; Parse only
// turns text lines into Candidate records.
//
// Parse fails with ErrMalformedInput (wrapped with the offending line
// number) for a line it cannot parse, matching §7's "parser
// responsibility" carve-out for negative/unparseable vote counts, or
// with the wrapped error of the underlying scanner (a read error, or a
// line too long for bufio.Scanner). It never returns a core error or
// panics.
func Parse(r io.Reader) (election.Election, error) {
	var e election.Election

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseLine(line)
		if err != nil {
			return election.Election{}, fmt.Errorf("textfmt: Parse: line %d: %w", lineNo, err)
		}
		e.Candidates = append(e.Candidates, c)
	}
	if err := scanner.Err(); err != nil {
		return election.Election{}, fmt.Errorf("textfmt: Parse: %w", err)
	}

	return e, nil
}

// parseLine parses one non-blank, non-comment line into a Candidate.
func parseLine(line string) (election.Candidate, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return election.Candidate{}, fmt.Errorf("%w: expected \"VOTER VOTES VOTE_FOR\", got %d fields", ErrMalformedInput, len(fields))
	}

	votes, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return election.Candidate{}, fmt.Errorf("%w: VOTES field %q: %v", ErrMalformedInput, fields[1], err)
	}

	c := election.Candidate{
		ID:   election.Identity(fields[0]),
		Anon: votes,
	}
	if len(fields) == 3 && fields[2] != abstainMarker && fields[2] != "" {
		c.VoteFor = election.Identity(fields[2])
	}

	return c, nil
}
