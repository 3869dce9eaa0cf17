// Package textfmt parses the plain-text election format described in
// spec §6: one candidate per line, three whitespace-separated fields
// `VOTER VOTES VOTE_FOR`, `#`-prefixed comment lines and blank lines
// ignored, `VOTE_FOR` of `_` or an absent third field meaning abstain.
//
// This package is a thin external collaborator, not part of the core
// (election/potential/winner): it never touches a delegation graph
// directly, only builds an election.Election for the core to consume.
package textfmt
