package election_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjdelisle/electorium/election"
)

func cand(id string, anon uint64, voteFor string) election.Candidate {
	var vf election.Identity
	if voteFor != "" {
		vf = election.Identity(voteFor)
	}

	return election.Candidate{
		ID:      election.Identity(id),
		Anon:    anon,
		VoteFor: vf,
	}
}

func TestBuild_EmptyElection(t *testing.T) {
	g, err := election.Build(election.Election{})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestBuild_AssignsDenseIDsInOrder(t *testing.T) {
	e := election.Election{Candidates: []election.Candidate{
		cand("A", 1, ""),
		cand("B", 2, "A"),
		cand("C", 3, "A"),
	}}
	g, err := election.Build(e)
	require.NoError(t, err)

	idA, ok := g.IDOf(election.Identity("A"))
	require.True(t, ok)
	idB, ok := g.IDOf(election.Identity("B"))
	require.True(t, ok)
	idC, ok := g.IDOf(election.Identity("C"))
	require.True(t, ok)

	assert.Equal(t, 0, idA)
	assert.Equal(t, 1, idB)
	assert.Equal(t, 2, idC)

	assert.Equal(t, election.NoTarget, g.Target[idA])
	assert.Equal(t, idA, g.Target[idB])
	assert.Equal(t, idA, g.Target[idC])
}

func TestBuild_DuplicateIdentity(t *testing.T) {
	e := election.Election{Candidates: []election.Candidate{
		cand("A", 1, ""),
		cand("A", 2, ""),
	}}
	_, err := election.Build(e)
	require.Error(t, err)
	assert.ErrorIs(t, err, election.ErrDuplicateIdentity)
}

func TestBuild_SelfVoteIsAbstain(t *testing.T) {
	e := election.Election{Candidates: []election.Candidate{
		cand("A", 1, "A"),
	}}
	g, err := election.Build(e)
	require.NoError(t, err)
	assert.Equal(t, election.NoTarget, g.Target[0])
}

func TestBuild_DanglingTargetIsAbstain(t *testing.T) {
	e := election.Election{Candidates: []election.Candidate{
		cand("A", 1, "ghost"),
	}}
	g, err := election.Build(e)
	require.NoError(t, err)
	assert.Equal(t, election.NoTarget, g.Target[0])
}

func TestBuild_EmptyVoteForIsAbstain(t *testing.T) {
	e := election.Election{Candidates: []election.Candidate{
		cand("A", 1, ""),
	}}
	g, err := election.Build(e)
	require.NoError(t, err)
	assert.Equal(t, election.NoTarget, g.Target[0])
}
