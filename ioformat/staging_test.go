package ioformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/ioformat"
)

func TestStage_RejectsDuplicateNode(t *testing.T) {
	s := ioformat.NewStage()
	require.NoError(t, s.AddNode("a"))
	err := s.AddNode("a")
	assert.ErrorIs(t, err, ioformat.ErrStructuralViolation)
}

func TestStage_RejectsEdgeToUnknownNode(t *testing.T) {
	s := ioformat.NewStage()
	require.NoError(t, s.AddNode("a"))
	err := s.AddEdge("a", "b")
	assert.ErrorIs(t, err, ioformat.ErrStructuralViolation)
}

func TestStage_RejectsSelfLoop(t *testing.T) {
	s := ioformat.NewStage()
	require.NoError(t, s.AddNode("a"))
	err := s.AddEdge("a", "a")
	assert.ErrorIs(t, err, ioformat.ErrStructuralViolation)
}

func TestStage_RejectsDuplicateEdge(t *testing.T) {
	s := ioformat.NewStage()
	require.NoError(t, s.AddNode("a"))
	require.NoError(t, s.AddNode("b"))
	require.NoError(t, s.AddEdge("a", "b"))
	err := s.AddEdge("a", "b")
	assert.ErrorIs(t, err, ioformat.ErrStructuralViolation)
}
