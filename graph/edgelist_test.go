package graph

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdgeList(t *testing.T) {
	input := "# comment\n% also a comment\n0 1\n\n1 3 7\n2 0\n"
	edges, numNodes, weighted, err := ParseEdgeList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, numNodes)
	assert.True(t, weighted)
	assert.Equal(t, []RawEdge{{0, 1, 1}, {1, 3, 7}, {2, 0, 1}}, edges)

	_, _, weighted, err = ParseEdgeList(strings.NewReader("0 1\n1 0"))
	require.NoError(t, err)
	assert.False(t, weighted)
}

func TestParseEdgeListErrors(t *testing.T) {
	for _, input := range []string{"0\n", "0 x\n", "1 2 -3\n", "4294967295 0\n"} {
		_, _, _, err := ParseEdgeList(strings.NewReader(input))
		assert.True(t, errors.Is(err, ErrFormat), "%q: %v", input, err)
	}
}

func TestUndirected(t *testing.T) {
	edges := Undirected([]RawEdge{{0, 1, 5}})
	assert.Equal(t, []RawEdge{{0, 1, 5}, {1, 0, 5}}, edges)
}

func TestGenerateGnm(t *testing.T) {
	g, err := GenerateGnm(100, 400, 10, 42)
	require.NoError(t, err)
	assert.Equal(t, 100, g.NumNodes())
	assert.Equal(t, 400, g.NumEdges())
	assert.True(t, g.Weighted)
	for v := uint32(0); v < 100; v++ {
		seen := map[uint32]bool{}
		for _, e := range g.OutEdges(v) {
			assert.NotEqual(t, v, e.Target)
			assert.False(t, seen[e.Target])
			seen[e.Target] = true
			assert.True(t, e.Weight >= 1 && e.Weight <= 10)
		}
	}

	again, err := GenerateGnm(100, 400, 10, 42)
	require.NoError(t, err)
	assert.Equal(t, g.Edges, again.Edges)

	_, err = GenerateGnm(3, 100, 0, 1)
	assert.Error(t, err)
}

func TestGeneratedRoundTrip(t *testing.T) {
	g, err := GenerateGnm(50, 120, 0, 7)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteAdjacencyGraph(&buf, g))
	g2, err := ParseAdjacencyGraph(&buf)
	require.NoError(t, err)
	assert.False(t, g2.Weighted)
	assert.Equal(t, g.Edges, g2.Edges)
}
