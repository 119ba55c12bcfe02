package graph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomGraph draws numEdges edges uniformly, self loops and parallel edges included.
func randomGraph(numNodes int, numEdges int, weighted bool, maxWeight uint32) *Graph {
	edges := make([]RawEdge, numEdges)
	for i := range edges {
		edges[i] = RawEdge{
			Src:    uint32(rand.Intn(numNodes)),
			Dst:    uint32(rand.Intn(numNodes)),
			Weight: uint32(rand.Intn(int(maxWeight) + 1)),
		}
	}
	return FromEdges(numNodes, edges, weighted)
}

func TestFromEdges(t *testing.T) {
	g := FromEdges(4, []RawEdge{{2, 3, 9}, {0, 1, 4}, {2, 0, 1}, {0, 2, 2}}, true)
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, []uint64{0, 2, 2, 4, 4}, g.Nodes)
	assert.Equal(t, []Edge{{1, 4}, {2, 2}}, g.OutEdges(0))
	assert.Empty(t, g.OutEdges(1))
	assert.Equal(t, []Edge{{3, 9}, {0, 1}}, g.OutEdges(2))
	assert.Equal(t, 0, g.OutDegree(3))
}

func TestFromEdgesUnweighted(t *testing.T) {
	g := FromEdges(2, []RawEdge{{0, 1, 9}, {1, 0, 0}}, false)
	assert.False(t, g.Weighted)
	for _, e := range g.Edges {
		assert.Equal(t, uint32(1), e.Weight)
	}
}

func TestFromEdgesRandom(t *testing.T) {
	g := randomGraph(500, 5000, true, 100)
	sum := 0
	for v := uint32(0); v < uint32(g.NumNodes()); v++ {
		sum += g.OutDegree(v)
		assert.LessOrEqual(t, g.Nodes[v], g.Nodes[v+1])
	}
	assert.Equal(t, 5000, sum)
	g.ComputeGraphStats()
}

func TestFromEdgesRejects(t *testing.T) {
	assert.Panics(t, func() { FromEdges(2, []RawEdge{{0, 2, 1}}, false) })
}

func TestEmptyGraph(t *testing.T) {
	g := &Graph{}
	assert.Equal(t, 0, g.NumNodes())
	g.ComputeGraphStats()

	g = FromEdges(0, nil, false)
	assert.Equal(t, 0, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
}
