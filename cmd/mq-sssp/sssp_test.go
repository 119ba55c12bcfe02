package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottSallinen/mqbench/graph"
)

func randomGraph(numNodes int, numEdges int, maxWeight int) *graph.Graph {
	edges := make([]graph.RawEdge, numEdges)
	for i := range edges {
		edges[i] = graph.RawEdge{
			Src:    uint32(rand.Intn(numNodes)),
			Dst:    uint32(rand.Intn(numNodes)),
			Weight: uint32(rand.Intn(maxWeight + 1)),
		}
	}
	return graph.FromEdges(numNodes, edges, true)
}

func TestCycle(t *testing.T) {
	g := graph.FromEdges(4, []graph.RawEdge{{Src: 0, Dst: 1, Weight: 1}, {Src: 1, Dst: 2, Weight: 1}, {Src: 2, Dst: 3, Weight: 1}, {Src: 3, Dst: 0, Weight: 1}}, false)
	for count := 0; count < 20; count++ {
		dist, _ := ShortestPaths(g, 0, rand.Intn(8-1)+1)
		require.Equal(t, []uint32{0, 1, 2, 3}, dist)
	}
}

func TestExpectations(t *testing.T) {
	//   0 -4-> 1 -1-> 3
	//   0 -1-> 2 -2-> 1, 2 -7-> 3, 4 isolated, 5 -> 0 only.
	g := graph.FromEdges(6, []graph.RawEdge{{Src: 0, Dst: 1, Weight: 4}, {Src: 1, Dst: 3, Weight: 1}, {Src: 0, Dst: 2, Weight: 1}, {Src: 2, Dst: 1, Weight: 2}, {Src: 2, Dst: 3, Weight: 7}, {Src: 5, Dst: 0, Weight: 1}}, true)
	expect := []uint32{0, 3, 1, 4, graph.EMPTY_VAL, graph.EMPTY_VAL}
	for count := 0; count < 10; count++ {
		dist, ps := ShortestPaths(g, 0, rand.Intn(8-1)+1)
		require.Equal(t, expect, dist)
		assert.GreaterOrEqual(t, ps.TotalProcessed(), uint64(4))
	}
	dist := make([]uint32, g.NumNodes())
	Dijkstra(g, 0, dist)
	assert.Equal(t, expect, dist)
}

func TestRandomGraphs(t *testing.T) {
	for count := 0; count < 10; count++ {
		threads := rand.Intn(8-1) + 1
		g := randomGraph(2000, 10000, 100)
		src := uint32(rand.Intn(g.NumNodes()))

		dist, _ := ShortestPaths(g, src, threads)

		expected := make([]uint32, g.NumNodes())
		Dijkstra(g, src, expected)
		require.NoError(t, graph.CompareValues(dist, expected), "threads %v", threads)
		require.NoError(t, graph.CompareValues(dist, graph.OracleDistances(g, src)))
		_, err := graph.CheckRelaxed(g, src, dist)
		require.NoError(t, err)
	}
}

// Zero weights make many equal priorities; the result must still be exact.
func TestZeroWeights(t *testing.T) {
	g := randomGraph(500, 3000, 1)
	dist, _ := ShortestPaths(g, 0, 4)
	require.NoError(t, graph.CompareValues(dist, graph.OracleDistances(g, 0)))
}

func TestRepeatedRounds(t *testing.T) {
	g := randomGraph(300, 1500, 10)
	s := NewSSSP(g.NumNodes())
	phase := graph.Phase[Dist, *SSSP]{Graph: g, State: s, Threads: 3, Handler: OnVisit}
	expected := graph.OracleDistances(g, 7)
	for r := 0; r < 5; r++ {
		s.Reset()
		phase.Run(s.Seeds(7)...)
		require.NoError(t, graph.CompareValues(s.Distance, expected))
	}
}

func TestDistOrder(t *testing.T) {
	assert.True(t, Dist{Dist: 5}.Less(Dist{Dist: 2}))
	assert.False(t, Dist{Dist: 2}.Less(Dist{Dist: 5}))
	assert.False(t, Dist{Dist: 2}.Less(Dist{Dist: 2}))
}

func BenchmarkShortestPaths(b *testing.B) {
	g := randomGraph(20000, 200000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ShortestPaths(g, 0, 4)
	}
}
