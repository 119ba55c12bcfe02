// Package graph holds the immutable CSR graph the benchmarks run on, the termination detector, and the parallel worker
// loop that drives a MultiQueue phase.
package graph

import (
	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/utils"
)

// Distance or level value for a vertex that was never reached.
const EMPTY_VAL = ^uint32(0)

type Edge struct {
	Target uint32
	Weight uint32
}

// Compressed sparse row graph. Read-only once built; shared by all worker threads.
type Graph struct {
	Nodes    []uint64 // Offsets into Edges, length V+1.
	Edges    []Edge   // Out edges, grouped by source vertex.
	Weighted bool     // If false, all weights are 1.
	Name     string
}

// An edge as given by a loader or generator, before CSR construction.
type RawEdge struct {
	Src    uint32
	Dst    uint32
	Weight uint32
}

func (g *Graph) NumNodes() int {
	if len(g.Nodes) == 0 {
		return 0
	}
	return len(g.Nodes) - 1
}

func (g *Graph) NumEdges() int {
	return len(g.Edges)
}

func (g *Graph) OutEdges(v uint32) []Edge {
	return g.Edges[g.Nodes[v]:g.Nodes[v+1]]
}

func (g *Graph) OutDegree(v uint32) int {
	return int(g.Nodes[v+1] - g.Nodes[v])
}

// FromEdges builds a CSR graph with numNodes vertices. Edge order within a vertex follows input order.
// If weighted is false, all weights are set to 1.
func FromEdges(numNodes int, edges []RawEdge, weighted bool) *Graph {
	g := &Graph{
		Nodes:    make([]uint64, numNodes+1),
		Edges:    make([]Edge, len(edges)),
		Weighted: weighted,
	}
	for _, e := range edges {
		if int(e.Src) >= numNodes || int(e.Dst) >= numNodes {
			log.Panic().Msg("Edge out of range: " + utils.V(e.Src) + " -> " + utils.V(e.Dst) + " with vertex count " + utils.V(numNodes))
		}
		g.Nodes[e.Src+1]++
	}
	for v := 0; v < numNodes; v++ {
		g.Nodes[v+1] += g.Nodes[v]
	}
	pos := make([]uint64, numNodes)
	copy(pos, g.Nodes[:numNodes])
	for _, e := range edges {
		w := e.Weight
		if !weighted {
			w = 1
		}
		g.Edges[pos[e.Src]] = Edge{Target: e.Dst, Weight: w}
		pos[e.Src]++
	}
	return g
}

func (g *Graph) ComputeGraphStats() {
	numNodes := g.NumNodes()
	if numNodes == 0 {
		log.Info().Msg("Empty graph")
		return
	}
	numSinks := 0
	listOutDegree := make([]int, numNodes)
	for v := uint32(0); v < uint32(numNodes); v++ {
		deg := g.OutDegree(v)
		if deg == 0 {
			numSinks++
		}
		listOutDegree[v] = deg
	}
	maxOutDegree := utils.MaxSlice(listOutDegree)

	log.Info().Msg("----GraphStats----")
	log.Info().Msg("Vertices " + utils.V(numNodes) + " Edges " + utils.V(g.NumEdges()) + " Weighted " + utils.V(g.Weighted))
	log.Info().Msg("Sinks " + utils.V(numSinks) + " pct:" + utils.F("%.3f", float64(numSinks)*100.0/float64(numNodes)))
	log.Info().Msg("MaxOutDeg " + utils.V(maxOutDegree) + " MedianOutDeg " + utils.V(utils.Median(listOutDegree)))
	log.Info().Msg("----EndStats----")
}
