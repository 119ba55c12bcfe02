package main

import (
	"sync/atomic"

	"github.com/ScottSallinen/mqbench/graph"
	"github.com/ScottSallinen/mqbench/queue"
	"github.com/ScottSallinen/mqbench/utils"
)

// A tentative distance for a vertex. Smaller distances come out of the queue first.
type Dist struct {
	Dist   uint32
	Vertex uint32
}

func (a Dist) Less(b Dist) bool {
	return a.Dist > b.Dist
}

// Best known distance per vertex, updated only by atomic min.
type SSSP struct {
	Distance []uint32
}

func NewSSSP(numNodes int) *SSSP {
	s := &SSSP{Distance: make([]uint32, numNodes)}
	s.Reset()
	return s
}

func (s *SSSP) Reset() {
	for i := range s.Distance {
		s.Distance[i] = graph.EMPTY_VAL
	}
}

func OnVisit(item Dist, g *graph.Graph, s *SSSP, h *queue.Handle[Dist]) {
	if item.Dist > atomic.LoadUint32(&s.Distance[item.Vertex]) {
		return // Stale, a shorter path was already found.
	}
	for _, e := range g.OutEdges(item.Vertex) {
		newDist := uint64(item.Dist) + uint64(e.Weight)
		if newDist >= uint64(graph.EMPTY_VAL) {
			continue
		}
		if old := utils.AtomicMinUint32(&s.Distance[e.Target], uint32(newDist)); uint32(newDist) < old {
			h.Push(Dist{Dist: uint32(newDist), Vertex: e.Target})
		}
	}
}

// Seeds the source. The distance table must be freshly reset.
func (s *SSSP) Seeds(src uint32) []Dist {
	s.Distance[src] = 0
	return []Dist{{Dist: 0, Vertex: src}}
}

// ShortestPaths runs one MultiQueue phase from src and returns the distances.
func ShortestPaths(g *graph.Graph, src uint32, threads int) ([]uint32, graph.PhaseStats) {
	s := NewSSSP(g.NumNodes())
	ps := graph.Run(g, s, threads, s.Seeds(src), OnVisit)
	return s.Distance, ps
}
