package main

import (
	"github.com/ScottSallinen/mqbench/graph"
	"github.com/ScottSallinen/mqbench/queue"
)

// Dijkstra is the single threaded baseline, on the same heap the MultiQueue shards use.
func Dijkstra(g *graph.Graph, src uint32, dist []uint32) {
	for i := range dist {
		dist[i] = graph.EMPTY_VAL
	}
	dist[src] = 0
	pq := queue.Heap[Dist]{{Dist: 0, Vertex: src}}
	for pq.Len() > 0 {
		item := pq.Pop()
		if item.Dist > dist[item.Vertex] {
			continue
		}
		for _, e := range g.OutEdges(item.Vertex) {
			newDist := uint64(item.Dist) + uint64(e.Weight)
			if newDist < uint64(dist[e.Target]) {
				dist[e.Target] = uint32(newDist)
				pq.Push(Dist{Dist: uint32(newDist), Vertex: e.Target})
			}
		}
	}
}
