package main

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/ScottSallinen/mqbench/graph"
)

// verifyTree checks a visit-mode result: the source is its own parent at level zero, every visited vertex hangs off a
// visited parent by a real edge one level up, and every vertex reachable from a visited one was visited.
func verifyTree(g *graph.Graph, src uint32, v *Visit) (err error) {
	if v.Parent[src] != src || v.Level[src] != 0 {
		err = multierr.Append(err, fmt.Errorf("source %d has parent %d level %d", src, v.Parent[src], v.Level[src]))
	}
	reported := 0
	for u := uint32(0); u < uint32(g.NumNodes()) && reported < graph.MAX_REPORTED; u++ {
		if !v.Visited.IsSet(u) {
			if v.Parent[u] != graph.EMPTY_VAL {
				reported++
				err = multierr.Append(err, fmt.Errorf("unvisited vertex %d has parent %d", u, v.Parent[u]))
			}
			continue
		}
		for _, e := range g.OutEdges(u) {
			if !v.Visited.IsSet(e.Target) {
				reported++
				err = multierr.Append(err, fmt.Errorf("edge %d -> %d leaves the visited set", u, e.Target))
			}
		}
		if u == src {
			continue
		}
		p := v.Parent[u]
		if p == graph.EMPTY_VAL || !v.Visited.IsSet(p) {
			reported++
			err = multierr.Append(err, fmt.Errorf("vertex %d has no visited parent (%d)", u, p))
			continue
		}
		if !hasEdge(g, p, u) {
			reported++
			err = multierr.Append(err, fmt.Errorf("parent %d of %d has no edge to it", p, u))
		}
		if v.Level[u] != v.Level[p]+1 {
			reported++
			err = multierr.Append(err, fmt.Errorf("vertex %d level %d, parent %d level %d", u, v.Level[u], p, v.Level[p]))
		}
	}
	return err
}

func hasEdge(g *graph.Graph, src uint32, dst uint32) bool {
	for _, e := range g.OutEdges(src) {
		if e.Target == dst {
			return true
		}
	}
	return false
}
