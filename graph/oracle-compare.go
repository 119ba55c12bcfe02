package graph

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/ScottSallinen/mqbench/utils"
)

// Stop collecting after this many mismatches; the error would only get longer.
const MAX_REPORTED = 16

// OracleDistances computes shortest path distances from src with gonum's Dijkstra, independently of the MultiQueue.
// Unreachable vertices get EMPTY_VAL.
func OracleDistances(g *Graph, src uint32) []uint32 {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	numNodes := g.NumNodes()
	for v := 0; v < numNodes; v++ {
		wg.AddNode(simple.Node(v))
	}
	for v := uint32(0); v < uint32(numNodes); v++ {
		for _, e := range g.OutEdges(v) {
			if e.Target == v {
				continue // Self loops never improve a distance (and gonum refuses them).
			}
			w := float64(e.Weight)
			if existing := wg.WeightedEdge(int64(v), int64(e.Target)); existing != nil && existing.Weight() <= w {
				continue // Keep the lightest of parallel edges.
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(v), simple.Node(e.Target), w))
		}
	}

	shortest := path.DijkstraFrom(simple.Node(src), wg)
	dist := make([]uint32, numNodes)
	for v := range dist {
		d := shortest.WeightTo(int64(v))
		if math.IsInf(d, 1) {
			dist[v] = EMPTY_VAL
		} else {
			dist[v] = uint32(d)
		}
	}
	return dist
}

// CompareValues reports every position where got differs from expected.
func CompareValues(got []uint32, expected []uint32) (err error) {
	if len(got) != len(expected) {
		return fmt.Errorf("length mismatch: got %d, expected %d", len(got), len(expected))
	}
	reported := 0
	for v := range got {
		if got[v] != expected[v] {
			reported++
			if reported > MAX_REPORTED {
				break
			}
			err = multierr.Append(err, fmt.Errorf("vertex %d: got %d, expected %d", v, got[v], expected[v]))
		}
	}
	return err
}

// CompareToOracle checks distances from src against OracleDistances.
func CompareToOracle(g *Graph, src uint32, dist []uint32) error {
	log.Info().Msg("----ORACLE----")
	watch := utils.Watch{}
	watch.Start()
	oracle := OracleDistances(g, src)
	log.Debug().Msg("Oracle computed in (ms) " + utils.V(watch.Elapsed().Milliseconds()))
	err := CompareValues(dist, oracle)
	if err != nil {
		log.Warn().Msg("Oracle mismatch: " + utils.V(len(multierr.Errors(err))) + " (or more) vertices differ")
	} else {
		log.Info().Msg("Oracle matches.")
	}
	return err
}

// CheckRelaxed verifies dist is a relaxation fixpoint from src: the source is zero, and no edge out of a reached vertex
// could improve its target. Returns the largest finite value.
func CheckRelaxed(g *Graph, src uint32, dist []uint32) (maxValue uint32, err error) {
	if len(dist) != g.NumNodes() {
		return 0, fmt.Errorf("length mismatch: got %d, expected %d", len(dist), g.NumNodes())
	}
	if dist[src] != 0 {
		err = multierr.Append(err, fmt.Errorf("source %d has value %d", src, dist[src]))
	}
	reported := 0
	for v := uint32(0); v < uint32(len(dist)) && reported < MAX_REPORTED; v++ {
		ourValue := dist[v]
		if ourValue == EMPTY_VAL {
			continue // Never reached.
		}
		maxValue = utils.Max(maxValue, ourValue)
		for _, e := range g.OutEdges(v) {
			if uint64(dist[e.Target]) > uint64(ourValue)+uint64(e.Weight) {
				reported++
				err = multierr.Append(err, fmt.Errorf("edge %d -> %d (weight %d): %d vs %d", v, e.Target, e.Weight, ourValue, dist[e.Target]))
			}
		}
	}
	return maxValue, err
}
