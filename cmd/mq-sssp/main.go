package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/enforce"
	"github.com/ScottSallinen/mqbench/graph"
	"github.com/ScottSallinen/mqbench/utils"
)

func main() {
	seqPtr := flag.Bool("seq", false, "Run the sequential Dijkstra baseline instead of the MultiQueue.")
	options := graph.FlagsToOptions()

	g, err := graph.LoadAdjacencyGraph(options.Name)
	enforce.ENFORCE(err, "Failed to load graph.")
	g.ComputeGraphStats()

	if int(options.StartNode) >= g.NumNodes() {
		log.Panic().Msg("Start vertex " + utils.V(options.StartNode) + " out of range, graph has " + utils.V(g.NumNodes()) + " vertices.")
	}
	src := options.StartNode

	s := NewSSSP(g.NumNodes())
	if *seqPtr {
		options.Benchmark("dijkstra", func() {}, func() { Dijkstra(g, src, s.Distance) }, func() {})
	} else {
		var seeds []Dist
		var ps graph.PhaseStats
		phase := graph.Phase[Dist, *SSSP]{
			Graph:       g,
			State:       s,
			Threads:     int(options.NumThreads),
			Handler:     OnVisit,
			PollingRate: options.PollingRate,
		}
		options.Benchmark("mq-sssp", func() {
			s.Reset()
			seeds = s.Seeds(src)
		}, func() {
			ps = phase.Run(seeds...)
		}, func() {
			log.Debug().Msg("Processed " + utils.V(ps.TotalProcessed()) + " items, " + utils.V(ps.Queue.PopRetries) + " pop retries")
		})
	}

	graph.LogSummary("sssp", s.Distance)
	if options.CheckCorrectness {
		maxValue, err := graph.CheckRelaxed(g, src, s.Distance)
		enforce.ENFORCE(err, "Distances are not a fixpoint.")
		log.Info().Msg("Correctness check passed, max distance " + utils.V(maxValue))
	}
	enforce.ENFORCE(options.CheckResults(g, s.Distance))
}
