package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/enforce"
	"github.com/ScottSallinen/mqbench/graph"
	"github.com/ScottSallinen/mqbench/utils"
)

func main() {
	visitPtr := flag.Bool("visit", false, "First-touch visit mode: builds a BFS-like tree, levels are upper bounds.")
	options := graph.FlagsToOptions()

	g, err := graph.LoadAdjacencyGraph(options.Name)
	enforce.ENFORCE(err, "Failed to load graph.")
	if g.Weighted {
		log.Info().Msg("Ignoring edge weights.")
		g.DropWeights()
	}
	g.ComputeGraphStats()

	if int(options.StartNode) >= g.NumNodes() {
		log.Panic().Msg("Start vertex " + utils.V(options.StartNode) + " out of range, graph has " + utils.V(g.NumNodes()) + " vertices.")
	}
	src := options.StartNode
	threads := int(options.NumThreads)

	if *visitPtr {
		v := NewVisit(g.NumNodes())
		var seeds []Level
		phase := graph.Phase[Level, *Visit]{Graph: g, State: v, Threads: threads, Handler: OnVisit, PollingRate: options.PollingRate}
		options.Benchmark("mq-bfs-visit", func() {
			v.Reset()
			seeds = v.Seeds(src)
		}, func() { phase.Run(seeds...) }, func() {})

		graph.LogSummary("bfs-visit", v.Level)
		if options.CheckCorrectness {
			enforce.ENFORCE(verifyTree(g, src, v), "Invalid BFS tree.")
			log.Info().Msg("Correctness check passed, visited " + utils.V(v.Visited.Count()))
		}
		if options.OracleCompare || options.Solution != "" {
			log.Warn().Msg("Visit mode levels are upper bounds; skipping level comparisons.")
			options.OracleCompare, options.Solution = false, ""
		}
		enforce.ENFORCE(options.CheckResults(g, v.Level))
		return
	}

	b := NewBFS(g.NumNodes())
	var seeds []Level
	phase := graph.Phase[Level, *BFS]{Graph: g, State: b, Threads: threads, Handler: OnLevel, PollingRate: options.PollingRate}
	options.Benchmark("mq-bfs", func() {
		b.Reset()
		seeds = b.Seeds(src)
	}, func() { phase.Run(seeds...) }, func() {})

	graph.LogSummary("bfs", b.Level)
	if options.CheckCorrectness {
		maxValue, err := graph.CheckRelaxed(g, src, b.Level)
		enforce.ENFORCE(err, "Levels are not a fixpoint.")
		log.Info().Msg("Correctness check passed, max level " + utils.V(maxValue))
	}
	enforce.ENFORCE(options.CheckResults(g, b.Level))
}
