package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/enforce"
	"github.com/ScottSallinen/mqbench/graph"
	"github.com/ScottSallinen/mqbench/utils"
)

// Converts an edge list to the (Weighted)AdjacencyGraph format, or generates a random graph in it.
func main() {
	gPtr := flag.String("g", "", "Edge list to convert (src dst [weight] per line).")
	outPtr := flag.String("out", "", "Output file. Defaults to the input name with an .adj extension.")
	undirectedPtr := flag.Bool("u", false, "Treat the edge list as undirected (adds reverse edges).")
	shufflePtr := flag.Bool("shuffle", false, "Shuffle the edges before building (changes out edge order).")
	genNPtr := flag.Int("n", 0, "Generate a random graph with this many vertices instead of converting.")
	genMPtr := flag.Int("m", 0, "Number of edges for the generated graph.")
	genWPtr := flag.Uint("w", 0, "Max weight for the generated graph. 0 for unweighted.")
	seedPtr := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the generated graph.")
	debugPtr := flag.Int("debug", 0, "Level 0 for info, 1 for debug, 2 for trace.")
	flag.Parse()
	utils.SetLevel(*debugPtr)

	var g *graph.Graph
	out := *outPtr
	switch {
	case *genNPtr > 0:
		var err error
		g, err = graph.GenerateGnm(*genNPtr, *genMPtr, uint32(*genWPtr), *seedPtr)
		enforce.ENFORCE(err, "Failed to generate graph.")
		if out == "" {
			out = "gnm-" + utils.V(*genNPtr) + "-" + utils.V(*genMPtr) + ".adj"
		}
		log.Info().Msg("Generated with seed " + utils.V(*seedPtr))
	case *gPtr != "":
		file, err := os.Open(*gPtr)
		enforce.ENFORCE(err, "Failed to open "+*gPtr)
		watch := utils.Watch{}
		watch.Start()
		edges, numNodes, weighted, err := graph.ParseEdgeList(file)
		file.Close()
		enforce.ENFORCE(err)
		log.Info().Msg("Read " + utils.V(len(edges)) + " edges in (ms) " + utils.V(watch.Elapsed().Milliseconds()))
		if *undirectedPtr {
			edges = graph.Undirected(edges)
		}
		if *shufflePtr {
			utils.Shuffle(edges)
		}
		g = graph.FromEdges(numNodes, edges, weighted)
		if out == "" {
			out = utils.ExtractGraphName(*gPtr) + ".adj"
		}
	default:
		flag.Usage()
		os.Exit(1)
	}

	g.ComputeGraphStats()
	file := utils.CreateFile(out)
	defer file.Close()
	enforce.ENFORCE(graph.WriteAdjacencyGraph(file, g), "Failed to write "+out)
	log.Info().Msg("Wrote " + out)
}
