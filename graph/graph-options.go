package graph

import (
	"flag"
	"math"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/utils"
)

type GraphOptions struct {
	Name             string        // Graph file.
	NumThreads       uint32        // Number of worker threads per phase.
	Rounds           uint32        // Number of timed rounds.
	Delay            time.Duration // Warm-up: untimed rounds are run until this much time has passed.
	StartNode        uint32        // Source vertex.
	Output           string        // If set, the final values are written here.
	Solution         string        // If set, the final values are compared to the values in this file.
	CheckCorrectness bool          // If true, checks the result is a relaxation fixpoint (might be slow).
	OracleCompare    bool          // If true, compares the result to an oracle shortest path computation.
	DebugLevel       uint8         // 1 for debug, 2 for trace, 3 adds termination status printing.
	PollingRate      time.Duration // How often to print termination status, when DebugLevel >= 3.
	Profile          bool          // If true, will profile the timed rounds and create a pprof file.
}

// Declare your own flags before you call this function.
func FlagsToOptions() (graphOptions GraphOptions) {
	graphPtr := flag.String("g", "", "Graph file, in (Weighted)AdjacencyGraph format.")
	threadPtr := flag.Int("t", runtime.NumCPU(), "Thread count for the algorithm.")
	roundsPtr := flag.Int("r", 1, "Number of timed rounds.")
	delayPtr := flag.Float64("delay", 0, "Run untimed warm-up rounds for this many seconds first.")
	srcPtr := flag.Uint("src", 0, "Start vertex.")
	outPtr := flag.String("out", "", "Write the resulting values to this file, one per line.")
	solutionPtr := flag.String("solution", "", "Compare the resulting values to this file.")
	checkPtr := flag.Bool("c", false, "Check correctness after execution.")
	oraclePtr := flag.Bool("o", false, "Compare to oracle shortest path results.")
	profilePtr := flag.Bool("profile", false, "Profile the timed rounds, print memory stats, and create a pprof file.")
	pprofPtr := flag.String("pprof", "", "If set, will serve pprof on the given address:port. E.g.\"0.0.0.0:6060\".")
	debugPtr := flag.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 for trace, 3 adds termination status printing.")
	pollPtr := flag.Uint("poll", 500, "Polling rate (ms) for termination status printing.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *graphPtr == "" {
		flag.Usage()
		os.Exit(1)
	}

	if *pprofPtr != "" {
		go func() {
			log.Info().Msg("pprof Starting on " + *pprofPtr)
			err := http.ListenAndServe(*pprofPtr, nil)
			if err != nil {
				log.Error().Err(err).Msg("pprof Failed to start.")
			}
		}()
	}

	threadCount := *threadPtr
	if threadCount <= 0 {
		log.Panic().Msg("Invalid thread count.")
	} else if threadCount > runtime.NumCPU() {
		log.Warn().Msg("Thread count is greater than CPU count? Termination busy-waits; expect poor performance.")
	}
	startNode := toVertex(*srcPtr)
	if *roundsPtr <= 0 {
		log.Panic().Msg("Invalid round count.")
	}

	graphOptions = GraphOptions{
		Name:             *graphPtr,
		NumThreads:       uint32(threadCount),
		Rounds:           uint32(*roundsPtr),
		Delay:            time.Duration(*delayPtr * float64(time.Second)),
		StartNode:        startNode,
		Output:           *outPtr,
		Solution:         *solutionPtr,
		CheckCorrectness: *checkPtr,
		OracleCompare:    *oraclePtr,
		DebugLevel:       uint8(*debugPtr),
		Profile:          *profilePtr,
	}
	if graphOptions.DebugLevel >= 3 {
		graphOptions.PollingRate = time.Duration(*pollPtr) * time.Millisecond
	}
	return graphOptions
}

// Vertex ids are 32 bits, and EMPTY_VAL is reserved.
func toVertex(src uint) uint32 {
	if src >= math.MaxUint32 {
		log.Panic().Msg("Invalid start vertex: " + utils.V(src))
	}
	return uint32(src)
}
