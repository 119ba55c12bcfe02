package graph

import (
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/utils"
)

// TimeLoop runs untimed warm-up rounds until delay has passed, then times `rounds` runs of runF.
// initF and endF run before and after every round, outside the timed region. Returns the mean round time.
func TimeLoop(name string, rounds int, delay time.Duration, initF func(), runF func(), endF func()) (mean time.Duration, times []time.Duration) {
	warmup := utils.Watch{}
	warmup.Start()
	for warmup.Elapsed() < delay {
		initF()
		runF()
		endF()
	}

	total := utils.Watch{}
	total.Start()
	total.Pause()
	for r := 0; r < rounds; r++ {
		initF()
		total.UnPause()
		round := utils.Watch{}
		round.Start()
		runF()
		elapsed := round.Elapsed()
		total.Pause()
		endF()

		times = append(times, elapsed)
		log.Info().Msg(name + ":\t" + utils.F("%.6f", elapsed.Seconds()))
	}
	if rounds == 0 {
		return 0, nil
	}
	mean = total.Elapsed() / time.Duration(rounds)
	log.Info().Msg("mean: " + utils.F("%.6f", mean.Seconds()) + "s median: " + utils.F("%.6f", utils.Median(times).Seconds()) + "s")
	return mean, times
}

// Benchmark is TimeLoop driven by the options, with CPU profiling of the whole loop if requested.
func (o *GraphOptions) Benchmark(name string, initF func(), runF func(), endF func()) (mean time.Duration, times []time.Duration) {
	if o.Profile {
		utils.MemoryStats()
		file := utils.CreateFile(name + ".pprof")
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			log.Panic().Err(err).Msg("Failed to start profile.")
		}
		defer func() {
			pprof.StopCPUProfile()
			utils.MemoryStats()
		}()
	}
	return TimeLoop(name, int(o.Rounds), o.Delay, initF, runF, endF)
}
