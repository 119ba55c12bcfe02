package graph

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/utils"
)

// Agreement between a fixed set of threads that no thread can find, or will produce, more work.
//
// A thread that fails to find work counts itself in noWorkCount. Once everyone has failed (noWorkCount == P), threads
// gather at the idle rendezvous; termination is declared only if all P reach it while noWorkCount is still saturated.
// Any thread that finds work leaves noWorkCount, which releases everyone waiting at the rendezvous.
// A thread that pushes work always finds it (or sees it taken by a peer that is then not idle) before it can go idle.
type TerminationDetector struct {
	idleCount   atomic.Uint32
	noWorkCount atomic.Uint32
	joined      atomic.Uint32
	numThreads  uint32
}

// Created once per phase; must not be reused for another phase.
func NewTerminationDetector(threads int) *TerminationDetector {
	if threads < 1 {
		log.Panic().Msg("Invalid thread count for termination: " + utils.V(threads))
	}
	return &TerminationDetector{numThreads: uint32(threads)}
}

func (td *TerminationDetector) NumThreads() int {
	return int(td.numThreads)
}

// Join registers a participating thread, and must be called before its first TryDo. More participants than the
// detector was built for would break the counts, so this fails fast. Fewer than P is not detectable: the remaining
// threads never reach a full noWorkCount and spin forever. Phase.Run always joins exactly P.
func (td *TerminationDetector) Join() {
	if joined := td.joined.Add(1); joined > td.numThreads {
		log.Panic().Msg("Too many threads joined termination: " + utils.V(joined) + " of " + utils.V(td.numThreads))
	}
}

// Status is a snapshot of the counters, for debugging.
func (td *TerminationDetector) Status() (idle uint32, noWork uint32) {
	return td.idleCount.Load(), td.noWorkCount.Load()
}

// WaitToTerminate joins the idle rendezvous. Returns true once all threads are idle; returns false as soon as some
// thread found work.
func (td *TerminationDetector) WaitToTerminate() bool {
	idle := td.idleCount.Add(1)
	for idle < td.numThreads {
		if td.noWorkCount.Load() < td.numThreads {
			td.idleCount.Add(^uint32(0))
			return false
		}
		runtime.Gosched()
		idle = td.idleCount.Load()
	}
	return true
}

// TryDo runs attempt until it succeeds or all threads agree there is nothing left.
// ok is false only on global termination. The caller must have joined.
func TryDo[R any](td *TerminationDetector, attempt func() (R, bool)) (result R, ok bool) {
	if result, ok = attempt(); ok {
		return result, true
	}
	if td.joined.Load() == 0 {
		log.Panic().Msg("TryDo on a termination detector nobody joined")
	}
	noWork := td.noWorkCount.Add(1)
	for {
		if result, ok = attempt(); ok {
			td.noWorkCount.Add(^uint32(0))
			return result, true
		}
		if noWork == td.numThreads && td.WaitToTerminate() {
			return result, false
		}
		noWork = td.noWorkCount.Load()
	}
}

// DEBUG func to periodically print termination counters until exit is set.
func (td *TerminationDetector) PrintTerminationStatus(pollingRate time.Duration, exit *atomic.Bool) {
	for !exit.Load() {
		time.Sleep(pollingRate)
		td.printStatus("Active: ")
	}
	td.printStatus("Finals: ")
}

func (td *TerminationDetector) printStatus(prefix string) {
	idle, noWork := td.Status()
	log.Info().Msg(prefix + "Idle: " + utils.V(idle) + " NoWork: " + utils.V(noWork) + " of " + utils.V(td.numThreads))
}
