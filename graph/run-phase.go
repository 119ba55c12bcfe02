package graph

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/queue"
	"github.com/ScottSallinen/mqbench/utils"
)

// Handler processes one popped item. It may push new items through h; pushes should only follow a winning CAS on the
// algorithm's best-known-value table (the state), so any one improvement is pushed at most once.
type Handler[T queue.PQI[T], S any] func(item T, g *Graph, state S, h *queue.Handle[T])

// Phase is one bounded run of exactly Threads workers over a fresh MultiQueue and TerminationDetector.
type Phase[T queue.PQI[T], S any] struct {
	Graph       *Graph
	State       S
	Threads     int
	Handler     Handler[T, S]
	PollingRate time.Duration // If non-zero, prints termination status at this rate while running.
}

type PhaseStats struct {
	Elapsed   time.Duration
	Processed []uint64 // Items handled, per thread.
	Queue     queue.Stats
}

func (ps *PhaseStats) TotalProcessed() (sum uint64) {
	return utils.Sum(ps.Processed)
}

// Run is shorthand for a Phase without status printing.
func Run[T queue.PQI[T], S any](g *Graph, state S, threads int, seeds []T, handler Handler[T, S]) PhaseStats {
	p := Phase[T, S]{Graph: g, State: state, Threads: threads, Handler: handler}
	return p.Run(seeds...)
}

// Run pushes the seeds, then spawns the workers and waits until they all agree there is no more work.
// Any items still queued at that point (there should be none) are discarded with the queue.
func (p *Phase[T, S]) Run(seeds ...T) (ps PhaseStats) {
	if p.Threads < 1 {
		log.Panic().Msg("Invalid thread count: " + utils.V(p.Threads))
	}
	q := queue.New[T](p.Threads)
	td := NewTerminationDetector(p.Threads)

	seeder := q.NewHandle()
	for _, s := range seeds {
		seeder.Push(s)
	}

	ps.Processed = make([]uint64, p.Threads)
	qStats := make([]queue.Stats, p.Threads)

	exit := new(atomic.Bool)
	if p.PollingRate > 0 {
		go td.PrintTerminationStatus(p.PollingRate, exit)
	}

	watch := utils.Watch{}
	watch.Start()

	wg := new(sync.WaitGroup)
	wg.Add(p.Threads)
	for t := 0; t < p.Threads; t++ {
		go p.worker(q, td, t, wg, &ps.Processed[t], &qStats[t])
	}
	wg.Wait()

	ps.Elapsed = watch.Elapsed()
	exit.Store(true)

	ps.Queue = seeder.Stats()
	for t := range qStats {
		ps.Queue.Add(qStats[t])
	}
	log.Debug().Msg("Phase: " + utils.V(ps.Elapsed.Milliseconds()) + "ms, processed " + utils.V(ps.TotalProcessed()) +
		", pushes " + utils.V(ps.Queue.Pushes) + ", pops " + utils.V(ps.Queue.Pops) +
		", lock misses " + utils.V(ps.Queue.LockMisses) + ", pop retries " + utils.V(ps.Queue.PopRetries))
	return ps
}

func (p *Phase[T, S]) worker(q *queue.MultiQueue[T], td *TerminationDetector, tidx int, wg *sync.WaitGroup, processed *uint64, qStats *queue.Stats) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer wg.Done()

	td.Join()
	h := q.NewHandle()
	count := uint64(0)
	for {
		item, ok := TryDo(td, h.Pop)
		if !ok {
			break
		}
		p.Handler(item, p.Graph, p.State, h)
		count++
	}
	*processed = count
	*qStats = h.Stats()
	log.Trace().Msg("T[" + utils.F("%02d", tidx) + "] done, processed " + utils.V(count))
}
