// Package queue provides a relaxed concurrent priority queue (MultiQueue) built from randomly sampled, individually locked heaps.
//
// Push picks a random shard. Pop samples two shards, peeks both, and commits to the one holding the greater item
// (a power-of-two-choices heuristic). No global pop order is guaranteed, only an approximate maximum.
package queue

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/utils"
)

// Number of shards per participating thread.
const ShardsPerThread = 4

type MultiQueue[T PQI[T]] struct {
	shards   []SubQueue[T]
	numEmpty atomic.Uint32 // Hint of how many shards are empty. Converges once no pushes are in flight.
}

// New creates a MultiQueue for the given number of participating threads, with ShardsPerThread shards each.
func New[T PQI[T]](threads int) *MultiQueue[T] {
	return NewSharded[T](threads, ShardsPerThread)
}

// NewSharded is New with an explicit fan-out. A single shard in total degenerates to a locked heap.
func NewSharded[T PQI[T]](threads int, shardsPerThread int) *MultiQueue[T] {
	if threads < 1 {
		log.Panic().Msg("Invalid thread count for MultiQueue: " + utils.V(threads))
	}
	if shardsPerThread < 1 {
		log.Panic().Msg("Invalid shards per thread for MultiQueue: " + utils.V(shardsPerThread))
	}
	numShards := threads * shardsPerThread
	q := &MultiQueue[T]{shards: make([]SubQueue[T], numShards)}
	q.numEmpty.Store(uint32(numShards))
	return q
}

func (q *MultiQueue[T]) NumShards() int {
	return len(q.shards)
}

// EmptyHint returns the current (possibly stale) count of empty shards.
func (q *MultiQueue[T]) EmptyHint() uint32 {
	return q.numEmpty.Load()
}

// Len counts all held items. Diagnostic only: it takes every shard lock in turn, and is not a consistent snapshot while
// other threads are active.
func (q *MultiQueue[T]) Len() (n int) {
	for i := range q.shards {
		q.shards[i].mu.Lock()
		n += len(q.shards[i].heap)
		q.shards[i].mu.Unlock()
	}
	return n
}

// Push through a one-off handle. Workers should hold their own Handle instead.
func (q *MultiQueue[T]) Push(item T) {
	h := Handle[T]{q: q, rng: rand.Uint64() | 1}
	h.Push(item)
}

// Pop through a one-off handle. Workers should hold their own Handle instead.
func (q *MultiQueue[T]) Pop() (item T, ok bool) {
	h := Handle[T]{q: q, rng: rand.Uint64() | 1}
	return h.Pop()
}

// NewHandle creates a view of the queue for a single thread, with its own random source for shard selection.
// A Handle must not be shared between threads.
func (q *MultiQueue[T]) NewHandle() *Handle[T] {
	return &Handle[T]{q: q, rng: rand.Uint64() | 1}
}

type Handle[T PQI[T]] struct {
	q     *MultiQueue[T]
	rng   uint64
	stats Stats
}

type Stats struct {
	Pushes     uint64
	Pops       uint64
	LockMisses uint64 // Failed try-locks that forced a resample.
	PopRetries uint64 // Pop attempts restarted from sampling (empty samples, lost races).
}

func (s *Stats) Add(o Stats) {
	s.Pushes += o.Pushes
	s.Pops += o.Pops
	s.LockMisses += o.LockMisses
	s.PopRetries += o.PopRetries
}

func (h *Handle[T]) Stats() Stats {
	return h.stats
}

func (h *Handle[T]) Queue() *MultiQueue[T] {
	return h.q
}

func (h *Handle[T]) randomShard() int {
	h.rng = xorshiftMult64(h.rng)
	return int(reduce(uint32(h.rng>>32), len(h.q.shards)))
}

// Locks a random shard other than except (use -1 for no exception). Never waits on a contended lock; resamples instead.
func (h *Handle[T]) lockShard(except int) (*SubQueue[T], int) {
	for {
		idx := h.randomShard()
		if idx == except {
			continue
		}
		if sq := &h.q.shards[idx]; sq.tryLock() {
			return sq, idx
		}
		h.stats.LockMisses++
	}
}

// Push inserts the item into a random shard. Always succeeds.
func (h *Handle[T]) Push(item T) {
	sq, _ := h.lockShard(-1)
	if len(sq.heap) == 0 {
		h.q.numEmpty.Add(^uint32(0))
	}
	sq.heap.Push(item)
	sq.unlock()
	h.stats.Pushes++
}

// Pop removes an approximately-maximal item.
// Returns false only when both sampled shards were empty and every shard was seen as empty;
// while the hint says some shard still holds work, it keeps sampling.
func (h *Handle[T]) Pop() (item T, ok bool) {
	q := h.q
	numShards := uint32(len(q.shards))
	for {
		sq1, idx1 := h.lockShard(-1)
		val1, ok1 := sq1.peek()
		sq1.unlock()

		idx2, ok2 := idx1, false
		var val2 T
		if numShards > 1 {
			var sq2 *SubQueue[T]
			sq2, idx2 = h.lockShard(idx1)
			val2, ok2 = sq2.peek()
			sq2.unlock()
		}

		var selected int
		switch {
		case ok1 && ok2:
			if val2.Less(val1) {
				selected = idx1
			} else {
				selected = idx2
			}
		case ok1:
			selected = idx1
		case ok2:
			selected = idx2
		default:
			if q.numEmpty.Load() == numShards {
				return item, false
			}
			h.stats.PopRetries++
			continue
		}

		// The chosen shard may have changed since the peek. A contended or emptied shard means we lost the race.
		sq := &q.shards[selected]
		if !sq.tryLock() {
			h.stats.LockMisses++
			h.stats.PopRetries++
			continue
		}
		if len(sq.heap) == 0 {
			sq.unlock()
			h.stats.PopRetries++
			continue
		}
		item = sq.heap.Pop()
		if len(sq.heap) == 0 {
			q.numEmpty.Add(1)
		}
		sq.unlock()
		h.stats.Pops++
		return item, true
	}
}

// 64-bit xorshift multiply rng from http://vigna.di.unimi.it/ftp/papers/xorshift.pdf
func xorshiftMult64(x uint64) uint64 {
	x ^= x >> 12 // a
	x ^= x << 25 // b
	x ^= x >> 27 // c
	return x * 2685821657736338717
}

// http://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func reduce(x uint32, n int) uint32 {
	return uint32((uint64(x) * uint64(n)) >> 32)
}
