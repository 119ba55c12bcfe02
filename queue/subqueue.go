package queue

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// One lockable shard of the MultiQueue.
// Padded so neighbouring shard locks do not share a cache line.
type SubQueue[T PQI[T]] struct {
	_    cpu.CacheLinePad
	mu   sync.Mutex
	heap Heap[T]
	_    cpu.CacheLinePad
}

func (sq *SubQueue[T]) tryLock() bool {
	return sq.mu.TryLock()
}

func (sq *SubQueue[T]) unlock() {
	sq.mu.Unlock()
}

// Must hold the lock.
func (sq *SubQueue[T]) peek() (item T, ok bool) {
	if len(sq.heap) == 0 {
		return item, false
	}
	return sq.heap.Peek(), true
}
