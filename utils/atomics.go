package utils

import (
	"sync/atomic"
)

// Lowers *targetVal to new if new is smaller. Returns the value seen before; the caller won the update iff new < old.
// At most one thread wins any particular lowering.
//
//go:nosplit
func AtomicMinUint32(targetVal *uint32, new uint32) (old uint32) {
	for {
		old = atomic.LoadUint32(targetVal)
		if new >= old || atomic.CompareAndSwapUint32(targetVal, old, new) {
			return old
		}
	}
}
