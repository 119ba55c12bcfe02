package utils

import (
	"math/bits"
	"sync/atomic"
)

// Initially inspired from https://github.com/kelindar/bitmap Thank you for using the MIT license!
// Fixed size here; the atomic variants may be used concurrently with each other, but not with the plain ones.

type Bitmap []uint64

// NewBitmap holds bits [0, size).
func NewBitmap(size uint32) Bitmap {
	return make(Bitmap, (uint64(size)+63)>>6)
}

// Inline-able, returns false if out of range.
func (bitmap Bitmap) QuickSet(x uint32) bool {
	idx := int(x >> 6)
	bit := x % 64
	if idx >= len(bitmap) {
		return false
	}
	bitmap[idx] |= (1 << bit)
	return true
}

func (bitmap Bitmap) IsSet(x uint32) bool {
	return bitmap[x>>6]&(1<<(x%64)) != 0
}

// AtomicTestAndSet sets bit x and returns whether it was already set. Exactly one concurrent caller sees false.
func (bitmap Bitmap) AtomicTestAndSet(x uint32) (wasSet bool) {
	word := &bitmap[x>>6]
	mask := uint64(1) << (x % 64)
	for {
		old := atomic.LoadUint64(word)
		if old&mask != 0 {
			return true
		}
		if atomic.CompareAndSwapUint64(word, old, old|mask) {
			return false
		}
	}
}

func (bitmap Bitmap) AtomicIsSet(x uint32) bool {
	return atomic.LoadUint64(&bitmap[x>>6])&(1<<(x%64)) != 0
}

// Zeros all bits in the bitmap.
func (bitmap Bitmap) Zeroes() {
	for i := range bitmap {
		bitmap[i] = 0
	}
}

// Number of set bits.
func (bitmap Bitmap) Count() (count int) {
	for i := range bitmap {
		count += bits.OnesCount64(bitmap[i])
	}
	return count
}
