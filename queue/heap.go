package queue

// Ordering for items held by the queues. The greatest element (the one no other element is Less than) is extracted first.
// For "smallest value wins" orderings (e.g. distances), report Less when the receiver is the larger value.
type PQI[T any] interface {
	Less(T) bool
}

// Heap is a binary max-heap over PQI items.
type Heap[T PQI[T]] []T

// Init establishes the heap invariants.
// The complexity is O(n) where n = h.Len().
func (h Heap[T]) Init() {
	n := len(h)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

func (h Heap[T]) Len() int {
	return len(h)
}

// Peek returns the maximum element without removing it. The heap must not be empty.
func (h Heap[T]) Peek() T {
	return h[0]
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T]) Push(x T) {
	*h = append(*h, x)
	h.up(len(*h) - 1)
}

// Pop removes and returns the maximum element. The heap must not be empty.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T]) Pop() T {
	n := len(*h) - 1
	(*h)[0], (*h)[n] = (*h)[n], (*h)[0]
	h.down(0, n)
	item := (*h)[n]
	var zero T
	(*h)[n] = zero // Drop the reference, items may hold pointers.
	*h = (*h)[:n]
	return item
}

func (h Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h[i].Less(h[j]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		j = i
	}
}

func (h Heap[T]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h[j1].Less(h[j2]) {
			j = j2 // right child
		}
		if !h[i].Less(h[j]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		i = j
	}
	return i > i0
}
