package graph

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottSallinen/mqbench/queue"
)

type treeItem uint32

func (a treeItem) Less(b treeItem) bool { return a > b } // Smaller ids first.

type treeState struct {
	size    uint32
	visited []int32
	delay   bool
}

// Each item k produces its children 2k+1 and 2k+2, so every k < size is produced exactly once.
func onTreeItem(item treeItem, _ *Graph, s *treeState, h *queue.Handle[treeItem]) {
	atomic.AddInt32(&s.visited[item], 1)
	if s.delay && rand.Intn(64) == 0 {
		time.Sleep(time.Duration(rand.Intn(100)) * time.Microsecond)
	}
	for _, c := range []uint32{2*uint32(item) + 1, 2*uint32(item) + 2} {
		if c < s.size {
			h.Push(treeItem(c))
		}
	}
}

func runTree(t *testing.T, threads int, size uint32, delay bool) PhaseStats {
	s := &treeState{size: size, visited: make([]int32, size), delay: delay}
	var ps PhaseStats
	var seeds []treeItem
	if size > 0 {
		seeds = append(seeds, 0)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ps = Run[treeItem](nil, s, threads, seeds, onTreeItem)
	}()
	joinWithin(t, &wg, 30*time.Second)

	for k := range s.visited {
		require.Equal(t, int32(1), s.visited[k], "item %v (threads %v)", k, threads)
	}
	return ps
}

func TestRunVisitsEverything(t *testing.T) {
	for count := 0; count < 10; count++ {
		threads := rand.Intn(8-1) + 1
		ps := runTree(t, threads, 20000, false)
		assert.Equal(t, uint64(20000), ps.TotalProcessed())
		assert.Len(t, ps.Processed, threads)
		assert.Equal(t, uint64(20000), ps.Queue.Pushes)
		assert.Equal(t, uint64(20000), ps.Queue.Pops)
	}
}

// Handlers that stall before pushing leave windows where every other thread has run out of work.
func TestRunNoLostWorkWithStalls(t *testing.T) {
	for count := 0; count < 5; count++ {
		runTree(t, rand.Intn(8-1)+2, 5000, true)
	}
}

func TestRunNoSeeds(t *testing.T) {
	ps := runTree(t, 4, 0, false)
	assert.Equal(t, uint64(0), ps.TotalProcessed())
}

func TestPhaseStatusPrinting(t *testing.T) {
	s := &treeState{size: 1000, visited: make([]int32, 1000)}
	p := Phase[treeItem, *treeState]{State: s, Threads: 2, Handler: onTreeItem, PollingRate: time.Millisecond}
	ps := p.Run(0)
	assert.Equal(t, uint64(1000), ps.TotalProcessed())
}

func TestRunRejectsNoThreads(t *testing.T) {
	assert.Panics(t, func() { Run[treeItem](nil, &treeState{}, 0, nil, onTreeItem) })
}
