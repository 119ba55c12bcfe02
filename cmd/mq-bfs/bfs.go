package main

import (
	"sync/atomic"

	"github.com/ScottSallinen/mqbench/graph"
	"github.com/ScottSallinen/mqbench/queue"
	"github.com/ScottSallinen/mqbench/utils"
)

// A vertex at a tentative level. Lower levels come out of the queue first.
type Level struct {
	Level  uint32
	Vertex uint32
}

func (a Level) Less(b Level) bool {
	return a.Level > b.Level
}

// Level mode: best known level per vertex, lowered by atomic min. Converges to exact hop counts.
type BFS struct {
	Level []uint32
}

func NewBFS(numNodes int) *BFS {
	b := &BFS{Level: make([]uint32, numNodes)}
	b.Reset()
	return b
}

func (b *BFS) Reset() {
	for i := range b.Level {
		b.Level[i] = graph.EMPTY_VAL
	}
}

func (b *BFS) Seeds(src uint32) []Level {
	b.Level[src] = 0
	return []Level{{Level: 0, Vertex: src}}
}

func OnLevel(item Level, g *graph.Graph, b *BFS, h *queue.Handle[Level]) {
	if item.Level > atomic.LoadUint32(&b.Level[item.Vertex]) {
		return
	}
	next := item.Level + 1
	for _, e := range g.OutEdges(item.Vertex) {
		if old := utils.AtomicMinUint32(&b.Level[e.Target], next); next < old {
			h.Push(Level{Level: next, Vertex: e.Target})
		}
	}
}

// Visit mode: the first thread to touch a vertex claims it, records its parent, and pushes it once.
// Every reachable vertex is visited exactly once, but under relaxed ordering its level may exceed the true hop count.
type Visit struct {
	Visited utils.Bitmap
	Parent  []uint32
	Level   []uint32
}

func NewVisit(numNodes int) *Visit {
	v := &Visit{
		Visited: utils.NewBitmap(uint32(numNodes)),
		Parent:  make([]uint32, numNodes),
		Level:   make([]uint32, numNodes),
	}
	v.Reset()
	return v
}

func (v *Visit) Reset() {
	v.Visited.Zeroes()
	for i := range v.Parent {
		v.Parent[i] = graph.EMPTY_VAL
		v.Level[i] = graph.EMPTY_VAL
	}
}

func (v *Visit) Seeds(src uint32) []Level {
	v.Visited.QuickSet(src)
	v.Parent[src] = src
	v.Level[src] = 0
	return []Level{{Level: 0, Vertex: src}}
}

func OnVisit(item Level, g *graph.Graph, v *Visit, h *queue.Handle[Level]) {
	next := item.Level + 1
	for _, e := range g.OutEdges(item.Vertex) {
		if v.Visited.AtomicIsSet(e.Target) || v.Visited.AtomicTestAndSet(e.Target) {
			continue // Plain load first; the CAS is only for vertices that look unclaimed.
		}
		v.Parent[e.Target] = item.Vertex
		v.Level[e.Target] = next
		h.Push(Level{Level: next, Vertex: e.Target})
	}
}

func Levels(g *graph.Graph, src uint32, threads int) ([]uint32, graph.PhaseStats) {
	b := NewBFS(g.NumNodes())
	ps := graph.Run(g, b, threads, b.Seeds(src), OnLevel)
	return b.Level, ps
}

func VisitTree(g *graph.Graph, src uint32, threads int) (*Visit, graph.PhaseStats) {
	v := NewVisit(g.NumNodes())
	ps := graph.Run(g, v, threads, v.Seeds(src), OnVisit)
	return v, ps
}
