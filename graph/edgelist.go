package graph

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/ScottSallinen/mqbench/utils"
)

// ParseEdgeList reads "src dst [weight]" lines, whitespace separated. Lines starting with '#' or '%' are comments.
// The vertex count is one past the largest id seen. The list counts as weighted if any line carries a weight;
// lines without one get weight 1.
func ParseEdgeList(r io.Reader) (edges []RawEdge, numNodes int, weighted bool, err error) {
	lines := utils.FastFileLines{Buf: make([]byte, 64*1024)}
	fields := make([][]byte, 0, 4)
	for lineNum := 1; ; lineNum++ {
		line := lines.Scan(r)
		if line == nil {
			break
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields = append(fields[:0], bytes.Fields(line)...)
		if len(fields) < 2 {
			return nil, 0, false, fmt.Errorf("%w: line %d: expected src dst [weight]", ErrFormat, lineNum)
		}
		var vals [3]uint64
		vals[2] = 1
		for i := 0; i < len(fields) && i < 3; i++ {
			if vals[i], err = strconv.ParseUint(string(fields[i]), 10, 32); err != nil {
				return nil, 0, false, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNum, err)
			}
		}
		if len(fields) >= 3 {
			weighted = true
		}
		if vals[0] >= uint64(EMPTY_VAL) || vals[1] >= uint64(EMPTY_VAL) {
			return nil, 0, false, fmt.Errorf("%w: line %d: vertex id too large", ErrFormat, lineNum)
		}
		edges = append(edges, RawEdge{Src: uint32(vals[0]), Dst: uint32(vals[1]), Weight: uint32(vals[2])})
		numNodes = utils.Max(numNodes, int(utils.Max(vals[0], vals[1]))+1)
	}
	return edges, numNodes, weighted, nil
}

// Undirected adds the reverse of every edge.
func Undirected(edges []RawEdge) []RawEdge {
	out := make([]RawEdge, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e, RawEdge{Src: e.Dst, Dst: e.Src, Weight: e.Weight})
	}
	return out
}

// GenerateGnm builds a random directed Erdős-Rényi graph with numNodes vertices and about numEdges edges
// (no self loops or parallel edges). If maxWeight is non-zero, weights are drawn uniformly from [1, maxWeight].
func GenerateGnm(numNodes int, numEdges int, maxWeight uint32, seed uint64) (*Graph, error) {
	src := xrand.NewSource(seed)
	dg := simple.NewDirectedGraph()
	if err := gen.Gnm(dg, numNodes, numEdges, src); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, numNodes)
	for it := dg.Nodes(); it.Next(); {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]uint32, len(ids))
	for i, id := range ids {
		index[id] = uint32(i)
	}

	var edges []RawEdge
	for it := dg.Edges(); it.Next(); {
		e := it.Edge()
		edges = append(edges, RawEdge{Src: index[e.From().ID()], Dst: index[e.To().ID()], Weight: 1})
	}
	// Edge iteration order is map order; fix it so a seed always gives the same graph.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Src != edges[j].Src {
			return edges[i].Src < edges[j].Src
		}
		return edges[i].Dst < edges[j].Dst
	})
	if maxWeight > 0 {
		rnd := xrand.New(src)
		for i := range edges {
			edges[i].Weight = 1 + uint32(rnd.Int63n(int64(maxWeight)))
		}
	}
	return FromEdges(len(ids), edges, maxWeight > 0), nil
}
