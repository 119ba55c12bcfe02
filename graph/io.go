package graph

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/mqbench/utils"
)

const (
	ADJ_HEADER          = "AdjacencyGraph"
	WEIGHTED_ADJ_HEADER = "WeightedAdjacencyGraph"
)

const (
	MAX_EDGES      = 1 << 40 // Largest edge count a header may claim.
	PREALLOC_LIMIT = 1 << 20 // Up front capacity is capped here; the rest grows as the file is read.
)

var ErrFormat = errors.New("malformed adjacency graph")

// LoadAdjacencyGraph reads a graph in the PBBS adjacency format:
// a header line, the vertex count n, the edge count m, n offsets, m targets, and (if weighted) m weights, one per line.
// Weights are used whenever present; an unweighted graph gets weights of 1.
func LoadAdjacencyGraph(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph %s: %w", path, err)
	}
	defer file.Close()

	watch := utils.Watch{}
	watch.Start()
	g, err := ParseAdjacencyGraph(file)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	g.Name = utils.ExtractGraphName(path)
	log.Info().Msg("Loaded " + path + " in (ms) " + utils.V(watch.Elapsed().Milliseconds()))
	return g, nil
}

// ParseAdjacencyGraph is LoadAdjacencyGraph on an arbitrary reader.
func ParseAdjacencyGraph(r io.Reader) (*Graph, error) {
	lines := utils.FastFileLines{Buf: make([]byte, 64*1024)}

	header := bytes.TrimSpace(lines.Scan(r))
	var weightedHeader bool
	switch string(header) {
	case ADJ_HEADER:
	case WEIGHTED_ADJ_HEADER:
		weightedHeader = true
	default:
		return nil, fmt.Errorf("%w: unknown header %q", ErrFormat, header)
	}

	numNodes, err := nextValue(&lines, r)
	if err != nil {
		return nil, fmt.Errorf("%w: vertex count: %v", ErrFormat, err)
	}
	numEdges, err := nextValue(&lines, r)
	if err != nil {
		return nil, fmt.Errorf("%w: edge count: %v", ErrFormat, err)
	}
	if numNodes >= uint64(EMPTY_VAL) {
		return nil, fmt.Errorf("%w: too many vertices %d", ErrFormat, numNodes)
	}
	if numEdges > MAX_EDGES {
		return nil, fmt.Errorf("%w: too many edges %d", ErrFormat, numEdges)
	}

	// Grown as values arrive, so a header that overstates the counts fails at EOF instead of allocating up front.
	g := &Graph{
		Nodes: make([]uint64, 0, utils.Min(numNodes+1, PREALLOC_LIMIT)),
		Edges: make([]Edge, 0, utils.Min(numEdges, PREALLOC_LIMIT)),
	}
	for v := uint64(0); v < numNodes; v++ {
		offset, err := nextValue(&lines, r)
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %v", ErrFormat, v, err)
		}
		if offset > numEdges || (v > 0 && offset < g.Nodes[v-1]) {
			return nil, fmt.Errorf("%w: offset %d out of order: %d", ErrFormat, v, offset)
		}
		g.Nodes = append(g.Nodes, offset)
	}
	g.Nodes = append(g.Nodes, numEdges)

	for e := uint64(0); e < numEdges; e++ {
		target, err := nextValue(&lines, r)
		if err != nil {
			return nil, fmt.Errorf("%w: target %d: %v", ErrFormat, e, err)
		}
		if target >= numNodes {
			return nil, fmt.Errorf("%w: target %d out of range: %d", ErrFormat, e, target)
		}
		g.Edges = append(g.Edges, Edge{Target: uint32(target), Weight: 1})
	}

	// Weights are optional even with the weighted header; if the first one is missing, there are none.
	for e := uint64(0); e < numEdges; e++ {
		weight, err := nextValue(&lines, r)
		if errors.Is(err, io.EOF) && e == 0 {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: weight %d: %v", ErrFormat, e, err)
		}
		if weight > math.MaxUint32 {
			return nil, fmt.Errorf("%w: weight %d too large: %d", ErrFormat, e, weight)
		}
		g.Edges[e].Weight = uint32(weight)
		g.Weighted = true
	}

	if weightedHeader != g.Weighted {
		log.Warn().Msg("WARNING: header says " + string(header) + " but weighted is " + utils.V(g.Weighted))
	}
	return g, nil
}

// Next non-empty line as an integer. Real-valued entries are truncated.
func nextValue(lines *utils.FastFileLines, r io.Reader) (uint64, error) {
	for {
		line := lines.Scan(r)
		if line == nil {
			return 0, io.EOF
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if v, err := strconv.ParseUint(string(line), 10, 64); err == nil {
			return v, nil
		}
		f, err := strconv.ParseFloat(string(line), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxUint64 {
			return 0, fmt.Errorf("not a value: %q", line)
		}
		return uint64(f), nil
	}
}

// WriteAdjacencyGraph writes the graph in the format read by LoadAdjacencyGraph.
func WriteAdjacencyGraph(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	header := ADJ_HEADER
	if g.Weighted {
		header = WEIGHTED_ADJ_HEADER
	}
	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, g.NumNodes())
	fmt.Fprintln(bw, g.NumEdges())
	for v := 0; v < g.NumNodes(); v++ {
		fmt.Fprintln(bw, g.Nodes[v])
	}
	for _, e := range g.Edges {
		fmt.Fprintln(bw, e.Target)
	}
	if g.Weighted {
		for _, e := range g.Edges {
			fmt.Fprintln(bw, e.Weight)
		}
	}
	return bw.Flush()
}

// WriteValues writes one value per line.
func WriteValues(path string, values []uint32) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(file)
	for _, v := range values {
		bw.WriteString(strconv.FormatUint(uint64(v), 10))
		bw.WriteByte('\n')
	}
	if err = bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// ReadValues reads a file written by WriteValues.
func ReadValues(path string) ([]uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var values []uint32
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		v, err := strconv.ParseUint(string(line), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", path, len(values)+1, err)
		}
		values = append(values, uint32(v))
	}
	return values, scanner.Err()
}
