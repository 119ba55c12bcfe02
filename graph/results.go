package graph

import (
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"

	"github.com/ScottSallinen/mqbench/utils"
)

// CheckResults handles the result options shared by the benchmarks: writing the values out, and comparing them to the
// oracle and to a solution file. All failures are collected.
func (o *GraphOptions) CheckResults(g *Graph, values []uint32) (err error) {
	if o.Output != "" {
		if wErr := WriteValues(o.Output, values); wErr != nil {
			err = multierr.Append(err, wErr)
		} else {
			log.Info().Msg("Wrote values to " + o.Output)
		}
	}
	if o.OracleCompare {
		err = multierr.Append(err, CompareToOracle(g, o.StartNode, values))
	}
	if o.Solution != "" {
		expected, rErr := ReadValues(o.Solution)
		if rErr != nil {
			return multierr.Append(err, rErr)
		}
		if cErr := CompareValues(values, expected); cErr != nil {
			log.Warn().Msg("Solution mismatch with " + o.Solution)
			err = multierr.Append(err, cErr)
		} else {
			log.Info().Msg("Solution matches " + o.Solution)
		}
	}
	return err
}

// Reached counts entries that are not EMPTY_VAL.
func Reached(values []uint32) (count int) {
	for _, v := range values {
		if v != EMPTY_VAL {
			count++
		}
	}
	return count
}

// LogSummary prints reach and the largest finite value.
func LogSummary(name string, values []uint32) {
	maxValue := uint32(0)
	for _, v := range values {
		if v != EMPTY_VAL {
			maxValue = utils.Max(maxValue, v)
		}
	}
	log.Info().Msg(name + ": reached " + utils.V(Reached(values)) + " of " + utils.V(len(values)) + ", max value " + utils.V(maxValue))
}

// DropWeights sets every edge weight to 1.
func (g *Graph) DropWeights() {
	for i := range g.Edges {
		g.Edges[i].Weight = 1
	}
	g.Weighted = false
}
