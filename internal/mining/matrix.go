// Package mining derives a dependency matrix from an event log.
//
// For every distinct pair of activities observed in the log it mines an
// optional temporal (ordering) relation and an optional existential
// (co-occurrence) relation, controlled by two confidence thresholds.
// The result is deterministic: the same traces and thresholds always
// produce the same matrix, regardless of trace order.
package mining

import (
	"sort"

	"github.com/logstruct/logstruct/internal/deps"
	"github.com/logstruct/logstruct/internal/xes"
)

// Progress reports mining progress: how many pairs have been mined out
// of the total. It is called once with done == 0 before the first pair.
type Progress func(done, total int)

// Generate mines the dependency matrix for the given traces. Pairs are
// keyed canonically (lexicographically smaller activity first) so each
// distinct pair appears exactly once; self-pairs are excluded. Relation
// orientation is carried by the Direction fields.
//
// Both thresholds are confidences in [0,1]; callers validate the range
// before mining.
func Generate(traces []xes.Trace, temporalThreshold, existentialThreshold float64) deps.Matrix {
	return GenerateWithProgress(traces, temporalThreshold, existentialThreshold, nil)
}

// GenerateWithProgress is Generate with per-pair progress reporting for
// interactive callers. A nil progress func is allowed.
func GenerateWithProgress(traces []xes.Trace, temporalThreshold, existentialThreshold float64, progress Progress) deps.Matrix {
	stats := collectStats(traces)
	activities := stats.activities()

	total := len(activities) * (len(activities) - 1) / 2
	if progress != nil {
		progress(0, total)
	}

	matrix := make(deps.Matrix)
	done := 0
	for i, from := range activities {
		for _, to := range activities[i+1:] {
			d := &deps.Dependency{From: from, To: to}
			d.Temporal = mineTemporal(stats, from, to, temporalThreshold)
			d.Existential = mineExistential(stats, from, to, existentialThreshold)
			matrix[deps.Pair{From: from, To: to}] = d

			done++
			if progress != nil {
				progress(done, total)
			}
		}
	}
	return matrix
}

// traceStats caches per-activity occurrence data so pair mining does not
// rescan the traces.
type traceStats struct {
	traces []xes.Trace
	// positions[a][i] holds the indices at which a occurs in trace i,
	// absent when a does not occur there.
	positions map[deps.Activity]map[int][]int
}

func collectStats(traces []xes.Trace) *traceStats {
	s := &traceStats{
		traces:    traces,
		positions: make(map[deps.Activity]map[int][]int),
	}
	for i, trace := range traces {
		for pos, act := range trace {
			byTrace, ok := s.positions[act]
			if !ok {
				byTrace = make(map[int][]int)
				s.positions[act] = byTrace
			}
			byTrace[i] = append(byTrace[i], pos)
		}
	}
	return s
}

// activities returns the alphabet in sorted order for deterministic
// iteration.
func (s *traceStats) activities() []deps.Activity {
	acts := make([]deps.Activity, 0, len(s.positions))
	for act := range s.positions {
		acts = append(acts, act)
	}
	sort.Strings(acts)
	return acts
}

// occurrences returns the positions of act in trace i, nil when absent.
func (s *traceStats) occurrences(act deps.Activity, i int) []int {
	return s.positions[act][i]
}

// traceCount returns the number of traces in the log.
func (s *traceStats) traceCount() int {
	return len(s.traces)
}

// tracesWith returns how many traces contain act.
func (s *traceStats) tracesWith(act deps.Activity) int {
	return len(s.positions[act])
}

// tracesWithBoth returns how many traces contain both activities.
func (s *traceStats) tracesWithBoth(a, b deps.Activity) int {
	n := 0
	for i := range s.positions[a] {
		if _, ok := s.positions[b][i]; ok {
			n++
		}
	}
	return n
}
