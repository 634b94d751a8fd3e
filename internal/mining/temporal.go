package mining

import "github.com/logstruct/logstruct/internal/deps"

// mineTemporal decides whether an ordering relation holds between from
// and to. Over the traces containing both activities it compares their
// first occurrences; when the fraction agreeing on one direction reaches
// the threshold, that direction wins. The relation is Direct only when
// every agreeing trace shows an immediate succession, Eventual otherwise.
//
// Returns nil when the pair never co-occurs or neither direction reaches
// the threshold.
func mineTemporal(s *traceStats, from, to deps.Activity, threshold float64) *deps.TemporalDependency {
	var both, forward, backward int
	forwardDirect := true
	backwardDirect := true

	for i := range s.positions[from] {
		toPos := s.occurrences(to, i)
		if toPos == nil {
			continue
		}
		fromPos := s.occurrences(from, i)
		both++

		switch {
		case fromPos[0] < toPos[0]:
			forward++
			if !hasAdjacent(fromPos, toPos) {
				forwardDirect = false
			}
		case toPos[0] < fromPos[0]:
			backward++
			if !hasAdjacent(toPos, fromPos) {
				backwardDirect = false
			}
		}
	}

	if both == 0 {
		return nil
	}

	total := float64(both)
	dep := &deps.TemporalDependency{From: from, To: to}
	switch {
	case forward > 0 && float64(forward)/total >= threshold:
		dep.Direction = deps.Forward
		dep.Type = deps.Eventual
		if forwardDirect {
			dep.Type = deps.Direct
		}
	case backward > 0 && float64(backward)/total >= threshold:
		dep.Direction = deps.Backward
		dep.Type = deps.Eventual
		if backwardDirect {
			dep.Type = deps.Direct
		}
	default:
		return nil
	}
	return dep
}

// hasAdjacent reports whether any occurrence in second immediately
// follows an occurrence in first. Both slices are ascending.
func hasAdjacent(first, second []int) bool {
	for _, p := range first {
		for _, q := range second {
			if q == p+1 {
				return true
			}
			if q > p+1 {
				break
			}
		}
	}
	return false
}
