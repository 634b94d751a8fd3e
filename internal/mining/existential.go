package mining

import "github.com/logstruct/logstruct/internal/deps"

// mineExistential decides which co-occurrence relation, if any, holds
// between from and to. Candidate relations are checked strongest first:
//
//	Equivalence        P(to|from) and P(from|to) both reach the threshold
//	Implication        only one conditional reaches it
//	NegatedEquivalence P(exactly one occurs) reaches it
//	Nand               P(not both occur) reaches it
//	Or                 P(at least one occurs) reaches it
//
// Nand and Or are mined for completeness; the classifier does not
// consume them.
func mineExistential(s *traceStats, from, to deps.Activity, threshold float64) *deps.ExistentialDependency {
	total := s.traceCount()
	if total == 0 {
		return nil
	}

	nFrom := s.tracesWith(from)
	nTo := s.tracesWith(to)
	nBoth := s.tracesWithBoth(from, to)
	nEither := nFrom + nTo - nBoth
	nExactlyOne := nEither - nBoth

	forward := nFrom > 0 && float64(nBoth)/float64(nFrom) >= threshold
	backward := nTo > 0 && float64(nBoth)/float64(nTo) >= threshold

	dep := &deps.ExistentialDependency{From: from, To: to}
	switch {
	case forward && backward:
		dep.Type = deps.Equivalence
		dep.Direction = deps.Both
	case forward:
		dep.Type = deps.Implication
		dep.Direction = deps.Forward
	case backward:
		dep.Type = deps.Implication
		dep.Direction = deps.Backward
	case float64(nExactlyOne)/float64(total) >= threshold:
		dep.Type = deps.NegatedEquivalence
		dep.Direction = deps.Both
	case float64(total-nBoth)/float64(total) >= threshold:
		dep.Type = deps.Nand
		dep.Direction = deps.Both
	case float64(nEither)/float64(total) >= threshold:
		dep.Type = deps.Or
		dep.Direction = deps.Both
	default:
		return nil
	}
	return dep
}
