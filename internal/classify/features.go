package classify

import (
	"errors"

	"github.com/logstruct/logstruct/internal/deps"
)

// ErrEmptyMatrix is returned when ratios are requested for a matrix with
// no entries.
var ErrEmptyMatrix = errors.New("input matrix is empty")

// Ratios holds the nine normalized frequencies the rules are evaluated
// against. Each value is the share of matrix entries matching one joint
// (temporal, existential) condition, in [0,1]. The nine conditions do
// not cover every combination, so the values need not sum to 1.
type Ratios struct {
	NoneNone               float64 `json:"none_none"`
	NoneImplication        float64 `json:"none_implication"`
	NoneEquivalence        float64 `json:"none_equivalence"`
	NoneNegatedEquivalence float64 `json:"none_negated_equivalence"`
	EventualEquivalence    float64 `json:"eventual_equivalence"`
	EventualImplication    float64 `json:"eventual_implication"`
	EventualAnyExistential float64 `json:"eventual_any_existential"`
	DirectAnyExistential   float64 `json:"direct_any_existential"`
	DirectNone             float64 `json:"direct_none"`
}

// ComputeRatios aggregates the matrix into the nine ratios. Every entry
// increments at most one of the "none" and "direct" counters; eventual
// entries with an existential relation count once in the aggregate and,
// for implication and equivalence, once in the matching breakout. Nand
// and Or entries without a temporal relation are counted nowhere.
func ComputeRatios(matrix deps.Matrix) (Ratios, error) {
	if len(matrix) == 0 {
		return Ratios{}, ErrEmptyMatrix
	}

	var nn, ni, neq, nneq, eeq, ei, eAny, dAny, dn int
	for _, d := range matrix {
		if d.Temporal == nil {
			if d.Existential == nil {
				nn++
				continue
			}
			switch d.Existential.Type {
			case deps.Implication:
				ni++
			case deps.Equivalence:
				neq++
			case deps.NegatedEquivalence:
				nneq++
			}
			continue
		}

		switch d.Temporal.Type {
		case deps.Eventual:
			if d.Existential == nil {
				continue
			}
			eAny++
			switch d.Existential.Type {
			case deps.Equivalence:
				eeq++
			case deps.Implication:
				ei++
			}
		case deps.Direct:
			if d.Existential == nil {
				dn++
			} else {
				dAny++
			}
		}
	}

	total := float64(len(matrix))
	return Ratios{
		NoneNone:               float64(nn) / total,
		NoneImplication:        float64(ni) / total,
		NoneEquivalence:        float64(neq) / total,
		NoneNegatedEquivalence: float64(nneq) / total,
		EventualEquivalence:    float64(eeq) / total,
		EventualImplication:    float64(ei) / total,
		EventualAnyExistential: float64(eAny) / total,
		DirectAnyExistential:   float64(dAny) / total,
		DirectNone:             float64(dn) / total,
	}, nil
}
