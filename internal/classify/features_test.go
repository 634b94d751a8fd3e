package classify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/logstruct/logstruct/internal/deps"
)

// buildMatrix creates a synthetic matrix from entry counts, ordered:
// none_none, none_implication, none_equivalence, none_negated_equivalence,
// direct_none, direct_implication, direct_equivalence,
// eventual_none, eventual_implication, eventual_equivalence.
func buildMatrix(counts [10]int) deps.Matrix {
	type shape struct {
		temporal    *deps.TemporalType
		existential *deps.ExistentialType
	}
	temporal := func(t deps.TemporalType) *deps.TemporalType { return &t }
	existential := func(e deps.ExistentialType) *deps.ExistentialType { return &e }

	shapes := [10]shape{
		{nil, nil},
		{nil, existential(deps.Implication)},
		{nil, existential(deps.Equivalence)},
		{nil, existential(deps.NegatedEquivalence)},
		{temporal(deps.Direct), nil},
		{temporal(deps.Direct), existential(deps.Implication)},
		{temporal(deps.Direct), existential(deps.Equivalence)},
		{temporal(deps.Eventual), nil},
		{temporal(deps.Eventual), existential(deps.Implication)},
		{temporal(deps.Eventual), existential(deps.Equivalence)},
	}

	matrix := make(deps.Matrix)
	n := 0
	for i, count := range counts {
		for j := 0; j < count; j++ {
			from := fmt.Sprintf("A%d", n)
			to := fmt.Sprintf("B%d", n)
			n++

			d := &deps.Dependency{From: from, To: to}
			if shapes[i].temporal != nil {
				d.Temporal = &deps.TemporalDependency{
					From: from, To: to,
					Type:      *shapes[i].temporal,
					Direction: deps.Forward,
				}
			}
			if shapes[i].existential != nil {
				dir := deps.Both
				if *shapes[i].existential == deps.Implication {
					dir = deps.Forward
				}
				d.Existential = &deps.ExistentialDependency{
					From: from, To: to,
					Type:      *shapes[i].existential,
					Direction: dir,
				}
			}
			matrix[deps.Pair{From: from, To: to}] = d
		}
	}
	return matrix
}

func TestComputeRatiosEmptyMatrix(t *testing.T) {
	_, err := ComputeRatios(deps.Matrix{})
	if !errors.Is(err, ErrEmptyMatrix) {
		t.Errorf("ComputeRatios(empty) error = %v, want ErrEmptyMatrix", err)
	}
}

func TestComputeRatiosCounting(t *testing.T) {
	matrix := buildMatrix([10]int{10, 5, 5, 10, 20, 5, 5, 10, 20, 10})
	ratios, err := ComputeRatios(matrix)
	if err != nil {
		t.Fatalf("ComputeRatios() error = %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"NoneNone", ratios.NoneNone, 0.10},
		{"NoneImplication", ratios.NoneImplication, 0.05},
		{"NoneEquivalence", ratios.NoneEquivalence, 0.05},
		{"NoneNegatedEquivalence", ratios.NoneNegatedEquivalence, 0.10},
		{"DirectNone", ratios.DirectNone, 0.20},
		{"DirectAnyExistential", ratios.DirectAnyExistential, 0.10},
		{"EventualImplication", ratios.EventualImplication, 0.20},
		{"EventualEquivalence", ratios.EventualEquivalence, 0.10},
		{"EventualAnyExistential", ratios.EventualAnyExistential, 0.30},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

// Nand and Or entries without a temporal relation belong to none of the
// nine counters, but still contribute to the entry total.
func TestComputeRatiosNandOrUncounted(t *testing.T) {
	matrix := buildMatrix([10]int{50, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	n := len(matrix)
	for i, typ := range []deps.ExistentialType{deps.Nand, deps.Or} {
		from := fmt.Sprintf("N%d", i)
		to := fmt.Sprintf("M%d", i)
		matrix[deps.Pair{From: from, To: to}] = &deps.Dependency{
			From: from, To: to,
			Existential: &deps.ExistentialDependency{
				From: from, To: to, Type: typ, Direction: deps.Both,
			},
		}
	}
	if len(matrix) != n+2 {
		t.Fatalf("matrix size = %d, want %d", len(matrix), n+2)
	}

	ratios, err := ComputeRatios(matrix)
	if err != nil {
		t.Fatalf("ComputeRatios() error = %v", err)
	}
	want := 50.0 / 52.0
	if ratios.NoneNone != want {
		t.Errorf("NoneNone = %v, want %v", ratios.NoneNone, want)
	}
	sum := ratios.NoneNone + ratios.NoneImplication + ratios.NoneEquivalence +
		ratios.NoneNegatedEquivalence + ratios.EventualEquivalence +
		ratios.EventualImplication + ratios.EventualAnyExistential +
		ratios.DirectAnyExistential + ratios.DirectNone
	if sum >= 1.0 {
		t.Errorf("counter sum = %v, want < 1.0 (nand/or uncounted)", sum)
	}
}

func TestComputeRatiosRange(t *testing.T) {
	vectors := [][10]int{
		{100, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 100},
		{10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	for _, counts := range vectors {
		ratios, err := ComputeRatios(buildMatrix(counts))
		if err != nil {
			t.Fatalf("ComputeRatios(%v) error = %v", counts, err)
		}
		for name, v := range map[string]float64{
			"NoneNone":               ratios.NoneNone,
			"NoneImplication":        ratios.NoneImplication,
			"NoneEquivalence":        ratios.NoneEquivalence,
			"NoneNegatedEquivalence": ratios.NoneNegatedEquivalence,
			"EventualEquivalence":    ratios.EventualEquivalence,
			"EventualImplication":    ratios.EventualImplication,
			"EventualAnyExistential": ratios.EventualAnyExistential,
			"DirectAnyExistential":   ratios.DirectAnyExistential,
			"DirectNone":             ratios.DirectNone,
		} {
			if v < 0 || v > 1 {
				t.Errorf("counts %v: %s = %v, want in [0,1]", counts, name, v)
			}
		}
	}
}
