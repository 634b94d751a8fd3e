package classify

// RuleResult is the outcome of evaluating one rule: the overall verdict
// and the ordered verdicts of its individual conditions. The fallback
// scorer reuses the condition verdicts so both stages share one
// evaluation of the thresholds.
type RuleResult struct {
	Passed     bool
	Conditions []bool
}

func allOf(conditions ...bool) RuleResult {
	passed := true
	for _, c := range conditions {
		if !c {
			passed = false
			break
		}
	}
	return RuleResult{Passed: passed, Conditions: conditions}
}

// category is the top-level structuredness class a rule argues for.
type category int

const (
	catStructured category = iota
	catSemiStructured
	catLooselyStructured
)

func (c category) classification() Classification {
	switch c {
	case catStructured:
		return Of(Structured)
	case catSemiStructured:
		return Of(SemiStructured)
	default:
		return Of(LooselyStructured)
	}
}

type rule struct {
	name     string
	category category
	check    func(Ratios) RuleResult
}

// unstructuredRules short-circuit the whole decision: either passing
// makes the log Unstructured regardless of every other feature.
var unstructuredRules = []struct {
	name  string
	check func(Ratios) RuleResult
}{
	{"U1", func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone > 0.80,
			r.EventualAnyExistential < 0.10,
			r.DirectAnyExistential < 0.10,
		)
	}},
	{"U2", func(r Ratios) RuleResult {
		return allOf(r.NoneEquivalence > 0.80)
	}},
}

// primaryRules grant direct category membership when they pass.
var primaryRules = []rule{
	{"S1", catStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone < 0.05,
			r.NoneImplication < 0.10,
			r.EventualEquivalence > 0.10,
			r.EventualImplication > 0.40,
		)
	}},
	{"S2", catStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone < 0.05,
			r.NoneImplication <= 0.15,
			r.EventualEquivalence >= 0.10,
			r.EventualImplication > 0.30,
		)
	}},
	{"S3", catStructured, func(r Ratios) RuleResult {
		return allOf(r.DirectNone > 0.50)
	}},
	{"SS1", catSemiStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone < 0.35,
			r.NoneImplication > 0.30,
			r.EventualEquivalence < 0.05,
			r.EventualImplication < 0.20,
		)
	}},
	{"SS2", catSemiStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone < 0.25,
			r.NoneImplication > 0.01,
			r.EventualEquivalence > 0.10,
			r.EventualImplication < 0.40,
		)
	}},
	{"LS1", catLooselyStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone > 0.20,
			r.NoneImplication < 0.35,
			r.EventualEquivalence < 0.10,
			r.EventualImplication < 0.30,
		)
	}},
	{"LS2", catLooselyStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone > 0.50,
			r.NoneImplication < 0.10,
			r.EventualEquivalence < 0.05,
			r.EventualImplication < 0.25,
		)
	}},
}

// secondaryRules act as backups: one per category, consulted only when
// the primary tier does not decide uniquely.
var secondaryRules = []rule{
	{"BS1", catStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone < 0.10,
			r.NoneNegatedEquivalence > 0.50,
			r.EventualImplication > 0.60,
		)
	}},
	{"BS2", catSemiStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone < 0.20,
			r.NoneImplication > 0.40,
		)
	}},
	{"BL1", catLooselyStructured, func(r Ratios) RuleResult {
		return allOf(
			r.NoneNone > 0.60,
			r.NoneImplication < 0.30,
		)
	}},
}

func (res RuleResult) trueConditions() int {
	n := 0
	for _, c := range res.Conditions {
		if c {
			n++
		}
	}
	return n
}
