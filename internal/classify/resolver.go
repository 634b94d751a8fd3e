package classify

import "github.com/logstruct/logstruct/internal/deps"

// Output is the full classification result: the decided category, the
// names of every individually passing rule (for explainability), and
// the ratios the rules were evaluated against.
type Output struct {
	Classification Classification
	MatchedRules   []string
	Ratios         Ratios
}

// Classify reduces the matrix to ratios and resolves them into a
// classification. An empty matrix yields a Failed classification; no
// input ever aborts.
func Classify(matrix deps.Matrix) Output {
	ratios, err := ComputeRatios(matrix)
	if err != nil {
		return Output{Classification: Failure(err.Error())}
	}
	return ClassifyRatios(ratios)
}

// ClassifyRatios resolves a precomputed ratio vector. Tiers apply in
// strict precedence: the unstructured rules override everything, then
// the primary rules, then the secondary rules, then indicator scoring.
func ClassifyRatios(r Ratios) Output {
	out := Output{Ratios: r}

	unstructured := false
	for _, rl := range unstructuredRules {
		if rl.check(r).Passed {
			out.MatchedRules = append(out.MatchedRules, rl.name)
			unstructured = true
		}
	}

	primary := make([]RuleResult, len(primaryRules))
	primaryMatched := make(map[category]bool)
	for i, rl := range primaryRules {
		primary[i] = rl.check(r)
		if primary[i].Passed {
			out.MatchedRules = append(out.MatchedRules, rl.name)
			primaryMatched[rl.category] = true
		}
	}

	secondary := make([]RuleResult, len(secondaryRules))
	secondaryMatched := make(map[category]bool)
	for i, rl := range secondaryRules {
		secondary[i] = rl.check(r)
		if secondary[i].Passed {
			out.MatchedRules = append(out.MatchedRules, rl.name)
			secondaryMatched[rl.category] = true
		}
	}

	if unstructured {
		out.Classification = Of(Unstructured)
		return out
	}

	if c, ok := resolvePrimary(primaryMatched); ok {
		out.Classification = c
		return out
	}

	// Secondary tier decides only when it matched exactly one category.
	if len(secondaryMatched) == 1 {
		for cat := range secondaryMatched {
			out.Classification = cat.classification()
		}
		return out
	}

	out.Classification = resolveByIndicators(primary, secondary)
	return out
}

// resolvePrimary applies the primary-tier merge table. A single matched
// category wins outright; the two adjacent pairs merge into their
// compound categories. {Structured, LooselyStructured}, all three, and
// no match at all produce no result and fall through to later tiers.
func resolvePrimary(matched map[category]bool) (Classification, bool) {
	switch len(matched) {
	case 1:
		for cat := range matched {
			return cat.classification(), true
		}
	case 2:
		if matched[catStructured] && matched[catSemiStructured] {
			return Of(StructuredSemiStructured), true
		}
		if matched[catSemiStructured] && matched[catLooselyStructured] {
			return Of(SemiStructuredLooselyStructured), true
		}
	}
	return Classification{}, false
}

// resolveByIndicators scores each category from the sub-condition
// verdicts already produced by the rule tiers: primary conditions count
// double, the category's secondary rule counts single. The strictly
// highest score wins; ties collapse per the merge table below.
func resolveByIndicators(primary, secondary []RuleResult) Classification {
	scores := map[category]int{}
	for i, rl := range primaryRules {
		scores[rl.category] += 2 * primary[i].trueConditions()
	}
	for i, rl := range secondaryRules {
		scores[rl.category] += secondary[i].trueConditions()
	}

	max := 0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max == 0 {
		return Failure("No category had significant indicators.")
	}

	var top []category
	for _, cat := range []category{catStructured, catSemiStructured, catLooselyStructured} {
		if scores[cat] == max {
			top = append(top, cat)
		}
	}

	switch len(top) {
	case 1:
		return top[0].classification()
	case 2:
		has := map[category]bool{top[0]: true, top[1]: true}
		switch {
		case has[catStructured] && has[catSemiStructured]:
			return Of(StructuredSemiStructured)
		case has[catSemiStructured] && has[catLooselyStructured]:
			return Of(SemiStructuredLooselyStructured)
		default:
			// Structured and LooselyStructured tied: settle on the
			// middle category rather than inventing a compound one.
			return Of(SemiStructured)
		}
	default:
		// All three tied.
		return Of(SemiStructured)
	}
}
