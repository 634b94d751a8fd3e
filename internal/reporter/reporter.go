package reporter

import (
	"sort"

	"github.com/logstruct/logstruct/internal/classify"
	"github.com/logstruct/logstruct/internal/deps"
)

// Result bundles everything a reporter may print about one classified log.
type Result struct {
	Log        string
	Traces     int
	Entries    int
	Output     classify.Output
	ShowRatios bool
}

// Reporter defines the interface for presenting classification results
type Reporter interface {
	// Report outputs the classification of one log
	Report(res Result) error

	// ReportMatrix outputs the mined dependency matrix
	ReportMatrix(log string, matrix deps.Matrix) error
}

// sortedPairs returns the matrix keys in deterministic order.
func sortedPairs(matrix deps.Matrix) []deps.Pair {
	pairs := make([]deps.Pair, 0, len(matrix))
	for p := range matrix {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}
