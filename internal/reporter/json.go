package reporter

import (
	"encoding/json"
	"io"

	"github.com/logstruct/logstruct/internal/classify"
	"github.com/logstruct/logstruct/internal/deps"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format for a classification
type JSONOutput struct {
	Log            string           `json:"log"`
	Traces         int              `json:"traces"`
	Entries        int              `json:"entries"`
	Classification string           `json:"classification"`
	Error          string           `json:"error,omitempty"`
	MatchedRules   []string         `json:"matchedRules"`
	Ratios         *classify.Ratios `json:"ratios,omitempty"`
}

// Report outputs the classification as JSON
func (r *JSONReporter) Report(res Result) error {
	output := JSONOutput{
		Log:            res.Log,
		Traces:         res.Traces,
		Entries:        res.Entries,
		Classification: res.Output.Classification.String(),
		MatchedRules:   res.Output.MatchedRules,
	}
	if res.Output.Classification.Kind == classify.Failed {
		output.Classification = ""
		output.Error = res.Output.Classification.Message
	}
	if output.MatchedRules == nil {
		output.MatchedRules = []string{}
	}
	if res.ShowRatios {
		ratios := res.Output.Ratios
		output.Ratios = &ratios
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// JSONMatrixEntry represents one dependency in the matrix dump
type JSONMatrixEntry struct {
	From        string        `json:"from"`
	To          string        `json:"to"`
	Temporal    *JSONRelation `json:"temporal,omitempty"`
	Existential *JSONRelation `json:"existential,omitempty"`
}

// JSONRelation represents a mined relation in JSON form
type JSONRelation struct {
	Type      string `json:"type"`
	Direction string `json:"direction"`
}

// JSONMatrix represents the matrix dump output format
type JSONMatrix struct {
	Log     string            `json:"log"`
	Entries []JSONMatrixEntry `json:"entries"`
}

// ReportMatrix outputs the mined matrix as JSON
func (r *JSONReporter) ReportMatrix(log string, matrix deps.Matrix) error {
	output := JSONMatrix{
		Log:     log,
		Entries: make([]JSONMatrixEntry, 0, len(matrix)),
	}

	for _, p := range sortedPairs(matrix) {
		d := matrix[p]
		entry := JSONMatrixEntry{From: d.From, To: d.To}
		if d.Temporal != nil {
			entry.Temporal = &JSONRelation{
				Type:      d.Temporal.Type.String(),
				Direction: d.Temporal.Direction.String(),
			}
		}
		if d.Existential != nil {
			entry.Existential = &JSONRelation{
				Type:      d.Existential.Type.String(),
				Direction: d.Existential.Direction.String(),
			}
		}
		output.Entries = append(output.Entries, entry)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
