package reporter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/logstruct/logstruct/internal/classify"
	"github.com/logstruct/logstruct/internal/deps"
	"github.com/logstruct/logstruct/internal/ui"
)

// TerminalReporter outputs results to the terminal with styled text
type TerminalReporter struct {
	w io.Writer
	u *ui.UI
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, u: u}
}

// Report outputs the classification to the terminal
func (r *TerminalReporter) Report(res Result) error {
	s := r.u.Styles

	fmt.Fprintln(r.w, s.Header.Render(filepath.Base(res.Log)))
	fmt.Fprintln(r.w, s.Path.Render("  "+res.Log))
	fmt.Fprintln(r.w, s.Subheader.Render(
		fmt.Sprintf("  %d traces, %d activity pairs", res.Traces, res.Entries)))
	fmt.Fprintln(r.w)

	c := res.Output.Classification
	if c.Kind == classify.Failed {
		// Failure is part of the classification domain, not an abort.
		fmt.Fprintf(r.w, "%s %s\n", s.IconFailure, s.Failure.Render(c.String()))
		return nil
	}

	fmt.Fprintf(r.w, "%s Classification: %s\n", s.IconResult, r.styleFor(c.Kind).Render(c.String()))

	if len(res.Output.MatchedRules) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, "Matched rules:")
		for _, name := range res.Output.MatchedRules {
			fmt.Fprintf(r.w, "  %s %s\n", s.IconRule, s.Rule.Render(name))
		}
	} else {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Subheader.Render("No rule passed outright; decided by indicator scoring."))
	}

	if res.ShowRatios {
		r.printRatios(res.Output.Ratios)
	}

	return nil
}

func (r *TerminalReporter) styleFor(k classify.Kind) lipgloss.Style {
	s := r.u.Styles
	switch k {
	case classify.Structured:
		return s.Structured
	case classify.Unstructured:
		return s.Unstructured
	default:
		return s.Mixed
	}
}

func (r *TerminalReporter) printRatios(ratios classify.Ratios) {
	s := r.u.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Ratios:")
	rows := []struct {
		name  string
		value float64
	}{
		{"none / none", ratios.NoneNone},
		{"none / implication", ratios.NoneImplication},
		{"none / equivalence", ratios.NoneEquivalence},
		{"none / negated equivalence", ratios.NoneNegatedEquivalence},
		{"eventual / equivalence", ratios.EventualEquivalence},
		{"eventual / implication", ratios.EventualImplication},
		{"eventual / any existential", ratios.EventualAnyExistential},
		{"direct / any existential", ratios.DirectAnyExistential},
		{"direct / none", ratios.DirectNone},
	}
	for _, row := range rows {
		fmt.Fprintf(r.w, "  %-28s %s\n", row.name, s.Value.Render(fmt.Sprintf("%.4f", row.value)))
	}
}

// ReportMatrix outputs the mined matrix to the terminal
func (r *TerminalReporter) ReportMatrix(log string, matrix deps.Matrix) error {
	s := r.u.Styles

	fmt.Fprintln(r.w, s.Header.Render(filepath.Base(log)))
	fmt.Fprintln(r.w, s.Path.Render("  "+log))
	fmt.Fprintln(r.w, s.Subheader.Render(fmt.Sprintf("  %d activity pairs", len(matrix))))
	fmt.Fprintln(r.w)

	for _, p := range sortedPairs(matrix) {
		d := matrix[p]
		fmt.Fprintf(r.w, "%s\n", s.Rule.Render(p.String()))
		if d.Temporal == nil && d.Existential == nil {
			fmt.Fprintln(r.w, s.Subheader.Render("    no relation"))
			continue
		}
		if d.Temporal != nil {
			fmt.Fprintf(r.w, "    temporal:    %s %s\n",
				d.Temporal.Type, d.Temporal.Direction)
		}
		if d.Existential != nil {
			fmt.Fprintf(r.w, "    existential: %s %s\n",
				d.Existential.Type, d.Existential.Direction)
		}
	}

	return nil
}
