package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logstruct/logstruct/internal/classify"
	"github.com/logstruct/logstruct/internal/ui"
)

func newTestReporter(w *bytes.Buffer) *TerminalReporter {
	var out, errOut bytes.Buffer
	u := ui.New(&out, &errOut, "terminal")
	return NewTerminalReporter(w, u)
}

func TestTerminalReport(t *testing.T) {
	var w bytes.Buffer
	r := newTestReporter(&w)

	err := r.Report(Result{
		Log:     "/data/logs/order.xes",
		Traces:  4,
		Entries: 6,
		Output: classify.Output{
			Classification: classify.Of(classify.Structured),
			MatchedRules:   []string{"S1"},
		},
	})
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	got := w.String()
	wants := []string{
		"order.xes",
		"/data/logs/order.xes",
		"4 traces, 6 activity pairs",
		"Classification: Structured",
		"S1",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTerminalReportFailure(t *testing.T) {
	var w bytes.Buffer
	r := newTestReporter(&w)

	err := r.Report(Result{
		Log:    "/data/logs/empty.xes",
		Output: classify.Output{Classification: classify.Failure("input matrix is empty")},
	})
	if err != nil {
		t.Fatalf("Report() error = %v, failure output must not abort", err)
	}
	if got := w.String(); !strings.Contains(got, "Error in classification: input matrix is empty") {
		t.Errorf("output missing failure message:\n%s", got)
	}
}
