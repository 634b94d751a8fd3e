// Package xes parses XES event logs into traces.
//
// Only the structure the miner needs is extracted: each trace becomes the
// ordered list of its events' concept:name attributes. All other XES
// attributes, extensions and classifiers are ignored.
package xes

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Trace is one execution instance of the process: the ordered activity
// names of its events.
type Trace []string

type xesLog struct {
	XMLName xml.Name   `xml:"log"`
	Traces  []xesTrace `xml:"trace"`
}

type xesTrace struct {
	Events []xesEvent `xml:"event"`
}

type xesEvent struct {
	Strings []xesAttribute `xml:"string"`
}

type xesAttribute struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// conceptName is the XES attribute key holding an event's activity name.
const conceptName = "concept:name"

// ParseFile reads and parses the XES log at path.
func ParseFile(path string) ([]Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	defer f.Close()

	traces, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return traces, nil
}

// Parse decodes an XES document into traces. Events without a
// concept:name attribute are skipped; traces without any named event
// come out empty but are kept so trace counts stay faithful to the log.
func Parse(r io.Reader) ([]Trace, error) {
	var log xesLog
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&log); err != nil {
		return nil, fmt.Errorf("invalid XES document: %w", err)
	}

	traces := make([]Trace, 0, len(log.Traces))
	for _, t := range log.Traces {
		trace := make(Trace, 0, len(t.Events))
		for _, e := range t.Events {
			if name, ok := activityName(e); ok {
				trace = append(trace, name)
			}
		}
		traces = append(traces, trace)
	}
	return traces, nil
}

func activityName(e xesEvent) (string, bool) {
	for _, attr := range e.Strings {
		if attr.Key == conceptName {
			return attr.Value, true
		}
	}
	return "", false
}
