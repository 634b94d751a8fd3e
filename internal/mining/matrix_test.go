package mining

import (
	"reflect"
	"testing"

	"github.com/logstruct/logstruct/internal/deps"
	"github.com/logstruct/logstruct/internal/xes"
)

func pair(from, to string) deps.Pair {
	return deps.Pair{From: from, To: to}
}

func TestGenerateExcludesSelfPairs(t *testing.T) {
	traces := []xes.Trace{{"a", "a", "b"}}
	matrix := Generate(traces, 1.0, 1.0)

	if _, ok := matrix[pair("a", "a")]; ok {
		t.Error("matrix contains self-pair (a, a)")
	}
	if _, ok := matrix[pair("b", "b")]; ok {
		t.Error("matrix contains self-pair (b, b)")
	}
	if _, ok := matrix[pair("a", "b")]; !ok {
		t.Error("matrix missing pair (a, b)")
	}
}

func TestGenerateCanonicalKeys(t *testing.T) {
	traces := []xes.Trace{{"b", "a"}}
	matrix := Generate(traces, 1.0, 1.0)

	if len(matrix) != 1 {
		t.Fatalf("matrix size = %d, want 1", len(matrix))
	}
	d, ok := matrix[pair("a", "b")]
	if !ok {
		t.Fatal("matrix missing canonical pair (a, b)")
	}
	// b precedes a, so the relation points backward.
	if d.Temporal == nil || d.Temporal.Direction != deps.Backward {
		t.Errorf("Temporal = %+v, want backward relation", d.Temporal)
	}
}

func TestGenerateTemporalRelations(t *testing.T) {
	tests := []struct {
		name      string
		traces    []xes.Trace
		pair      deps.Pair
		threshold float64
		wantType  deps.TemporalType
		wantDir   deps.Direction
		wantNil   bool
	}{
		{
			name:     "adjacent in every trace is direct",
			traces:   []xes.Trace{{"a", "b", "c"}, {"a", "b"}},
			pair:     pair("a", "b"),
			wantType: deps.Direct,
			wantDir:  deps.Forward,
		},
		{
			name:     "gap in any trace is eventual",
			traces:   []xes.Trace{{"a", "b"}, {"a", "x", "b"}},
			pair:     pair("a", "b"),
			wantType: deps.Eventual,
			wantDir:  deps.Forward,
		},
		{
			name:     "never adjacent is eventual",
			traces:   []xes.Trace{{"a", "x", "c"}},
			pair:     pair("a", "c"),
			wantType: deps.Eventual,
			wantDir:  deps.Forward,
		},
		{
			name:    "conflicting order below threshold",
			traces:  []xes.Trace{{"a", "b"}, {"b", "a"}},
			pair:    pair("a", "b"),
			wantNil: true,
		},
		{
			name:      "conflicting order above lowered threshold",
			traces:    []xes.Trace{{"a", "b"}, {"a", "b"}, {"b", "a"}},
			pair:      pair("a", "b"),
			threshold: 0.6,
			wantType:  deps.Direct,
			wantDir:   deps.Forward,
		},
		{
			name:    "no co-occurrence",
			traces:  []xes.Trace{{"a"}, {"b"}},
			pair:    pair("a", "b"),
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threshold := tt.threshold
			if threshold == 0 {
				threshold = 1.0
			}
			matrix := Generate(tt.traces, threshold, 1.0)
			d, ok := matrix[tt.pair]
			if !ok {
				t.Fatalf("matrix missing pair %v", tt.pair)
			}
			if tt.wantNil {
				if d.Temporal != nil {
					t.Errorf("Temporal = %+v, want nil", d.Temporal)
				}
				return
			}
			if d.Temporal == nil {
				t.Fatal("Temporal = nil, want relation")
			}
			if d.Temporal.Type != tt.wantType || d.Temporal.Direction != tt.wantDir {
				t.Errorf("Temporal = %v %v, want %v %v",
					d.Temporal.Type, d.Temporal.Direction, tt.wantType, tt.wantDir)
			}
		})
	}
}

func TestGenerateExistentialRelations(t *testing.T) {
	tests := []struct {
		name     string
		traces   []xes.Trace
		pair     deps.Pair
		wantType deps.ExistentialType
		wantDir  deps.Direction
		wantNil  bool
	}{
		{
			name:     "always together is equivalence",
			traces:   []xes.Trace{{"a", "b"}, {"b", "a"}, {"c"}},
			pair:     pair("a", "b"),
			wantType: deps.Equivalence,
			wantDir:  deps.Both,
		},
		{
			name:     "one-way presence is implication",
			traces:   []xes.Trace{{"a", "b"}, {"a"}},
			pair:     pair("a", "b"),
			wantType: deps.Implication,
			wantDir:  deps.Backward,
		},
		{
			name:     "exactly one occurs is negated equivalence",
			traces:   []xes.Trace{{"a"}, {"b"}},
			pair:     pair("a", "b"),
			wantType: deps.NegatedEquivalence,
			wantDir:  deps.Both,
		},
		{
			name:     "never together but not exclusive is nand",
			traces:   []xes.Trace{{"a"}, {"b"}, {"c"}},
			pair:     pair("a", "b"),
			wantType: deps.Nand,
			wantDir:  deps.Both,
		},
		{
			name:     "at least one always present is or",
			traces:   []xes.Trace{{"a", "b"}, {"a"}, {"b"}},
			pair:     pair("a", "b"),
			wantType: deps.Or,
			wantDir:  deps.Both,
		},
		{
			name:    "weak correlation yields nothing",
			traces:  []xes.Trace{{"a", "b"}, {"a"}, {"b"}, {"c"}},
			pair:    pair("a", "b"),
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix := Generate(tt.traces, 1.0, 1.0)
			d, ok := matrix[tt.pair]
			if !ok {
				t.Fatalf("matrix missing pair %v", tt.pair)
			}
			if tt.wantNil {
				if d.Existential != nil {
					t.Errorf("Existential = %+v, want nil", d.Existential)
				}
				return
			}
			if d.Existential == nil {
				t.Fatal("Existential = nil, want relation")
			}
			if d.Existential.Type != tt.wantType || d.Existential.Direction != tt.wantDir {
				t.Errorf("Existential = %v %v, want %v %v",
					d.Existential.Type, d.Existential.Direction, tt.wantType, tt.wantDir)
			}
		})
	}
}

func TestGenerateTraceOrderIndependent(t *testing.T) {
	traces := []xes.Trace{
		{"a", "b", "c"},
		{"a", "c"},
		{"b", "d"},
		{"d", "a", "b"},
	}
	reversed := make([]xes.Trace, len(traces))
	for i, tr := range traces {
		reversed[len(traces)-1-i] = tr
	}

	first := Generate(traces, 1.0, 1.0)
	second := Generate(reversed, 1.0, 1.0)
	if !reflect.DeepEqual(first, second) {
		t.Error("matrix depends on trace order")
	}
}

func TestGenerateWithProgress(t *testing.T) {
	traces := []xes.Trace{{"a", "b", "c"}, {"a", "c", "b"}}

	var calls []int
	var total int
	matrix := GenerateWithProgress(traces, 1.0, 1.0, func(done, n int) {
		calls = append(calls, done)
		total = n
	})

	// three activities yield three unordered pairs
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(matrix) != total {
		t.Errorf("len(matrix) = %d, want %d", len(matrix), total)
	}
	if len(calls) == 0 || calls[0] != 0 {
		t.Fatalf("first call = %v, want initial done == 0", calls)
	}
	if calls[len(calls)-1] != total {
		t.Errorf("final done = %d, want %d", calls[len(calls)-1], total)
	}
	for i := 1; i < len(calls); i++ {
		if calls[i] != calls[i-1]+1 {
			t.Fatalf("progress not monotonic: %v", calls)
		}
	}

	if !reflect.DeepEqual(matrix, Generate(traces, 1.0, 1.0)) {
		t.Error("GenerateWithProgress result differs from Generate")
	}
}

func TestGenerateWithProgressNilCallback(t *testing.T) {
	traces := []xes.Trace{{"a", "b"}}
	matrix := GenerateWithProgress(traces, 1.0, 1.0, nil)
	if len(matrix) != 1 {
		t.Fatalf("len(matrix) = %d, want 1", len(matrix))
	}
}
