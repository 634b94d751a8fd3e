// Package deps defines the dependency model shared by the mining and
// classification layers: temporal and existential relations between
// ordered pairs of activities, and the matrix that collects them.
package deps

import "fmt"

// Activity is the name of a task in the process, unique per distinct label.
type Activity = string

// TemporalType distinguishes immediate from non-immediate succession.
type TemporalType int

const (
	// Direct means the pair succeeds immediately in the reduced order.
	Direct TemporalType = iota
	// Eventual means the pair succeeds non-immediately.
	Eventual
)

func (t TemporalType) String() string {
	switch t {
	case Direct:
		return "direct"
	case Eventual:
		return "eventual"
	default:
		return "unknown"
	}
}

// ExistentialType describes a presence/absence correlation between two
// activities within a trace.
type ExistentialType int

const (
	// Implication: occurrence of one activity implies the other.
	Implication ExistentialType = iota
	// Equivalence: both occur or both are absent.
	Equivalence
	// NegatedEquivalence: exactly one of the two occurs.
	NegatedEquivalence
	// Nand: the two never occur together.
	Nand
	// Or: at least one of the two occurs.
	Or
)

func (e ExistentialType) String() string {
	switch e {
	case Implication:
		return "implication"
	case Equivalence:
		return "equivalence"
	case NegatedEquivalence:
		return "negated-equivalence"
	case Nand:
		return "nand"
	case Or:
		return "or"
	default:
		return "unknown"
	}
}

// Direction orients a dependency relative to the (From, To) pair.
type Direction int

const (
	Forward Direction = iota
	Backward
	Both
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// TemporalDependency is a mined ordering relation between two activities.
type TemporalDependency struct {
	From      Activity
	To        Activity
	Type      TemporalType
	Direction Direction
}

// ExistentialDependency is a mined co-occurrence relation between two
// activities.
type ExistentialDependency struct {
	From      Activity
	To        Activity
	Type      ExistentialType
	Direction Direction
}

// Dependency holds everything mined for one ordered activity pair. Either
// relation may be nil; both nil means nothing beyond co-occurrence was
// detected.
type Dependency struct {
	From        Activity
	To          Activity
	Temporal    *TemporalDependency
	Existential *ExistentialDependency
}

// Pair is a matrix key: an ordered pair of distinct activities.
type Pair struct {
	From Activity
	To   Activity
}

func (p Pair) String() string {
	return fmt.Sprintf("%s -> %s", p.From, p.To)
}

// Matrix maps each ordered, distinct activity pair to its mined
// dependency. Key iteration order carries no meaning.
type Matrix map[Pair]*Dependency
