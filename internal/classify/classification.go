// Package classify implements the structuredness decision engine: it
// reduces a dependency matrix to nine normalized ratios, evaluates a
// tiered set of threshold rules over them, and resolves the matches into
// a single structuredness category.
package classify

import "fmt"

// Kind enumerates the possible classification outcomes.
type Kind int

const (
	Structured Kind = iota
	SemiStructured
	LooselyStructured
	StructuredSemiStructured
	SemiStructuredLooselyStructured
	Unstructured
	// Failed marks a classification that could not be decided; the
	// Classification carries the reason.
	Failed
)

// Classification is the tagged result of classifying a matrix. Every
// path through the engine produces one, including failure; there is no
// silent default.
type Classification struct {
	Kind    Kind
	Message string // reason, set only when Kind == Failed
}

// Of wraps a decided outcome.
func Of(k Kind) Classification {
	return Classification{Kind: k}
}

// Failure wraps an undecidable classification with its reason.
func Failure(msg string) Classification {
	return Classification{Kind: Failed, Message: msg}
}

func (c Classification) String() string {
	switch c.Kind {
	case Structured:
		return "Structured"
	case SemiStructured:
		return "Semi-Structured"
	case LooselyStructured:
		return "Loosely Structured"
	case StructuredSemiStructured:
		return "Structured / Semi-Structured"
	case SemiStructuredLooselyStructured:
		return "Semi-Structured / Loosely Structured"
	case Unstructured:
		return "Unstructured"
	case Failed:
		return fmt.Sprintf("Error in classification: %s", c.Message)
	default:
		return "unknown"
	}
}
