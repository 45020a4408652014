package types

import "fmt"

// UnsupportedSentinel is the text form of an unsupported outcome.
const UnsupportedSentinel = "UNSUPPORTED"

// OutcomeKind distinguishes rendered from unsupported outcomes.
type OutcomeKind int

const (
	Rendered OutcomeKind = iota
	Unsupported
)

func (k OutcomeKind) String() string {
	if k == Unsupported {
		return "unsupported"
	}
	return "rendered"
}

// Outcome is the result of rendering a plan for one dialect.
// An unsupported outcome is data, not an error.
type Outcome struct {
	SQL    string
	Reason string
	Kind   OutcomeKind
}

// RenderedOutcome wraps rendered SQL text.
func RenderedOutcome(sql string) Outcome {
	return Outcome{Kind: Rendered, SQL: sql}
}

// UnsupportedOutcome records why a plan cannot be expressed.
func UnsupportedOutcome(reason string) Outcome {
	return Outcome{Kind: Unsupported, Reason: reason}
}

// IsUnsupported reports whether the outcome is unsupported.
func (o Outcome) IsUnsupported() bool {
	return o.Kind == Unsupported
}

// String returns the SQL text or the unsupported sentinel.
func (o Outcome) String() string {
	if o.Kind == Unsupported {
		return UnsupportedSentinel
	}
	return o.SQL
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The reason of an unsupported outcome is not part of the text form.
func (o *Outcome) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case UnsupportedSentinel:
		*o = Outcome{Kind: Unsupported}
	case "":
		return fmt.Errorf("empty outcome text")
	default:
		*o = RenderedOutcome(s)
	}
	return nil
}

// Equal compares outcomes by their text form.
func (o Outcome) Equal(other Outcome) bool {
	return o.Kind == other.Kind && o.SQL == other.SQL
}
