package render

import (
	"fmt"

	"github.com/zoobzio/plansql/internal/types"
)

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// Reason returns the dialect-independent explanation carried by an
// unsupported outcome.
func (e UnsupportedFeatureError) Reason() string {
	if e.Hint != "" {
		return e.Feature + " " + e.Hint
	}
	return e.Feature + " not expressible on this dialect"
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// newNullOrderingError reports a null placement a DefaultOnly dialect cannot express.
func newNullOrderingError(dialect string, placement types.NullPlacement, dir types.Direction) error {
	return NewUnsupportedFeatureError(dialect,
		"null ordering "+string(placement),
		fmt.Sprintf("not expressible for direction %s on this dialect", dir))
}
