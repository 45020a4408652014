package types

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan marks a structurally invalid plan.
var ErrInvalidPlan = errors.New("invalid plan")

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// NullPlacement represents where NULLs are requested to sort.
type NullPlacement string

const (
	NullsFirst NullPlacement = "NULLS FIRST"
	NullsLast  NullPlacement = "NULLS LAST"
)

// SortKey is one ORDER BY term.
type SortKey struct {
	Column    string
	Direction Direction
	Nulls     NullPlacement
}

// Node is a query plan node.
// The set of implementations is closed: *ValuesSource, *OrderBy and *Limit.
type Node interface {
	// Source returns the innermost values source.
	Source() *ValuesSource
	// Validate checks the structural invariants of the node and its input.
	Validate() error
	node()
}

// ValuesSource is a literal table: ordered columns and ordered rows.
type ValuesSource struct {
	Columns []string
	Rows    [][]Value
}

// OrderBy sorts a values source.
type OrderBy struct {
	Input *ValuesSource
	Keys  []SortKey
}

// Limit caps the row count of a values source or an ordered source.
type Limit struct {
	Input Node
	Count int
}

func (*ValuesSource) node() {}
func (*OrderBy) node()      {}
func (*Limit) node()        {}

// Source returns the receiver.
func (s *ValuesSource) Source() *ValuesSource { return s }

// Source returns the wrapped source.
func (o *OrderBy) Source() *ValuesSource {
	if o == nil {
		return nil
	}
	return o.Input
}

// Source returns the innermost source.
func (l *Limit) Source() *ValuesSource {
	if l == nil || l.Input == nil {
		return nil
	}
	return l.Input.Source()
}

// Validate checks column uniqueness and constant row arity.
func (s *ValuesSource) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: values source is required", ErrInvalidPlan)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: values source requires at least one column", ErrInvalidPlan)
	}
	if len(s.Rows) == 0 {
		return fmt.Errorf("%w: values source requires at least one row", ErrInvalidPlan)
	}
	seen := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		if c == "" {
			return fmt.Errorf("%w: column name cannot be empty", ErrInvalidPlan)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidPlan, c)
		}
		seen[c] = true
	}
	for i, row := range s.Rows {
		if len(row) != len(s.Columns) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidPlan, i, len(row), len(s.Columns))
		}
	}
	return nil
}

// HasColumn reports whether the source defines the named column.
func (s *ValuesSource) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnKinds returns the union of value kinds observed per column.
func (s *ValuesSource) ColumnKinds() []KindSet {
	kinds := make([]KindSet, len(s.Columns))
	for _, row := range s.Rows {
		for i, v := range row {
			if i < len(kinds) {
				kinds[i] = kinds[i].With(v.Kind())
			}
		}
	}
	return kinds
}

// Validate checks the input and that every key references a source column.
func (o *OrderBy) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: order by is required", ErrInvalidPlan)
	}
	if err := o.Input.Validate(); err != nil {
		return err
	}
	if len(o.Keys) == 0 {
		return fmt.Errorf("%w: ORDER BY requires at least one sort key", ErrInvalidPlan)
	}
	for _, k := range o.Keys {
		if !o.Input.HasColumn(k.Column) {
			return fmt.Errorf("%w: sort key references unknown column %q", ErrInvalidPlan, k.Column)
		}
		switch k.Direction {
		case ASC, DESC:
		default:
			return fmt.Errorf("%w: invalid sort direction %q", ErrInvalidPlan, k.Direction)
		}
		switch k.Nulls {
		case NullsFirst, NullsLast:
		default:
			return fmt.Errorf("%w: invalid null placement %q", ErrInvalidPlan, k.Nulls)
		}
	}
	return nil
}

// Validate checks the count and that the input is an ORDER BY or a source.
func (l *Limit) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: limit is required", ErrInvalidPlan)
	}
	if l.Count < 0 {
		return fmt.Errorf("%w: LIMIT cannot be negative, got %d", ErrInvalidPlan, l.Count)
	}
	switch in := l.Input.(type) {
	case *ValuesSource:
		return in.Validate()
	case *OrderBy:
		return in.Validate()
	case nil:
		return fmt.Errorf("%w: LIMIT requires an input", ErrInvalidPlan)
	default:
		return fmt.Errorf("%w: LIMIT cannot wrap %T", ErrInvalidPlan, in)
	}
}
