package plansql

import (
	"fmt"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/types"
)

// Builder provides a fluent API for constructing plans.
// The first error sticks; later calls are no-ops and Build reports it.
type Builder struct {
	src   *types.ValuesSource
	keys  []types.SortKey
	limit *int
	err   error
}

// Values starts a plan over a literal table with the given columns.
func Values(columns ...string) *Builder {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Builder{src: &types.ValuesSource{Columns: cols}}
}

// Row appends one row. Values may be nil, string, Go integers or Value.
func (b *Builder) Row(values ...any) *Builder {
	if b.err != nil {
		return b
	}
	if len(values) != len(b.src.Columns) {
		b.err = fmt.Errorf("%w: row %d has %d values, want %d",
			types.ErrInvalidPlan, len(b.src.Rows), len(values), len(b.src.Columns))
		return b
	}
	row := make([]types.Value, len(values))
	for i, v := range values {
		val, err := types.ValueOf(v)
		if err != nil {
			b.err = fmt.Errorf("%w: row %d column %q: %w",
				types.ErrInvalidPlan, len(b.src.Rows), b.src.Columns[i], err)
			return b
		}
		row[i] = val
	}
	b.src.Rows = append(b.src.Rows, row)
	return b
}

// Rows appends several rows.
func (b *Builder) Rows(rows ...[]any) *Builder {
	for _, r := range rows {
		b.Row(r...)
	}
	return b
}

// OrderBy appends sort keys.
func (b *Builder) OrderBy(keys ...SortKey) *Builder {
	if b.err != nil {
		return b
	}
	if len(keys) == 0 {
		b.err = fmt.Errorf("%w: OrderBy() requires at least one sort key", types.ErrInvalidPlan)
		return b
	}
	b.keys = append(b.keys, keys...)
	return b
}

// Limit caps the number of rows.
func (b *Builder) Limit(n int) *Builder {
	if b.err != nil {
		return b
	}
	if b.limit != nil {
		b.err = fmt.Errorf("%w: Limit() already set to %d", types.ErrInvalidPlan, *b.limit)
		return b
	}
	b.limit = &n
	return b
}

// Build validates and returns the plan.
func (b *Builder) Build() (Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	// The plan must not observe rows appended after Build.
	src := &types.ValuesSource{
		Columns: append([]string(nil), b.src.Columns...),
		Rows:    append([][]types.Value(nil), b.src.Rows...),
	}
	var node types.Node = src
	if len(b.keys) > 0 {
		node = &types.OrderBy{Input: src, Keys: append([]types.SortKey(nil), b.keys...)}
	}
	if b.limit != nil {
		node = &types.Limit{Input: node, Count: *b.limit}
	}
	if err := node.Validate(); err != nil {
		return nil, err
	}
	return node, nil
}

// MustBuild returns the plan and panics if it is invalid.
func (b *Builder) MustBuild() Node {
	node, err := b.Build()
	if err != nil {
		panic(err)
	}
	return node
}

// Render builds the plan and renders it for a dialect.
func (b *Builder) Render(id dialect.ID) (Outcome, error) {
	node, err := b.Build()
	if err != nil {
		return Outcome{}, err
	}
	return TryRender(node, id)
}
