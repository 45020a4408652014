package plansql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/render"
	"github.com/zoobzio/plansql/internal/types"
	"golang.org/x/sync/errgroup"
)

// CTEName is the name of the common table expression hosting the source.
const CTEName = "values0"

// Render renders a plan for a dialect.
// Unknown dialects and invalid plans are configuration defects and panic;
// use TryRender to receive them as errors.
func Render(plan Node, id dialect.ID) Outcome {
	out, err := TryRender(plan, id)
	if err != nil {
		panic(err)
	}
	return out
}

// TryRender renders a plan for a dialect, returning configuration defects
// as errors. An inexpressible plan is reported as an Unsupported outcome
// with a nil error.
func TryRender(plan Node, id dialect.ID) (Outcome, error) {
	d, err := dialect.Lookup(id)
	if err != nil {
		return Outcome{}, err
	}
	return RenderDialect(plan, d)
}

// RenderDialect renders a plan for an explicit capability description.
func RenderDialect(plan Node, d dialect.Dialect) (Outcome, error) {
	if plan == nil {
		return Outcome{}, fmt.Errorf("%w: plan is required", types.ErrInvalidPlan)
	}
	if err := plan.Validate(); err != nil {
		return Outcome{}, err
	}

	var keys []types.SortKey
	var limit *int
	switch n := plan.(type) {
	case *types.ValuesSource:
	case *types.OrderBy:
		keys = n.Keys
	case *types.Limit:
		limit = &n.Count
		if ob, ok := n.Input.(*types.OrderBy); ok {
			keys = ob.Keys
		}
	default:
		return Outcome{}, fmt.Errorf("%w: unsupported node %T", types.ErrInvalidPlan, plan)
	}

	source := render.Values(plan.Source(), d)

	var order string
	if len(keys) > 0 {
		var err error
		order, err = render.OrderBy(keys, d)
		if err != nil {
			var uf render.UnsupportedFeatureError
			if errors.As(err, &uf) {
				return types.UnsupportedOutcome(uf.Reason()), nil
			}
			return Outcome{}, err
		}
	}

	var prefix, suffix string
	if limit != nil {
		prefix, suffix = render.Limit(*limit, d)
	}

	var sql strings.Builder
	sql.WriteString("WITH ")
	sql.WriteString(CTEName)
	sql.WriteString(" AS (")
	sql.WriteString(source)
	sql.WriteString(") SELECT ")
	sql.WriteString(prefix)
	sql.WriteString("* FROM ")
	sql.WriteString(CTEName)
	if order != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(order)
	}
	sql.WriteString(suffix)

	return types.RenderedOutcome(sql.String()), nil
}

// RenderAll renders one plan for several dialects concurrently.
// With no identifiers every registered dialect is rendered.
func RenderAll(plan Node, ids ...dialect.ID) (map[dialect.ID]Outcome, error) {
	if len(ids) == 0 {
		ids = dialect.All()
	}
	outcomes := make([]Outcome, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			out, err := TryRender(plan, id)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result := make(map[dialect.ID]Outcome, len(ids))
	for i, id := range ids {
		result[id] = outcomes[i]
	}
	return result, nil
}
