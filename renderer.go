package plansql

import "github.com/zoobzio/plansql/dialect"

// Renderer renders plans for one dialect.
type Renderer struct {
	dialect dialect.Dialect
}

// NewRenderer creates a renderer bound to a registered dialect.
func NewRenderer(id dialect.ID) (*Renderer, error) {
	d, err := dialect.Lookup(id)
	if err != nil {
		return nil, err
	}
	return &Renderer{dialect: d}, nil
}

// Dialect returns the capabilities the renderer targets.
func (r *Renderer) Dialect() dialect.Dialect {
	return r.dialect
}

// Render converts a plan to an Outcome.
func (r *Renderer) Render(plan Node) (Outcome, error) {
	return RenderDialect(plan, r.dialect)
}
