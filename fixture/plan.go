package fixture

import (
	"fmt"
	"os"
	"strings"

	"github.com/zoobzio/plansql"
	"gopkg.in/yaml.v3"
)

// PlanSpec is the YAML form of a plan.
type PlanSpec struct {
	Limit   *int       `yaml:"limit,omitempty"`
	Columns []string   `yaml:"columns"`
	Rows    [][]any    `yaml:"rows"`
	OrderBy []SortSpec `yaml:"order_by,omitempty"`
}

// SortSpec is the YAML form of a sort key.
// Direction defaults to asc; nulls defaults to the builder default for the
// direction.
type SortSpec struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction,omitempty"`
	Nulls     string `yaml:"nulls,omitempty"`
}

// LoadPlan reads a standalone plan file.
func LoadPlan(path string) (PlanSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlanSpec{}, fmt.Errorf("failed to read plan file: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes a standalone plan document.
func ParsePlan(data []byte) (PlanSpec, error) {
	var p PlanSpec
	if err := yaml.Unmarshal(data, &p); err != nil {
		return PlanSpec{}, fmt.Errorf("invalid plan yaml: %w", err)
	}
	return p, nil
}

// Build converts the YAML form into a validated plan.
func (p PlanSpec) Build() (plansql.Node, error) {
	b := plansql.Values(p.Columns...).Rows(p.Rows...)
	if len(p.OrderBy) > 0 {
		keys := make([]plansql.SortKey, 0, len(p.OrderBy))
		for _, s := range p.OrderBy {
			k, err := s.key()
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		}
		b.OrderBy(keys...)
	}
	if p.Limit != nil {
		b.Limit(*p.Limit)
	}
	return b.Build()
}

func (s SortSpec) key() (plansql.SortKey, error) {
	var nulls []plansql.NullPlacement
	switch strings.ToLower(s.Nulls) {
	case "":
	case "first":
		nulls = append(nulls, plansql.NullsFirst)
	case "last":
		nulls = append(nulls, plansql.NullsLast)
	default:
		return plansql.SortKey{}, fmt.Errorf("%w: invalid nulls %q for column %q", plansql.ErrInvalidPlan, s.Nulls, s.Column)
	}
	switch strings.ToLower(s.Direction) {
	case "", "asc":
		return plansql.Asc(s.Column, nulls...), nil
	case "desc":
		return plansql.Desc(s.Column, nulls...), nil
	}
	return plansql.SortKey{}, fmt.Errorf("%w: invalid direction %q for column %q", plansql.ErrInvalidPlan, s.Direction, s.Column)
}
