package fixture

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/plansql"
	"github.com/zoobzio/plansql/dialect"
)

// Mismatch describes a rendered outcome that differs from the fixture.
type Mismatch struct {
	Want     plansql.Outcome
	Got      plansql.Outcome
	Scenario string
	Dialect  dialect.ID
}

// Diff returns a readable diff of the expected and rendered text.
func (m Mismatch) Diff() string {
	return cmp.Diff(m.Want.String(), m.Got.String())
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s/%s: rendered outcome differs from fixture (-want +got):\n%s", m.Scenario, m.Dialect, m.Diff())
}

// Check renders the scenario for every dialect it has expectations for and
// returns the outcomes that differ. A result grid that disagrees with the
// in-memory evaluation of the plan is reported as an error.
func (s *Scenario) Check() ([]Mismatch, error) {
	plan, err := s.Build()
	if err != nil {
		return nil, err
	}
	if want := s.ExpectedResult(); want != "" {
		if got := strings.TrimSpace(Evaluate(plan).Grid()); got != want {
			return nil, fmt.Errorf("scenario %q: result grid does not match plan (-want +got):\n%s",
				s.Name, cmp.Diff(want, got))
		}
	}
	outcomes, err := plansql.RenderAll(plan, s.Dialects()...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	var mismatches []Mismatch
	for _, id := range s.Dialects() {
		want, got := s.Expected[id], outcomes[id]
		if !want.Equal(got) {
			mismatches = append(mismatches, Mismatch{Scenario: s.Name, Dialect: id, Want: want, Got: got})
		}
	}
	return mismatches, nil
}

// Check checks every scenario of the file.
func (f *File) Check() ([]Mismatch, error) {
	var all []Mismatch
	for _, s := range f.Scenarios {
		m, err := s.Check()
		if err != nil {
			return nil, err
		}
		all = append(all, m...)
	}
	return all, nil
}
