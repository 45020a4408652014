// Package fixture loads rendering scenarios and compares them with the renderer.
//
// A fixture file is a YAML mapping of scenario name to scenario. Each
// scenario holds the plan, the expected text per dialect (SQL or the
// UNSUPPORTED sentinel) and the expected result grid:
//
//	default_null_ordering:
//	  plan:
//	    columns: [a, b, c]
//	    rows:
//	      - [1, 2, "A"]
//	      - [null, 5, "BB"]
//	    order_by:
//	      - {column: a, direction: desc, nulls: last}
//	  postgres: "WITH values0 AS (...) SELECT * FROM values0 ORDER BY ..."
//	  mysql: UNSUPPORTED
//	  result: |
//	    +---+---+----+
//	    | a | b | c  |
//	    ...
package fixture

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/zoobzio/plansql"
	"github.com/zoobzio/plansql/dialect"
	"gopkg.in/yaml.v3"
)

// Reserved scenario keys; every other key names a dialect.
const (
	keyPlan   = "plan"
	keyResult = "result"
)

// File is a parsed fixture file. Scenarios keep their file order.
type File struct {
	Path      string
	Scenarios []*Scenario
}

// Scenario is one named plan with its expected outcomes.
type Scenario struct {
	Expected map[dialect.ID]plansql.Outcome
	Name     string
	Result   string
	Plan     PlanSpec
}

// Load reads and parses a fixture file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes fixture YAML.
func Parse(data []byte) (*File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid fixture yaml: %w", err)
	}
	f := &File{}
	if len(doc.Content) == 0 {
		return f, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fixture root must be a mapping, got %s", kindName(root.Kind))
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		s, err := parseScenario(name, root.Content[i+1])
		if err != nil {
			return nil, err
		}
		f.Scenarios = append(f.Scenarios, s)
	}
	return f, nil
}

func parseScenario(name string, node *yaml.Node) (*Scenario, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("scenario %q must be a mapping, got %s", name, kindName(node.Kind))
	}
	s := &Scenario{Name: name, Expected: make(map[dialect.ID]plansql.Outcome)}
	var hasPlan bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		switch key {
		case keyPlan:
			if err := val.Decode(&s.Plan); err != nil {
				return nil, fmt.Errorf("scenario %q: invalid plan: %w", name, err)
			}
			hasPlan = true
		case keyResult:
			s.Result = val.Value
		default:
			id, err := dialect.Parse(key)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: %w", name, err)
			}
			var out plansql.Outcome
			if err := out.UnmarshalText([]byte(val.Value)); err != nil {
				return nil, fmt.Errorf("scenario %q: dialect %s: %w", name, id, err)
			}
			s.Expected[id] = out
		}
	}
	if !hasPlan {
		return nil, fmt.Errorf("scenario %q has no plan", name)
	}
	return s, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}

// Scenario returns the named scenario.
func (f *File) Scenario(name string) (*Scenario, bool) {
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Build returns the scenario's plan.
func (s *Scenario) Build() (plansql.Node, error) {
	node, err := s.Plan.Build()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return node, nil
}

// Dialects returns the dialects the scenario has expectations for, sorted.
func (s *Scenario) Dialects() []dialect.ID {
	ids := make([]dialect.ID, 0, len(s.Expected))
	for id := range s.Expected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ExpectedResult returns the result grid with surrounding whitespace removed.
func (s *Scenario) ExpectedResult() string {
	return strings.TrimSpace(s.Result)
}
