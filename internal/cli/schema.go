package cli

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zoobzio/dbml"
	"github.com/zoobzio/plansql"
	"github.com/zoobzio/plansql/fixture"
	"github.com/zoobzio/plansql/internal/config"
)

type columnView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type tableView struct {
	Scenario string       `json:"scenario"`
	Columns  []columnView `json:"columns"`
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [fixtures.yaml]",
		Short: "Show the inferred column types of every scenario",
		Long: `Build every scenario of a fixture file and print the column types
inferred from its literal rows: bigint, varchar or null. These are the types
run uses to normalise query results.
The fixture path defaults to the configured fixtures file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}

			path := cfg.Fixtures
			if len(args) == 1 {
				path = args[0]
			}
			f, err := fixture.Load(path)
			if err != nil {
				return err
			}

			plans := make(map[string]plansql.Node, len(f.Scenarios))
			for _, s := range f.Scenarios {
				plan, err := s.Build()
				if err != nil {
					return err
				}
				plans[s.Name] = plan
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			views := tableViews(plansql.SchemaProject(name, plans))

			if cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			t := newTable(cmd.OutOrStdout(), "Scenario", "Column", "Type")
			for _, v := range views {
				for _, c := range v.Columns {
					t.AppendRow(table.Row{v.Scenario, c.Name, c.Type})
				}
			}
			t.Render()
			return nil
		},
	}
}

// tableViews lists the project's tables by name, columns in source order.
func tableViews(project *dbml.Project) []tableView {
	views := make([]tableView, 0, len(project.Tables))
	for _, tbl := range project.Tables {
		v := tableView{Scenario: tbl.Name, Columns: make([]columnView, 0, len(tbl.Columns))}
		for _, col := range tbl.Columns {
			v.Columns = append(v.Columns, columnView{Name: col.Name, Type: col.Type})
		}
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Scenario < views[j].Scenario })
	return views
}
