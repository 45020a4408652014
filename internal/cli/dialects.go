package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/config"
)

type dialectView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Values       string `json:"values"`
	NullOrdering string `json:"null_ordering"`
	DefaultAsc   string `json:"default_asc"`
	DefaultDesc  string `json:"default_desc"`
	Quote        string `json:"quote"`
	Limit        string `json:"limit"`
}

func newDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}

			views := make([]dialectView, 0, len(dialect.All()))
			for _, id := range dialect.All() {
				d := dialect.MustLookup(id)
				views = append(views, dialectView{
					ID:           string(d.ID),
					Name:         d.Name,
					Values:       d.Values.String(),
					NullOrdering: d.NullOrdering.String(),
					DefaultAsc:   string(d.Defaults.Asc),
					DefaultDesc:  string(d.Defaults.Desc),
					Quote:        d.Quote.Open + d.Quote.Close,
					Limit:        d.Limit.String(),
				})
			}

			if cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			t := newTable(cmd.OutOrStdout(), "Dialect", "Name", "Values", "Null ordering", "ASC default", "DESC default", "Quote", "Limit")
			for _, v := range views {
				t.AppendRow(table.Row{v.ID, v.Name, v.Values, v.NullOrdering, v.DefaultAsc, v.DefaultDesc, v.Quote, v.Limit})
			}
			t.Render()
			return nil
		},
	}
}
