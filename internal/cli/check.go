package cli

import (
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zoobzio/plansql/fixture"
	"github.com/zoobzio/plansql/internal/config"
)

type mismatchView struct {
	Scenario string `json:"scenario"`
	Dialect  string `json:"dialect"`
	Want     string `json:"want"`
	Got      string `json:"got"`
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [fixtures.yaml]",
		Short: "Compare rendered outcomes with a fixture file",
		Long: `Render every scenario of a fixture file for each dialect it names and
compare the result with the recorded text. Exits non-zero on any mismatch.
The fixture path defaults to the configured fixtures file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			logger := loggerFrom(cmd)

			path := cfg.Fixtures
			if len(args) == 1 {
				path = args[0]
			}
			f, err := fixture.Load(path)
			if err != nil {
				return err
			}
			logger.Debug("checking fixtures", slog.String("path", path), slog.Int("scenarios", len(f.Scenarios)))

			mismatches, err := f.Check()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cfg.Output == config.OutputJSON {
				views := make([]mismatchView, 0, len(mismatches))
				for _, m := range mismatches {
					views = append(views, mismatchView{
						Scenario: m.Scenario,
						Dialect:  string(m.Dialect),
						Want:     m.Want.String(),
						Got:      m.Got.String(),
					})
				}
				if err := writeJSON(w, views); err != nil {
					return err
				}
			} else if len(mismatches) > 0 {
				t := newTable(w, "Scenario", "Dialect", "Diff")
				for _, m := range mismatches {
					t.AppendRow(table.Row{m.Scenario, m.Dialect, m.Diff()})
				}
				t.Render()
			} else {
				_, _ = fmt.Fprintf(w, "%s: %d scenarios ok\n", path, len(f.Scenarios))
			}

			if len(mismatches) > 0 {
				return fmt.Errorf("%d rendered outcome(s) differ from %s", len(mismatches), path)
			}
			return nil
		},
	}
}
