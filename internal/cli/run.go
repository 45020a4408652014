package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zoobzio/plansql/engine"
	"github.com/zoobzio/plansql/fixture"
	"github.com/zoobzio/plansql/internal/config"
)

type reportView struct {
	Scenario string `json:"scenario"`
	Dialect  string `json:"dialect"`
	Status   string `json:"status"`
	SQL      string `json:"sql,omitempty"`
	Diff     string `json:"diff,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newRunCommand() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "run [fixtures.yaml]",
		Short: "Execute fixture scenarios against configured connections",
		Long: `Render every scenario of a fixture file and execute it on each configured
connection, comparing the rows returned with the scenario's result grid.
Connections are configured per dialect under "connections" in plansql.yaml
or through PLANSQL_CONNECTIONS__<DIALECT> environment variables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			logger := loggerFrom(cmd)
			ctx := cmd.Context()

			path := cfg.Fixtures
			if len(args) == 1 {
				path = args[0]
			}
			f, err := fixture.Load(path)
			if err != nil {
				return err
			}

			only, err := parseDialects(names)
			if err != nil {
				return err
			}
			targets, err := cfg.Targets()
			if err != nil {
				return err
			}

			var engines []engine.Engine
			defer func() {
				for _, e := range engines {
					if cerr := e.Close(); cerr != nil {
						logger.Warn("failed to close connection", slog.String("dialect", string(e.Dialect())), slog.Any("error", cerr))
					}
				}
			}()
			for _, t := range targets {
				if len(only) > 0 && !slices.Contains(only, t.Dialect) {
					continue
				}
				e, err := engine.Open(ctx, t.Dialect, t.DSN)
				if err != nil {
					return err
				}
				logger.Debug("connected", slog.String("dialect", string(t.Dialect)))
				engines = append(engines, e)
			}
			if len(engines) == 0 {
				return errors.New("no connections configured")
			}

			runner := engine.NewRunner(engines,
				engine.WithLogger(logger),
				engine.WithParallelism(cfg.Parallelism),
			)
			reports, err := runner.Run(ctx, f)
			if err != nil {
				return err
			}

			if err := writeReports(cmd, cfg, reports); err != nil {
				return err
			}
			if engine.Failed(reports) {
				return fmt.Errorf("%s: scenarios failed", path)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&names, "dialect", "d", nil, "Only run on these dialects (repeatable)")
	_ = cmd.RegisterFlagCompletionFunc("dialect", completeDialects)

	return cmd
}

func writeReports(cmd *cobra.Command, cfg *config.Config, reports []engine.Report) error {
	views := make([]reportView, 0, len(reports))
	for _, r := range reports {
		v := reportView{
			Scenario: r.Scenario,
			Dialect:  string(r.Dialect),
			Status:   string(r.Status),
			SQL:      r.SQL,
			Diff:     r.Diff,
		}
		if r.Err != nil {
			v.Error = r.Err.Error()
		}
		views = append(views, v)
	}

	w := cmd.OutOrStdout()
	if cfg.Output == config.OutputJSON {
		return writeJSON(w, views)
	}
	t := newTable(w, "Scenario", "Dialect", "Status", "Detail")
	for _, v := range views {
		detail := v.Error
		if detail == "" {
			detail = v.Diff
		}
		t.AppendRow(table.Row{v.Scenario, v.Dialect, v.Status, detail})
	}
	t.Render()
	return nil
}
