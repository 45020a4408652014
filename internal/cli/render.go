package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/zoobzio/plansql"
	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/fixture"
	"github.com/zoobzio/plansql/internal/config"
)

func newRenderCommand() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "render <plan.yaml>",
		Short: "Render a plan for one or more dialects",
		Long: `Render a plan file for the given dialects (all when none are given).
Each dialect prints its SQL, or UNSUPPORTED when it cannot express the plan.`,
		Example: `  plansql render plan.yaml --dialect postgres
  plansql render plan.yaml -d mysql -d snowflake -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			logger := loggerFrom(cmd)

			ids, err := parseDialects(names)
			if err != nil {
				return err
			}
			spec, err := fixture.LoadPlan(args[0])
			if err != nil {
				return err
			}
			plan, err := spec.Build()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				ids = dialect.All()
			}
			outcomes, err := plansql.RenderAll(plan, ids...)
			if err != nil {
				return err
			}

			for _, id := range ids {
				if out := outcomes[id]; out.IsUnsupported() {
					logger.Info("plan not expressible", slog.String("dialect", string(id)), slog.String("reason", out.Reason))
				}
			}

			w := cmd.OutOrStdout()
			if cfg.Output == config.OutputJSON {
				view := make(map[string]string, len(outcomes))
				for id, out := range outcomes {
					view[string(id)] = out.String()
				}
				return writeJSON(w, view)
			}
			if len(ids) == 1 {
				_, _ = fmt.Fprintln(w, outcomes[ids[0]].String())
				return nil
			}
			for _, id := range ids {
				_, _ = fmt.Fprintf(w, "-- %s\n%s\n", id, outcomes[id].String())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&names, "dialect", "d", nil, "Dialect to render for (repeatable; default all)")
	_ = cmd.RegisterFlagCompletionFunc("dialect", completeDialects)

	return cmd
}

func parseDialects(names []string) ([]dialect.ID, error) {
	ids := make([]dialect.ID, 0, len(names))
	for _, name := range names {
		id, err := dialect.Parse(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func completeDialects(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ids := dialect.All()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
