package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/plansql"
	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/fixture"
	"golang.org/x/sync/errgroup"
)

// Status is the outcome of running one scenario on one engine.
type Status string

const (
	StatusPass        Status = "pass"
	StatusFail        Status = "fail"
	StatusUnsupported Status = "unsupported"
	StatusError       Status = "error"
)

// Report records the run of one scenario on one engine.
type Report struct {
	Err      error
	Scenario string
	Dialect  dialect.ID
	Status   Status
	SQL      string
	Diff     string
}

// DefaultParallelism bounds concurrent queries when no option overrides it.
const DefaultParallelism = 4

// Runner executes fixture scenarios against a set of engines.
type Runner struct {
	logger      *slog.Logger
	engines     []Engine
	parallelism int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithParallelism bounds the number of concurrent queries.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// NewRunner creates a runner over the given engines.
func NewRunner(engines []Engine, opts ...Option) *Runner {
	r := &Runner{
		engines:     engines,
		logger:      slog.New(slog.DiscardHandler),
		parallelism: DefaultParallelism,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every scenario of the file on every engine. Reports are
// ordered by scenario (file order) then dialect.
func (r *Runner) Run(ctx context.Context, f *fixture.File) ([]Report, error) {
	type job struct {
		scenario *fixture.Scenario
		plan     plansql.Node
		engine   Engine
		order    int
	}

	var jobs []job
	for i, s := range f.Scenarios {
		plan, err := s.Build()
		if err != nil {
			return nil, err
		}
		for _, e := range r.engines {
			jobs = append(jobs, job{scenario: s, plan: plan, engine: e, order: i})
		}
	}

	reports := make([]Report, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, j := range jobs {
		g.Go(func() error {
			reports[i] = r.runOne(gctx, j.scenario, j.plan, j.engine)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	orders := make(map[string]int, len(f.Scenarios))
	for i, s := range f.Scenarios {
		orders[s.Name] = i
	}
	sort.SliceStable(reports, func(a, b int) bool {
		if orders[reports[a].Scenario] != orders[reports[b].Scenario] {
			return orders[reports[a].Scenario] < orders[reports[b].Scenario]
		}
		return reports[a].Dialect < reports[b].Dialect
	})
	return reports, nil
}

func (r *Runner) runOne(ctx context.Context, s *fixture.Scenario, plan plansql.Node, e Engine) Report {
	id := e.Dialect()
	rep := Report{Scenario: s.Name, Dialect: id}
	logger := r.logger.With(slog.String("scenario", s.Name), slog.String("dialect", string(id)))

	out, err := plansql.TryRender(plan, id)
	if err != nil {
		rep.Status, rep.Err = StatusError, err
		logger.Error("render failed", slog.Any("error", err))
		return rep
	}
	if want, ok := s.Expected[id]; ok && !want.Equal(out) {
		rep.Status = StatusFail
		rep.Diff = cmp.Diff(want.String(), out.String())
		logger.Warn("rendered outcome differs from fixture")
		return rep
	}
	if out.IsUnsupported() {
		rep.Status = StatusUnsupported
		logger.Info("plan not expressible", slog.String("reason", out.Reason))
		return rep
	}
	rep.SQL = out.SQL

	logger.Debug("executing", slog.String("sql", out.SQL))
	table, err := e.Query(ctx, out.SQL)
	if err != nil {
		rep.Status, rep.Err = StatusError, err
		logger.Error("query failed", slog.Any("error", err))
		return rep
	}
	if err := Normalize(table, plansql.Schema(plan, s.Name)); err != nil {
		rep.Status, rep.Err = StatusError, fmt.Errorf("%s: %w", id, err)
		logger.Error("result normalisation failed", slog.Any("error", err))
		return rep
	}

	want := s.ExpectedResult()
	got := strings.TrimSpace(table.Grid())
	if want != "" && want != got {
		rep.Status = StatusFail
		rep.Diff = cmp.Diff(want, got)
		logger.Warn("result differs from fixture")
		return rep
	}
	rep.Status = StatusPass
	logger.Debug("scenario passed")
	return rep
}

// Failed reports whether any report failed or errored.
func Failed(reports []Report) bool {
	for _, rep := range reports {
		if rep.Status == StatusFail || rep.Status == StatusError {
			return true
		}
	}
	return false
}
