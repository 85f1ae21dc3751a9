package simulator

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ringlab/ring"
	"github.com/ringlab/ring/benchmarks/stress/internal/config"
	"github.com/ringlab/ring/benchmarks/stress/internal/report/simulation"
	"github.com/ringlab/ring/benchmarks/stress/internal/report/table"
	"github.com/ringlab/ring/plugin/pslog"
	"github.com/ringlab/ring/ringtest"
	"github.com/ringlab/ring/stats"
)

var ErrDiverged = errors.New("at least one simulation diverged")

func newSubject(name string, recorder stats.Recorder) (ringtest.Subject[int], error) {
	switch name {
	case config.RingSubject:
		d, err := ring.New[int](&ring.Options{StatsRecorder: recorder})
		if err != nil {
			return nil, err
		}
		return ringtest.NewRing(d), nil
	case config.GammazeroSubject:
		return ringtest.NewGammazero[int](), nil
	case config.SliceSubject:
		return ringtest.NewSlice[int](), nil
	default:
		return nil, fmt.Errorf("not valid subject name: %s", name)
	}
}

type Simulator struct {
	cfg    config.Config
	log    *slog.Logger
	out    io.Writer
	limit  int
	mutex  sync.Mutex
	result []simulation.Result
}

func New(cfg config.Config, log *slog.Logger, out io.Writer) *Simulator {
	return &Simulator{
		cfg:   cfg,
		log:   log,
		out:   out,
		limit: runtime.NumCPU(),
	}
}

func (s *Simulator) Simulate(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.limit)

	for _, scenario := range s.cfg.Scenarios {
		for _, seed := range scenario.RunSeeds() {
			eg.Go(func() error {
				return s.simulateScenario(ctx, scenario, seed)
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	s.log.InfoContext(ctx, "All simulations are complete", slog.String("name", s.cfg.Name))

	slices.SortFunc(s.result, func(a, b simulation.Result) int {
		if c := cmp.Compare(a.Scenario(), b.Scenario()); c != 0 {
			return c
		}
		return cmp.Compare(a.Seed(), b.Seed())
	})

	if err := table.NewTable(s.out, s.result).Report(); err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	for _, r := range s.result {
		if r.Err() != nil {
			return ErrDiverged
		}
	}
	return nil
}

// simulateScenario only returns setup errors. Divergences are recorded in the
// results so the other runs can finish and show up in the report.
func (s *Simulator) simulateScenario(ctx context.Context, scenario config.Scenario, seed uint64) error {
	counter := stats.NewCounter()
	subjects := make([]ringtest.Subject[int], 0, len(s.cfg.Subjects))
	for _, name := range s.cfg.Subjects {
		subject, err := newSubject(name, counter)
		if err != nil {
			return err
		}
		subjects = append(subjects, subject)
	}

	cfg := scenario.RunConfig(seed)
	cfg.Logger = pslog.New(s.log, pslog.WithAttrs(
		slog.String("scenario", scenario.Name),
		slog.Uint64("seed", seed),
	))

	report, err := ringtest.Run(ctx, cfg, subjects...)
	if errors.Is(err, context.Canceled) {
		return err
	}

	r := simulation.NewResult(scenario.Name, seed, report, counter.Snapshot(), err)
	s.mutex.Lock()
	s.result = append(s.result, r)
	s.mutex.Unlock()

	s.log.InfoContext(ctx, "Simulation completed",
		slog.String("scenario", scenario.Name),
		slog.Uint64("seed", seed),
		slog.Int("ops", report.Total()),
		slog.String("status", r.Status()),
	)
	return nil
}
