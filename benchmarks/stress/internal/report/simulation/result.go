package simulation

import (
	"github.com/ringlab/ring/ringtest"
	"github.com/ringlab/ring/stats"
)

type Result struct {
	scenario string
	seed     uint64
	report   ringtest.Report
	stats    stats.Stats
	err      error
}

func NewResult(scenario string, seed uint64, report ringtest.Report, s stats.Stats, err error) Result {
	return Result{
		scenario: scenario,
		seed:     seed,
		report:   report,
		stats:    s,
		err:      err,
	}
}

func (r Result) Scenario() string {
	return r.scenario
}

func (r Result) Seed() uint64 {
	return r.seed
}

func (r Result) Report() ringtest.Report {
	return r.report
}

func (r Result) Stats() stats.Stats {
	return r.stats
}

func (r Result) Err() error {
	return r.err
}

func (r Result) Status() string {
	if r.err != nil {
		return "FAIL"
	}
	return "ok"
}
