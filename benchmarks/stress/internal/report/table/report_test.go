package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ringlab/ring/benchmarks/stress/internal/report/simulation"
	"github.com/ringlab/ring/ringtest"
	"github.com/ringlab/ring/stats"
)

func TestTable_Report(t *testing.T) {
	t.Parallel()

	var rep ringtest.Report
	rep.Checkpoints = 11
	rep.PeakLen = 42

	results := []simulation.Result{
		simulation.NewResult("uniform", 1, rep, stats.Stats{Grows: 3, Shrinks: 1, CopiedElements: 60}, nil),
		simulation.NewResult("lopsided", 2, rep, stats.Stats{}, errors.New("diverged")),
	}

	var b bytes.Buffer
	require.NoError(t, NewTable(&b, results).Report())

	out := b.String()
	require.Contains(t, out, "uniform")
	require.Contains(t, out, "lopsided")
	require.Contains(t, out, "15.00")
	require.Contains(t, out, "FAIL")

	var nilTable *Table
	require.NoError(t, nilTable.Report())
}
