package table

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ringlab/ring/benchmarks/stress/internal/report/simulation"
)

var header = []string{
	"Scenario", "Seed", "Ops", "Checkpoints", "Empty removals",
	"Peak len", "Grows", "Shrinks", "Avg copy", "Status",
}

type Table struct {
	w       io.Writer
	results []simulation.Result
}

func NewTable(w io.Writer, results []simulation.Result) *Table {
	return &Table{
		w:       w,
		results: results,
	}
}

func (t *Table) Report() error {
	if t == nil {
		return nil
	}

	w := tablewriter.NewWriter(t.w).Options(tablewriter.WithRendition(tw.Rendition{
		Borders: tw.Border{
			Left:   tw.On,
			Top:    tw.Off,
			Right:  tw.On,
			Bottom: tw.Off,
		},
	}), tablewriter.WithHeader(header))
	for _, r := range t.results {
		rep := r.Report()
		s := r.Stats()
		row := []any{
			r.Scenario(),
			strconv.FormatUint(r.Seed(), 10),
			strconv.Itoa(rep.Total()),
			strconv.Itoa(rep.Checkpoints),
			strconv.Itoa(rep.EmptyRemovals),
			strconv.Itoa(rep.PeakLen),
			strconv.FormatUint(s.Grows, 10),
			strconv.FormatUint(s.Shrinks, 10),
			strconv.FormatFloat(s.AverageCopy(), 'f', 2, 64),
			r.Status(),
		}
		if err := w.Append(row...); err != nil {
			return err
		}
	}
	return w.Render()
}
