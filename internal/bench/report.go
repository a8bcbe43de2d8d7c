package bench

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render writes a human readable summary of the result to w.
func (r *Result) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, text.FgYellow.Sprintf("Results for workload: %s", r.Workload)); err != nil {
		return err
	}

	m := r.Metrics
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"metric", "value"})
	t.AppendRows([]table.Row{
		{"run id", r.RunID},
		{"queue size", r.Size},
		{"workers", r.Concurrency},
		{"iterations per worker", r.Iterations},
		{"samples", m.Samples},
		{"rate/s", fmt.Sprintf("%.2f", m.Rate.Second)},
		{"min", m.Time.Min},
		{"avg", m.Time.Avg},
		{"p50", m.Time.P50},
		{"p95", m.Time.P95},
		{"p99", m.Time.P99},
		{"max", m.Time.Max},
	})
	failed := text.FgGreen.Sprint(r.Failed)
	if r.Failed > 0 {
		failed = text.FgRed.Sprint(r.Failed)
	}
	t.AppendFooter(table.Row{"failed", failed})

	_, err := fmt.Fprintf(w, "%s\n", t.Render())
	return err
}
