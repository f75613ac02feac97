package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nmthang194/chapter-flow/internal/scheduler"
)

// Render writes the per-video summary table and totals for a finished run.
// Failures are always listed individually with their error message.
func Render(w io.Writer, r *scheduler.Report) {
	if r.Total > 0 {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Video", "Status", "Detail"})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
			{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
			{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		})

		for _, o := range r.Successes {
			tw.AppendRow(table.Row{o.Identifier, "OK", successDetail(o)})
		}
		for _, o := range r.Failures {
			tw.AppendRow(table.Row{o.Identifier, "FAILED", o.Err.Error()})
		}
		tw.Render()
	}

	fmt.Fprintf(w, "Total: %d  Succeeded: %d  Failed: %d\n",
		r.Total, len(r.Successes), len(r.Failures))
}

func successDetail(o scheduler.Outcome) string {
	if o.Result == nil {
		return ""
	}
	if o.Result.AssetID != "" {
		return "asset " + o.Result.AssetID
	}
	return "submitted"
}
