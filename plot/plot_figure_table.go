package plot

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TableFigure prints the bar data as a text table: one row per
// category, one column per series, offsets in the footer.
type TableFigure struct {
	*Recorder
}

func NewTableFigure() *TableFigure {
	return &TableFigure{Recorder: NewRecorder()}
}

func (f *TableFigure) Flush(w io.Writer) error {
	_, err := io.WriteString(w, f.GenerateTable()+"\n")
	return err
}

func (f *TableFigure) GenerateTable() string {
	t := table.NewWriter()
	if f.Title != "" {
		t.SetTitle("%s", f.Title)
	}

	header := table.Row{f.XLabel}
	for _, b := range f.Bars {
		header = append(header, b.Label)
	}
	t.AppendHeader(header)

	for i, label := range f.TickLabels {
		row := table.Row{label}
		for _, b := range f.Bars {
			if i < len(b.Heights) {
				row = append(row, b.Heights[i])
			} else {
				row = append(row, "")
			}
		}
		t.AppendRow(row)
	}

	if len(f.TickPos) > 0 {
		footer := table.Row{"offset"}
		for _, b := range f.Bars {
			if len(b.Xs) == 0 {
				footer = append(footer, "")
				continue
			}
			footer = append(footer, fmt.Sprintf("%+.2f", b.Xs[0]-f.TickPos[0]))
		}
		t.AppendFooter(footer)
	}
	if f.YLabel != "" {
		t.SetCaption("%s", f.YLabel)
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}
