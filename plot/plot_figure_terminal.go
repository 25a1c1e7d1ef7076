package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// seriesColors ANSI 256 palette for terminal bars
var seriesColors = []lipgloss.Color{"33", "208", "71", "167", "141", "180"}

// TerminalFigure draws horizontal bars with block characters, one group
// per category. It is the "show" backend.
type TerminalFigure struct {
	*Recorder
	Columns int
}

func NewTerminalFigure(columns int) *TerminalFigure {
	if columns <= 0 {
		columns = 50
	}
	return &TerminalFigure{Recorder: NewRecorder(), Columns: columns}
}

func (f *TerminalFigure) Flush(w io.Writer) error {
	_, err := io.WriteString(w, f.View())
	return err
}

func (f *TerminalFigure) View() string {
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	if f.Title != "" {
		b.WriteString(titleStyle.Render(f.Title))
		b.WriteString("\n")
	}
	if f.YLabel != "" {
		b.WriteString(muted.Render(f.YLabel))
		b.WriteString("\n")
	}

	labelWidth := f.longestTickLabel()
	max := math.Max(f.maxHeight(), -f.minHeight())
	for i, label := range f.TickLabels {
		b.WriteString(lipgloss.NewStyle().Width(labelWidth).Render(label))
		for k, bars := range f.Bars {
			if i >= len(bars.Heights) {
				continue
			}
			if k > 0 {
				b.WriteString(strings.Repeat(" ", labelWidth))
			}
			h := bars.Heights[i]
			style := lipgloss.NewStyle().Foreground(seriesColors[k%len(seriesColors)])
			b.WriteString(" ")
			b.WriteString(style.Render(strings.Repeat("█", f.barLength(h, max))))
			b.WriteString(" ")
			b.WriteString(muted.Render(formatValue(h)))
			b.WriteString("\n")
		}
	}

	if f.XLabel != "" {
		b.WriteString(muted.Render(f.XLabel))
		b.WriteString("\n")
	}
	if f.HasLegend {
		items := make([]string, 0, len(f.Bars))
		for k, bars := range f.Bars {
			style := lipgloss.NewStyle().Foreground(seriesColors[k%len(seriesColors)])
			items = append(items, style.Render("■")+" "+bars.Label)
		}
		b.WriteString(strings.Join(items, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

func (f *TerminalFigure) barLength(h, max float64) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(math.Abs(h) / max * float64(f.Columns)))
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
