package plot

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGonumFigure(t *testing.T) {
	for _, format := range []string{FormatPNG, FormatSVG, FormatPDF} {
		fig := NewGonumFigure(format, 0, 0)
		require.NoError(t, RenderChart(fig, comparisonChart()))

		buf := &bytes.Buffer{}
		require.NoError(t, fig.Flush(buf), format)
		assert.NotZero(t, buf.Len(), format)
	}
}

func TestGonumFigureUnsupportedFormat(t *testing.T) {
	fig := NewGonumFigure("bmp", 0, 0)
	assert.Error(t, fig.Flush(&bytes.Buffer{}))
}

func TestGonumBuildPlotRange(t *testing.T) {
	fig := NewGonumFigure(FormatPNG, 800, 450)
	require.NoError(t, RenderChart(fig, comparisonChart()))
	p := fig.buildPlot()

	assert.Equal(t, -0.5, p.X.Min)
	assert.Equal(t, 4.5, p.X.Max)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 1500.0, p.Y.Max)
	assert.Equal(t, "Runs Scored", p.Y.Label.Text)
}

func TestGonumBarsDataRange(t *testing.T) {
	b := &gonumBars{BarSet: BarSet{Xs: []float64{-0.25, 0.75}, Heights: []float64{3, -2}, Width: 0.5}}
	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, -0.5, xmin)
	assert.Equal(t, 1.0, xmax)
	assert.Equal(t, -2.0, ymin)
	assert.Equal(t, 3.0, ymax)
}

func TestEChartsFigure(t *testing.T) {
	fig := NewEChartsFigure(900, 500)
	require.NoError(t, RenderChart(fig, comparisonChart()))

	buf := &bytes.Buffer{}
	require.NoError(t, fig.Flush(buf))
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "MS Dhoni")
	assert.Contains(t, html, "Rohit Sharma")
	assert.Contains(t, html, "2018")
	assert.Equal(t, "25%", fig.categoryGap())
}

func TestEChartsCategoryGapClamped(t *testing.T) {
	fig := NewEChartsFigure(0, 0)
	fig.Bar([]float64{0}, []float64{1}, 0.6, "a")
	fig.Bar([]float64{1}, []float64{1}, 0.6, "b")
	assert.Equal(t, "0%", fig.categoryGap())
}

func TestTableFigure(t *testing.T) {
	fig := NewTableFigure()
	require.NoError(t, RenderChart(fig, comparisonChart()))

	out := fig.GenerateTable()
	for _, s := range []string{"Comparison Graph of 5 Years", "2016", "2020", "1450", "-0.25", "+0.25", "Runs Scored"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, strings.ToUpper(out), "VIRAT KOHLI")

	// строки идут в порядке категорий
	assert.Less(t, strings.Index(out, "2016"), strings.Index(out, "2020"))

	buf := &bytes.Buffer{}
	require.NoError(t, fig.Flush(buf))
	assert.Equal(t, out+"\n", buf.String())
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestTerminalFigure(t *testing.T) {
	fig := NewTerminalFigure(30)
	require.NoError(t, RenderChart(fig, comparisonChart()))

	out := ansi.ReplaceAllString(fig.View(), "")
	assert.Contains(t, out, "Comparison Graph of 5 Years")
	assert.Contains(t, out, "MS Dhoni")
	assert.Contains(t, out, "1500")
	// наибольший бар занимает всю ширину
	assert.Contains(t, out, strings.Repeat("█", 30)+" 1500")
	assert.Less(t, strings.Index(out, "2017"), strings.Index(out, "2018"))
}

func TestTerminalBarLength(t *testing.T) {
	fig := NewTerminalFigure(0)
	assert.Equal(t, 50, fig.Columns)
	assert.Equal(t, 25, fig.barLength(5, 10))
	assert.Equal(t, 25, fig.barLength(-5, 10))
	assert.Equal(t, 0, fig.barLength(5, 0))
}

func TestNewFigure(t *testing.T) {
	for _, backend := range Backends {
		fig, err := NewFigure(FigureOptions{Backend: backend, Format: FormatSVG})
		require.NoError(t, err, backend)
		require.NoError(t, RenderChart(fig, comparisonChart()), backend)
		assert.NoError(t, fig.Flush(&bytes.Buffer{}), backend)
	}

	_, err := NewFigure(FigureOptions{Backend: "matplotlib"})
	assert.Error(t, err)
}

func TestNewFigureTerminalColumns(t *testing.T) {
	fig, err := NewFigure(FigureOptions{Backend: BackendTerminal, Columns: 12})
	require.NoError(t, err)
	term, ok := fig.(*TerminalFigure)
	require.True(t, ok)
	assert.Equal(t, 12, term.Columns)

	require.NoError(t, RenderChart(fig, comparisonChart()))
	out := ansi.ReplaceAllString(term.View(), "")
	assert.Contains(t, out, strings.Repeat("█", 12)+" 1500")
	assert.NotContains(t, out, strings.Repeat("█", 13))

	fig, err = NewFigure(FigureOptions{Backend: BackendTerminal})
	require.NoError(t, err)
	assert.Equal(t, 50, fig.(*TerminalFigure).Columns)
}

func TestFigureOptionsExtension(t *testing.T) {
	assert.Equal(t, "png", FigureOptions{Backend: BackendGoChart}.Extension())
	assert.Equal(t, "pdf", FigureOptions{Backend: BackendGonum, Format: FormatPDF}.Extension())
	assert.Equal(t, "html", FigureOptions{Backend: BackendECharts, Format: FormatPNG}.Extension())
	assert.Equal(t, "txt", FigureOptions{Backend: BackendTable}.Extension())
	assert.True(t, FigureOptions{Backend: BackendTerminal}.WritesToStdout())
	assert.True(t, FigureOptions{Backend: BackendTable}.WritesToStdout())
	assert.True(t, FigureOptions{Backend: BackendRecorder}.WritesToStdout())
	assert.False(t, FigureOptions{Backend: BackendGonum}.WritesToStdout())
	assert.False(t, FigureOptions{Backend: BackendGoChart}.WritesToStdout())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "comparison_graph_of_5_years", Slug("Comparison Graph of 5 Years"))
	assert.Equal(t, "sravnenie_let", Slug("Сравнение лет"))
	assert.Equal(t, "chart", Slug(""))
	assert.Equal(t, "chart", Slug("!!!"))
}

func TestOutputFileName(t *testing.T) {
	a := OutputFileName("Comparison Graph", "png")
	b := OutputFileName("Comparison Graph", "png")

	assert.Regexp(t, `^comparison_graph_[0-9a-f-]{36}\.png$`, a)
	assert.NotEqual(t, a, b)
}
