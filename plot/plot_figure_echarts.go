package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// EChartsFigure writes an interactive HTML page. ECharts groups the
// bars of a category itself, so offsets are expressed through the bar
// width and category gap instead of absolute positions.
type EChartsFigure struct {
	*Recorder
	Width  int
	Height int
}

func NewEChartsFigure(width, height int) *EChartsFigure {
	return &EChartsFigure{Recorder: NewRecorder(), Width: width, Height: height}
}

func (f *EChartsFigure) Flush(w io.Writer) error {
	bar := f.buildBar()
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("error rendering echarts page: %w", err)
	}
	return nil
}

func (f *EChartsFigure) buildBar() *charts.Bar {
	bar := charts.NewBar()

	initOpts := opts.Initialization{PageTitle: f.Title}
	if f.Width > 0 && f.Height > 0 {
		initOpts.Width = fmt.Sprintf("%dpx", f.Width)
		initOpts.Height = fmt.Sprintf("%dpx", f.Height)
	}
	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(initOpts),
		charts.WithTitleOpts(opts.Title{Title: f.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: f.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: f.YLabel}),
	}
	if f.HasLegend {
		global = append(global, charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}))
	}
	if f.Tight {
		global = append(global, charts.WithGridOpts(opts.Grid{ContainLabel: opts.Bool(true)}))
	}
	bar.SetGlobalOptions(global...)
	bar.SetXAxis(f.TickLabels)

	seriesOpts := charts.WithBarChartOpts(opts.BarChart{
		BarGap:         "0%",
		BarCategoryGap: f.categoryGap(),
	})
	for _, b := range f.Bars {
		items := make([]opts.BarData, 0, len(b.Heights))
		for _, h := range b.Heights {
			items = append(items, opts.BarData{Value: h})
		}
		bar.AddSeries(b.Label, items, seriesOpts)
	}
	return bar
}

// categoryGap свободная доля категории, не занятая барами
func (f *EChartsFigure) categoryGap() string {
	used := 0.0
	for _, b := range f.Bars {
		used += b.Width
	}
	gap := math.Max(0, 1-used)
	return fmt.Sprintf("%.0f%%", gap*100)
}
