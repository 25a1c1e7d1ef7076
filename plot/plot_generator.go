package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatHTML = "html"
	FormatText = "txt"
)

// GoChartFigure renders the recorded bars with go-chart.
type GoChartFigure struct {
	*Recorder
	Format string
	Width  int
	Height int
}

func NewGoChartFigure(format string, width, height int) *GoChartFigure {
	if format == "" {
		format = FormatPNG
	}
	return &GoChartFigure{Recorder: NewRecorder(), Format: format, Width: width, Height: height}
}

func (f *GoChartFigure) Flush(w io.Writer) error {
	var rp chart.RendererProvider
	switch f.Format {
	case FormatPNG:
		rp = chart.PNG
	case FormatSVG:
		rp = chart.SVG
	default:
		return fmt.Errorf("go-chart: unsupported format %q", f.Format)
	}

	graph := f.buildChart()
	// Отрисовываем график
	if err := graph.Render(rp, w); err != nil {
		return fmt.Errorf("error rendering chart: %w", err)
	}
	return nil
}

func (f *GoChartFigure) buildChart() *chart.Chart {
	width, height := f.Width, f.Height
	if width <= 0 || height <= 0 {
		width, height = calculateChartDimensions(len(f.TickPos), len(f.Bars), 60)
	}

	graph := &chart.Chart{
		Title:  f.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorFromHex("efefef"),
			StrokeWidth: 1,
		},
		XAxis: chart.XAxis{
			Name:  f.XLabel,
			Ticks: f.xTicks(),
		},
		YAxis: chart.YAxis{
			Name:  f.YLabel,
			Range: &chart.ContinuousRange{},
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.ColorBlack,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0}, // Пунктирная линия
			},
		},
	}

	ticks := f.yTicks()
	graph.YAxis.Ticks = ticks
	graph.YAxis.GridLines = gridLines(ticks)
	graph.YAxis.Range.SetMin(ticks[0].Value)
	graph.YAxis.Range.SetMax(ticks[len(ticks)-1].Value)

	if f.Tight {
		graph.Background.Padding = chart.Box{
			Top:    50,
			Left:   20,
			Right:  20,
			Bottom: customizePaddingXBottom(f.longestTickLabel()),
		}
	}

	for i, b := range f.Bars {
		color := chart.GetDefaultColor(i)
		graph.Series = append(graph.Series, &barSeries{
			Name:    b.Label,
			Xs:      b.Xs,
			Heights: b.Heights,
			Width:   b.Width,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
	}
	if f.HasLegend {
		graph.Elements = []chart.Renderable{chart.Legend(graph)}
	}
	return graph
}

// xTicks ставит подпись на каждую категорию и пустые метки по краям,
// чтобы крайние группы баров не обрезались.
func (f *GoChartFigure) xTicks() []chart.Tick {
	n := len(f.TickPos)
	if n == 0 {
		return nil
	}
	ticks := []chart.Tick{{Value: f.TickPos[0] - 0.5}}
	for i, pos := range f.TickPos {
		ticks = append(ticks, chart.Tick{Value: pos, Label: f.TickLabels[i]})
	}
	return append(ticks, chart.Tick{Value: f.TickPos[n-1] + 0.5})
}

func (f *GoChartFigure) yTicks() []chart.Tick {
	min, max := f.minHeight(), f.maxHeight()
	step := calculateGridStep(math.Max(max, -min))
	if step == 0 || !isFinite(step) {
		step = 1
	}
	lo := math.Floor(min/step) * step
	hi := math.Ceil(max/step) * step
	if !isFinite(lo) || !isFinite(hi) {
		return []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}}
	}
	if hi == max {
		hi += step
	}

	var ticks []chart.Tick
	for v := lo; v <= hi+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v, step)})
	}
	return ticks
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func gridLines(ticks []chart.Tick) []chart.GridLine {
	lines := make([]chart.GridLine, 0, len(ticks))
	for _, t := range ticks {
		lines = append(lines, chart.GridLine{Value: t.Value})
	}
	return lines
}

func formatTick(v, step float64) string {
	if step >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// calculateGridStep подбирает "красивый" шаг сетки: 2, 5, 10 или 20
// процентов порядка максимального значения.
func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}
	return finalStep
}

func calculateChartDimensions(categories, perCategory int, minBarWidth float64) (width, height int) {
	if categories <= 0 || perCategory <= 0 || minBarWidth <= 0 {
		return 1024, 576
	}
	const (
		paddingY     = 100        // отступ для оси Y и подписей
		spacingRatio = 0.2        // отступ между группами относительно ширины бара
		aspectRatio  = 9.0 / 16.0 // соотношение сторон по умолчанию
	)

	groupWidth := minBarWidth*float64(perCategory) + minBarWidth*spacingRatio
	width = int(groupWidth*float64(categories)) + 2*paddingY
	if width < 640 {
		width = 640
	}
	height = int(float64(width) * aspectRatio)
	return width, height
}

func customizePaddingXBottom(longestLabel int) int {
	padding := longestLabel * 8
	if padding < 40 {
		padding = 40
	}
	return padding
}
