package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// barSeries is a go-chart series that draws one rectangle per value at
// an arbitrary data x-position with a width in data units.
type barSeries struct {
	Name    string
	Xs      []float64
	Heights []float64
	Width   float64
	Style   chart.Style
}

func (bs *barSeries) GetName() string {
	return bs.Name
}

func (bs *barSeries) GetStyle() chart.Style {
	return bs.Style
}

func (bs *barSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (bs *barSeries) Len() int {
	return len(bs.Xs)
}

func (bs *barSeries) GetValues(index int) (float64, float64) {
	return bs.Xs[index], bs.Heights[index]
}

func (bs *barSeries) Validate() error {
	if len(bs.Xs) != len(bs.Heights) {
		return fmt.Errorf("bar series %q: %d positions for %d heights", bs.Name, len(bs.Xs), len(bs.Heights))
	}
	if bs.Width <= 0 {
		return fmt.Errorf("bar series %q: width must be positive", bs.Name)
	}
	return nil
}

func (bs *barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.Style.InheritFrom(defaults)

	// ширина бара в пикселях из ширины в единицах оси X
	half := (xrange.Translate(bs.Width) - xrange.Translate(0)) / 2
	if half < 1 {
		half = 1
	}
	y0 := yrange.Translate(0)
	for i, x := range bs.Xs {
		// NaN и бесконечности не рисуем
		if !isFinite(x) || !isFinite(bs.Heights[i]) {
			continue
		}
		px := canvasBox.Left + xrange.Translate(x)
		py := yrange.Translate(bs.Heights[i])
		chart.Draw.Box(r, chart.Box{
			Top:    canvasBox.Bottom - py,
			Left:   px - half,
			Right:  px + half,
			Bottom: canvasBox.Bottom - y0,
		}, style)
	}
}
