package plot

import (
	"log"

	"github.com/pivolan/grouped_bars/domain/models"
)

// Arange возвращает 0..n-1
func Arange(n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// Offsets centres m bars of the given width on the category index:
// offset(k) = (k - (m-1)/2) * width.
func Offsets(m int, width float64) []float64 {
	if m <= 0 {
		return nil
	}
	offsets := make([]float64, m)
	center := float64(m-1) / 2
	for k := range offsets {
		offsets[k] = (float64(k) - center) * width
	}
	return offsets
}

// RenderGroupedBars issues one Bar call per series, shifted by its
// offset, and sets the category ticks. Lengths and values are checked
// before any call reaches the figure.
func RenderGroupedBars(fig Figure, categories []string, series []models.Series, barWidth float64) error {
	if err := models.CheckSeries(categories, series); err != nil {
		return err
	}
	if barWidth*float64(len(series)) > 1 {
		// бары соседних категорий перекроются, но это не ошибка
		log.Printf("bar width %.3f x %d series exceeds one category unit", barWidth, len(series))
	}

	x := Arange(len(categories))
	offsets := Offsets(len(series), barWidth)
	for k, s := range series {
		xs := make([]float64, len(x))
		for i := range x {
			xs[i] = x[i] + offsets[k]
		}
		fig.Bar(xs, s.Values, barWidth, s.Name)
	}
	fig.SetXTicks(x, categories)
	return nil
}

// RenderChart draws the whole chart: bars, titles, legend and layout.
func RenderChart(fig Figure, c models.Chart) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := RenderGroupedBars(fig, c.Categories, c.Series, c.BarWidth); err != nil {
		return err
	}
	fig.SetXLabel(c.XLabel)
	fig.SetYLabel(c.YLabel)
	fig.SetTitle(c.Title)
	fig.TightLayout()
	fig.Legend()
	return nil
}
