package plot

import (
	"fmt"
	"image/color"
	"io"

	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const pixelsPerInch = 96

// GonumFigure renders the recorded bars with gonum/plot.
type GonumFigure struct {
	*Recorder
	Format string
	Width  int
	Height int
}

func NewGonumFigure(format string, width, height int) *GonumFigure {
	if format == "" {
		format = FormatPNG
	}
	return &GonumFigure{Recorder: NewRecorder(), Format: format, Width: width, Height: height}
}

func (f *GonumFigure) Flush(w io.Writer) error {
	switch f.Format {
	case FormatPNG, FormatSVG, FormatPDF:
	default:
		return fmt.Errorf("gonum: unsupported format %q", f.Format)
	}

	p := f.buildPlot()
	width, height := 8*vg.Inch, 4.5*vg.Inch
	if f.Width > 0 && f.Height > 0 {
		width = vg.Length(f.Width) / pixelsPerInch * vg.Inch
		height = vg.Length(f.Height) / pixelsPerInch * vg.Inch
	}

	wt, err := p.WriterTo(width, height, f.Format)
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}

func (f *GonumFigure) buildPlot() *gonum.Plot {
	p := gonum.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	for i, b := range f.Bars {
		bars := &gonumBars{
			BarSet: b,
			Color:  plotutil.Color(i),
			LineStyle: draw.LineStyle{
				Color: color.Black,
				Width: vg.Points(0.5),
			},
		}
		p.Add(bars)
		if f.HasLegend && b.Label != "" {
			p.Legend.Add(b.Label, bars)
		}
	}
	p.Legend.Top = true

	if len(f.TickPos) > 0 {
		ticks := make([]gonum.Tick, len(f.TickPos))
		for i, pos := range f.TickPos {
			ticks[i] = gonum.Tick{Value: pos, Label: f.TickLabels[i]}
		}
		p.X.Tick.Marker = gonum.ConstantTicks(ticks)
		p.X.Min = f.TickPos[0] - 0.5
		p.X.Max = f.TickPos[len(f.TickPos)-1] + 0.5
	}
	if f.Tight {
		p.Title.Padding = vg.Points(4)
		p.X.Padding = 0
		p.Y.Padding = 0
	}
	return p
}

// gonumBars draws a BarSet in data coordinates; the bar width is in
// x-axis units rather than in vg lengths as plotter.BarChart expects.
type gonumBars struct {
	BarSet
	Color     color.Color
	LineStyle draw.LineStyle
}

func (b *gonumBars) Plot(c draw.Canvas, plt *gonum.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, x := range b.Xs {
		left := trX(x - b.Width/2)
		right := trX(x + b.Width/2)
		bottom := trY(0)
		top := trY(b.Heights[i])

		pts := []vg.Point{
			{X: left, Y: bottom},
			{X: left, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
		}
		c.FillPolygon(b.Color, c.ClipPolygonY(pts))

		pts = append(pts, vg.Point{X: left, Y: bottom})
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
	}
}

func (b *gonumBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(b.Xs) == 0 {
		return 0, 0, 0, 0
	}
	xmin, xmax = b.Xs[0]-b.Width/2, b.Xs[0]+b.Width/2
	for i, x := range b.Xs {
		if x-b.Width/2 < xmin {
			xmin = x - b.Width/2
		}
		if x+b.Width/2 > xmax {
			xmax = x + b.Width/2
		}
		if b.Heights[i] < ymin {
			ymin = b.Heights[i]
		}
		if b.Heights[i] > ymax {
			ymax = b.Heights[i]
		}
	}
	return xmin, xmax, ymin, ymax
}

func (b *gonumBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
}
