package plot

import (
	"io"
	"math"
)

// Figure is an explicit drawing target. Renderers call into it and the
// caller flushes it when done.
type Figure interface {
	Bar(xs []float64, heights []float64, width float64, label string)
	SetXTicks(positions []float64, labels []string)
	SetTitle(title string)
	SetXLabel(label string)
	SetYLabel(label string)
	Legend()
	TightLayout()
	Flush(w io.Writer) error
}

// BarSet один вызов Bar: бары одной серии
type BarSet struct {
	Label   string
	Xs      []float64
	Heights []float64
	Width   float64
}

// Recorder keeps every call made to a figure. Backends embed it and
// build their output from the recorded state on Flush.
type Recorder struct {
	Bars       []BarSet
	TickPos    []float64
	TickLabels []string
	Title      string
	XLabel     string
	YLabel     string
	HasLegend  bool
	Tight      bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Bar(xs []float64, heights []float64, width float64, label string) {
	r.Bars = append(r.Bars, BarSet{
		Label:   label,
		Xs:      append([]float64(nil), xs...),
		Heights: append([]float64(nil), heights...),
		Width:   width,
	})
}

func (r *Recorder) SetXTicks(positions []float64, labels []string) {
	r.TickPos = append([]float64(nil), positions...)
	r.TickLabels = append([]string(nil), labels...)
}

func (r *Recorder) SetTitle(title string)  { r.Title = title }
func (r *Recorder) SetXLabel(label string) { r.XLabel = label }
func (r *Recorder) SetYLabel(label string) { r.YLabel = label }
func (r *Recorder) Legend()                { r.HasLegend = true }
func (r *Recorder) TightLayout()           { r.Tight = true }

// Flush ничего не пишет: запись остается в памяти
func (r *Recorder) Flush(w io.Writer) error {
	return nil
}

// LegendLabels возвращает подписи в порядке вызовов Bar
func (r *Recorder) LegendLabels() []string {
	if !r.HasLegend {
		return nil
	}
	labels := make([]string, 0, len(r.Bars))
	for _, b := range r.Bars {
		if b.Label != "" {
			labels = append(labels, b.Label)
		}
	}
	return labels
}

// Calls число вызовов отрисовки баров
func (r *Recorder) Calls() int {
	return len(r.Bars)
}

func (r *Recorder) maxHeight() float64 {
	max := 0.0
	for _, b := range r.Bars {
		for _, h := range b.Heights {
			if !math.IsInf(h, 0) && h > max {
				max = h
			}
		}
	}
	return max
}

func (r *Recorder) minHeight() float64 {
	min := 0.0
	for _, b := range r.Bars {
		for _, h := range b.Heights {
			if !math.IsInf(h, 0) && h < min {
				min = h
			}
		}
	}
	return min
}

// longestTickLabel used for the bottom padding
func (r *Recorder) longestTickLabel() int {
	count := 0
	for _, l := range r.TickLabels {
		if len(l) > count {
			count = len(l)
		}
	}
	return count
}
