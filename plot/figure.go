package plot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	uuid "github.com/satori/go.uuid"
)

const (
	BackendGoChart  = "gochart"
	BackendGonum    = "gonum"
	BackendECharts  = "echarts"
	BackendTable    = "table"
	BackendTerminal = "terminal"
	BackendRecorder = "recorder"
)

var Backends = []string{BackendGoChart, BackendGonum, BackendECharts, BackendTable, BackendTerminal, BackendRecorder}

// FigureOptions параметры создания фигуры
type FigureOptions struct {
	Backend string
	Format  string
	Width   int
	Height  int
	Columns int // ширина терминала, 0 значит по умолчанию
}

// NewFigure creates a fresh, empty figure for the backend.
func NewFigure(o FigureOptions) (Figure, error) {
	switch o.Backend {
	case BackendGoChart, "":
		return NewGoChartFigure(o.Format, o.Width, o.Height), nil
	case BackendGonum:
		return NewGonumFigure(o.Format, o.Width, o.Height), nil
	case BackendECharts:
		return NewEChartsFigure(o.Width, o.Height), nil
	case BackendTable:
		return NewTableFigure(), nil
	case BackendTerminal:
		return NewTerminalFigure(o.Columns), nil
	case BackendRecorder:
		return NewRecorder(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", o.Backend)
}

// Extension расширение файла для результата фигуры
func (o FigureOptions) Extension() string {
	switch o.Backend {
	case BackendECharts:
		return FormatHTML
	case BackendTable, BackendTerminal, BackendRecorder:
		return FormatText
	}
	if o.Format == "" {
		return FormatPNG
	}
	return o.Format
}

// WritesToStdout backends meant to be looked at directly. The recorder
// writes nothing at all, so it never gets a file either.
func (o FigureOptions) WritesToStdout() bool {
	switch o.Backend {
	case BackendTerminal, BackendTable, BackendRecorder:
		return true
	}
	return false
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug transliterates the title to ASCII and joins words with '_'.
func Slug(title string) string {
	s := strings.ToLower(unidecode.Unidecode(title))
	s = strings.Trim(nonAlnum.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "chart"
	}
	return s
}

// OutputFileName формирует уникальное имя файла для графика
func OutputFileName(title, ext string) string {
	return fmt.Sprintf("%s_%s.%s", Slug(title), uuid.NewV4().String(), ext)
}
