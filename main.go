package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pivolan/grouped_bars/config"
	"github.com/pivolan/grouped_bars/domain/models"
	"github.com/pivolan/grouped_bars/plot"
)

func main() {
	cfg := config.GetConfig()
	chart := comparisonChart(cfg.BarWidth)

	path, err := drawChart(chart, cfg)
	if err != nil {
		log.Fatalln("cannot draw chart:", err)
	}
	if path != "" {
		log.Printf("chart written to %s", path)
	}
}

// comparisonChart runs scored by three batsmen over five years
func comparisonChart(barWidth float64) models.Chart {
	years := []string{"2016", "2017", "2018", "2019", "2020"}
	return models.NewChart(
		"Comparison Graph of 5 Years",
		"Years",
		"Runs Scored",
		years,
		[]models.Series{
			{Name: "MS Dhoni", Values: []float64{850, 780, 720, 650, 500}},
			{Name: "Virat Kohli", Values: []float64{1200, 1350, 1450, 1300, 1100}},
			{Name: "Rohit Sharma", Values: []float64{900, 1000, 1400, 1500, 1200}},
		},
		barWidth,
	)
}

// drawChart renders the chart into a new figure and flushes it either to
// stdout or to a file in the output directory. It returns the file path,
// empty when the figure went to stdout.
func drawChart(chart models.Chart, cfg *config.Config) (string, error) {
	o := cfg.FigureOptions()
	fig, err := plot.NewFigure(o)
	if err != nil {
		return "", err
	}
	if err := plot.RenderChart(fig, chart); err != nil {
		return "", fmt.Errorf("render %q: %w", chart.Title, err)
	}

	if o.WritesToStdout() {
		return "", fig.Flush(os.Stdout)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(cfg.OutputDir, plot.OutputFileName(chart.Title, o.Extension()))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := fig.Flush(file); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	return path, file.Close()
}
