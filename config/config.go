package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pivolan/go_utils"
	"github.com/pivolan/grouped_bars/plot"
)

const DefaultBarWidth = 0.25

type Config struct {
	Backend   string
	Format    string
	OutputDir string
	Width     int
	Height    int
	Columns   int
	BarWidth  float64
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Fatal("Error loading config: ", err)
		}
		config = cfg
	})
	return config
}

// Load reads the given .env files (".env" when none are given) into the
// environment and builds a Config from it. Missing files are skipped.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Backend:   getenv("CHART_BACKEND", plot.BackendGoChart),
		Format:    getenv("CHART_FORMAT", plot.FormatPNG),
		OutputDir: getenv("CHART_OUTPUT_DIR", "output"),
		BarWidth:  DefaultBarWidth,
	}

	var err error
	if cfg.Width, err = getInt("CHART_WIDTH"); err != nil {
		return nil, err
	}
	if cfg.Height, err = getInt("CHART_HEIGHT"); err != nil {
		return nil, err
	}
	if cfg.Columns, err = getInt("CHART_COLUMNS"); err != nil {
		return nil, err
	}
	if v := os.Getenv("CHART_BAR_WIDTH"); v != "" {
		cfg.BarWidth, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("CHART_BAR_WIDTH: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if !go_utils.InArray(c.Backend, plot.Backends) {
		return fmt.Errorf("CHART_BACKEND: unknown backend %q", c.Backend)
	}
	switch c.Format {
	case plot.FormatPNG, plot.FormatSVG, plot.FormatPDF:
	default:
		return fmt.Errorf("CHART_FORMAT: unsupported format %q", c.Format)
	}
	if c.Format == plot.FormatPDF && c.Backend == plot.BackendGoChart {
		return fmt.Errorf("CHART_FORMAT: go-chart cannot write pdf")
	}
	if c.BarWidth <= 0 {
		return fmt.Errorf("CHART_BAR_WIDTH: must be positive, got %v", c.BarWidth)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("CHART_WIDTH/CHART_HEIGHT: must not be negative")
	}
	if c.Columns < 0 {
		return fmt.Errorf("CHART_COLUMNS: must not be negative, got %d", c.Columns)
	}
	return nil
}

// FigureOptions параметры фигуры из конфигурации
func (c *Config) FigureOptions() plot.FigureOptions {
	return plot.FigureOptions{
		Backend: c.Backend,
		Format:  c.Format,
		Width:   c.Width,
		Height:  c.Height,
		Columns: c.Columns,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
