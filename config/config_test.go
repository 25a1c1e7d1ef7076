package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pivolan/grouped_bars/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"CHART_BACKEND", "CHART_FORMAT", "CHART_OUTPUT_DIR", "CHART_WIDTH", "CHART_HEIGHT", "CHART_COLUMNS", "CHART_BAR_WIDTH"} {
		// godotenv не перезаписывает существующие переменные
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, plot.BackendGoChart, cfg.Backend)
	assert.Equal(t, plot.FormatPNG, cfg.Format)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, DefaultBarWidth, cfg.BarWidth)
	assert.Zero(t, cfg.Width)
	assert.Zero(t, cfg.Height)
	assert.Zero(t, cfg.Columns)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), ".env")
	content := "CHART_BACKEND=gonum\nCHART_FORMAT=pdf\nCHART_WIDTH=800\nCHART_HEIGHT=450\nCHART_BAR_WIDTH=0.3\nCHART_OUTPUT_DIR=charts\nCHART_COLUMNS=40\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, plot.BackendGonum, cfg.Backend)
	assert.Equal(t, plot.FormatPDF, cfg.Format)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 450, cfg.Height)
	assert.Equal(t, 0.3, cfg.BarWidth)
	assert.Equal(t, "charts", cfg.OutputDir)

	assert.Equal(t, 40, cfg.Columns)

	o := cfg.FigureOptions()
	assert.Equal(t, "pdf", o.Extension())
	assert.Equal(t, 40, o.Columns)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CHART_BACKEND", "matplotlib"},
		{"CHART_FORMAT", "bmp"},
		{"CHART_FORMAT", "pdf"}, // go-chart по умолчанию
		{"CHART_WIDTH", "wide"},
		{"CHART_HEIGHT", "-1"},
		{"CHART_COLUMNS", "-3"},
		{"CHART_COLUMNS", "many"},
		{"CHART_BAR_WIDTH", "0"},
		{"CHART_BAR_WIDTH", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestValidateBackends(t *testing.T) {
	for _, backend := range plot.Backends {
		cfg := &Config{Backend: backend, Format: plot.FormatSVG, BarWidth: DefaultBarWidth}
		assert.NoError(t, cfg.Validate(), backend)
	}

	cfg := &Config{Backend: "Gochart", Format: plot.FormatSVG, BarWidth: DefaultBarWidth}
	assert.ErrorContains(t, cfg.Validate(), "unknown backend")
}
