package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/pageviews/internal/config"
)

const csvData = `date,value
2016-05-09,1201
2016-05-10,2102
2016-06-01,2500
2016-12-24,1000
2017-01-05,4100
2017-03-01,6000
2017-03-03,95000
2017-05-09,3
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "views.csv")
	require.NoError(t, os.WriteFile(input, []byte(csvData), 0644))

	conf := config.Default()
	conf.Input = input
	conf.OutputDir = filepath.Join(dir, "charts")
	conf.DPI = 30
	conf.Summary = "summary.xlsx"
	conf.LogLevel = "warn"

	require.NoError(t, run(conf))
	for _, name := range []string{"line_plot.png", "bar_plot.png", "box_plot.png", "summary.xlsx"} {
		info, err := os.Stat(filepath.Join(conf.OutputDir, name))
		if assert.NoError(t, err, name) {
			assert.Positive(t, info.Size(), name)
		}
	}
}

func TestRunFails(t *testing.T) {
	conf := config.Default()
	conf.Input = filepath.Join(t.TempDir(), "missing.csv")
	conf.OutputDir = t.TempDir()
	conf.LogLevel = "error"
	assert.Error(t, run(conf))

	conf.LogLevel = "chatty"
	assert.Error(t, run(conf))
}
