package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonutz/prototype/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plot "github.com/DeltaTestSoftware/uplot"
	"github.com/DeltaTestSoftware/uplot/dataset"
	"github.com/DeltaTestSoftware/uplot/plottest"
)

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type recorder struct {
	calls int
	got   dataset.Dataset
}

func (r *recorder) show(d dataset.Dataset) error {
	r.calls++
	r.got = d
	return nil
}

func TestRunShowsAllSamples(t *testing.T) {
	var r recorder
	err := run(writeData(t, "0 0\n1 1\n2 4\n"), r.show)
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, dataset.Dataset{{X: 0, U: 0}, {X: 1, U: 1}, {X: 2, U: 4}}, r.got)
}

func TestRunShowsEmptyFile(t *testing.T) {
	var r recorder
	require.NoError(t, run(writeData(t, ""), r.show))
	assert.Equal(t, 1, r.calls)
	assert.Empty(t, r.got)
}

func TestRunMalformedLineShowsNothing(t *testing.T) {
	var r recorder
	err := run(writeData(t, "0 0\nabc 1\n"), r.show)
	var perr *dataset.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Zero(t, r.calls)
}

func TestRunMissingFileShowsNothing(t *testing.T) {
	var r recorder
	err := run(filepath.Join(t.TempDir(), "data.txt"), r.show)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Zero(t, r.calls)
}

func drawFigure(d dataset.Dataset) *plottest.Window {
	w := plottest.New()
	plot.NewPlotter().Update(w, figure(d))
	return w
}

func TestFigureDrawsLabelsLegendAndMarkers(t *testing.T) {
	w := drawFigure(dataset.Dataset{{X: 0, U: 0}, {X: 1, U: 1}, {X: 2, U: 4}})

	title := w.TextsEqual("Wykres u(x)")
	require.Len(t, title, 1)
	assert.Greater(t, title[0].Scale, float32(1))
	assert.Len(t, w.TextsEqual("x"), 1)
	// y axis label and legend entry
	assert.Len(t, w.TextsEqual("u(x)"), 2)

	// one circle per sample plus the one in the legend
	require.Len(t, w.Ellipses, 4)
	graphColor := w.Ellipses[0].Color
	for _, e := range w.Ellipses {
		assert.Equal(t, graphColor, e.Color)
		assert.Equal(t, e.W, e.H)
	}
	// two segments between three samples plus the legend line
	assert.Len(t, w.LinesColored(graphColor), 3)
	assert.NotEmpty(t, w.LinesColored(draw.DarkGray), "grid")
	assert.False(t, w.Closed)
}

func TestFigureOfEmptyDatasetIsStillLabeled(t *testing.T) {
	w := drawFigure(nil)

	assert.Len(t, w.TextsEqual("Wykres u(x)"), 1)
	assert.Len(t, w.TextsEqual("x"), 1)
	assert.Len(t, w.TextsEqual("u(x)"), 2)
	assert.Len(t, w.Ellipses, 1, "only the legend marker")
	assert.NotEmpty(t, w.LinesColored(draw.DarkGray), "grid")
}
