// Command uplot shows the samples in ./data.txt as a plot of u(x).
package main

import (
	"log/slog"
	"os"

	pkgerrors "github.com/pkg/errors"

	plot "github.com/DeltaTestSoftware/uplot"
	"github.com/DeltaTestSoftware/uplot/dataset"
)

const dataPath = "./data.txt"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(dataPath, show); err != nil {
		logger.Error("Plot failed.", "path", dataPath, "error", err)
		os.Exit(1)
	}
}

// run loads the data file completely before anything is shown, so a broken
// file never opens a window.
func run(path string, show func(dataset.Dataset) error) error {
	d, err := dataset.Load(path)
	if err != nil {
		return err
	}
	return show(d)
}

func show(d dataset.Dataset) error {
	return pkgerrors.Wrap(plot.Plot(figure(d)), "show plot window")
}

// figure describes the plot of u(x) for d.
func figure(d dataset.Dataset) func(p *plot.Plotter) {
	return func(p *plot.Plotter) {
		p.New().Data(d).Label("u(x)").Marker(plot.Circle)
		p.XLabel("x")
		p.YLabel("u(x)")
		p.Title("Wykres u(x)")
		p.Legend()
		p.Grid()
	}
}
