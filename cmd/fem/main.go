// Command fem asks for the number of elements, solves the bar problem and
// writes the nodal values of u(x) to data.txt for uplot to show.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/DeltaTestSoftware/uplot/dataset"
	"github.com/DeltaTestSoftware/uplot/fem"
)

const outputPath = "data.txt"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Stdin, os.Stdout, outputPath); err != nil {
		logger.Error("Solve failed.", "error", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, path string) error {
	fmt.Fprint(out, "Number of elements n: ")
	var n int
	if _, err := fmt.Fscan(in, &n); err != nil {
		return pkgerrors.Wrap(err, "read element count")
	}

	coeffs, err := fem.Solve(n)
	if err != nil {
		return err
	}
	if err := dataset.Save(path, fem.Sample(n, coeffs)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Data written to %s\n", path)
	return nil
}
