// Package dataset reads and writes the two-column "x u" text format.
//
// Every non-blank line holds exactly two whitespace separated floating point
// numbers. There is no header and no comment syntax. Reading is strict: the
// first malformed line fails the whole read.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
)

// ErrFieldCount is the cause of a ParseError for a line that does not hold
// exactly two values.
var ErrFieldCount = errors.New("expected exactly two values")

// Sample is one (x, u) data point.
type Sample struct {
	X float64
	U float64
}

// Dataset is the ordered list of samples of one file, in line order.
type Dataset []Sample

var _ plotter.XYer = Dataset(nil)

func (d Dataset) Len() int {
	return len(d)
}

func (d Dataset) XY(i int) (x, y float64) {
	return d[i].X, d[i].U
}

// Xs returns the x values in order.
func (d Dataset) Xs() []float64 {
	xs := make([]float64, len(d))
	for i := range d {
		xs[i] = d[i].X
	}
	return xs
}

// Us returns the u values in order.
func (d Dataset) Us() []float64 {
	us := make([]float64, len(d))
	for i := range d {
		us[i] = d[i].U
	}
	return us
}

// ParseError reports the line that could not be read.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read parses all samples from r. Blank lines are skipped. Lines may be of
// any length. On error no samples are returned.
func Read(r io.Reader) (Dataset, error) {
	var d Dataset
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ParseError{Line: line, Text: text, Err: ErrFieldCount}
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		u, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		d = append(d, Sample{X: x, U: u})
	}
	if err := s.Err(); err != nil {
		return nil, pkgerrors.Wrapf(err, "read line %d", line+1)
	}
	return d, nil
}

// Load reads the data file at path.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "open data file")
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "parse %s", path)
	}
	return d, nil
}

// Write writes d in the two-column format, one sample per line. Values are
// formatted so that Read gives back the exact same numbers.
func Write(w io.Writer, d Dataset) error {
	bw := bufio.NewWriter(w)
	for _, s := range d {
		bw.WriteString(strconv.FormatFloat(s.X, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(s.U, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return pkgerrors.Wrap(bw.Flush(), "write samples")
}

// Save creates or truncates the file at path and writes d to it.
func Save(path string, d Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(err, "create data file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = pkgerrors.Wrap(cerr, "close data file")
		}
	}()
	return Write(f, d)
}
