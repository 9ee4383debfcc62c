package plot

import (
	"fmt"

	"github.com/gonutz/prototype/draw"
	"gonum.org/v1/plot/plotter"
)

const (
	windowTitle  = "Plot"
	windowWidth  = 800
	windowHeight = 600
)

// Plot opens a window and calls plot once per frame to describe the figure.
// It blocks until the window is closed. Escape closes the window, F11 toggles
// fullscreen and R resets the view. Drag with the left mouse button to move
// the view and use the mouse wheel to zoom.
func Plot(plot func(p *Plotter)) error {
	p := NewPlotter()
	return draw.RunWindow(windowTitle, windowWidth, windowHeight, func(window draw.Window) {
		p.Update(window, plot)
	})
}

// NewPlotter returns a Plotter whose view fits the data of the first frame.
// Use it with Update to draw figures in your own window loop.
func NewPlotter() *Plotter {
	p := &Plotter{}
	p.ResetRanges()
	return p
}

// Update handles the input of the last frame, calls plot to describe the
// figure and draws it to window.
func (p *Plotter) Update(window draw.Window, plot func(p *Plotter)) {
	if window.WasKeyPressed(draw.KeyEscape) {
		window.Close()
		return
	}

	if window.WasKeyPressed(draw.KeyF11) {
		p.fullscreen = !p.fullscreen
	}
	window.SetFullscreen(p.fullscreen)

	if window.WasKeyPressed(draw.KeyR) {
		p.ResetRanges()
	}

	p.Window = window
	p.reset()
	plot(p)
	p.drawFigure()

	if p.doAtEnd != nil {
		p.doAtEnd()
	}
}

type Plotter struct {
	draw.Window
	fullscreen bool
	dragging   bool
	dragX      int
	dragY      int
	view       bounds
	graphs     []*Graph
	doAtEnd    func()

	title  string
	xLabel string
	yLabel string
	legend bool
	grid   bool
}

func (p *Plotter) SetFullscreen(f bool) {
	p.fullscreen = f
	p.dragging = false
}

// ResetRanges makes the next frame fit the view to the data again.
func (p *Plotter) ResetRanges() {
	p.view = unset()
	p.dragging = false
}

func (p *Plotter) reset() {
	p.graphs = p.graphs[:0]
	p.doAtEnd = nil
	p.title, p.xLabel, p.yLabel = "", "", ""
	p.legend, p.grid = false, false
}

// Title is drawn centered above the plot area.
func (p *Plotter) Title(text string) {
	p.title = text
}

// XLabel is drawn centered below the plot area.
func (p *Plotter) XLabel(text string) {
	p.xLabel = text
}

// YLabel is drawn in the top left corner of the plot area.
func (p *Plotter) YLabel(text string) {
	p.yLabel = text
}

// Legend shows a box listing every graph that has a label.
func (p *Plotter) Legend() {
	p.legend = true
}

// Grid draws grid lines at every tick.
func (p *Plotter) Grid() {
	p.grid = true
}

// New adds a graph to the figure. Graphs that are not given a color get the
// next one of the default color cycle.
func (p *Plotter) New() *Graph {
	g := &Graph{
		color: defaultColors[len(p.graphs)%len(defaultColors)],
	}
	p.graphs = append(p.graphs, g)
	return g
}

// Defer registers f to be called after the figure was drawn in this frame.
func (p *Plotter) Defer(f func()) {
	p.doAtEnd = f
}

// MarkerShape selects what is drawn at each data point.
type MarkerShape int

const (
	NoMarker MarkerShape = iota
	Circle
)

type Graph struct {
	x      []float64
	y      []float64
	color  draw.Color
	label  string
	marker MarkerShape
}

// Data sets both x and y values from xys.
func (g *Graph) Data(xys plotter.XYer) *Graph {
	n := xys.Len()
	g.x = make([]float64, n)
	g.y = make([]float64, n)
	for i := 0; i < n; i++ {
		g.x[i], g.y[i] = xys.XY(i)
	}
	return g
}

// X sets the x values. x must be a slice of numbers.
func (g *Graph) X(x any) *Graph {
	g.x = cast(x)
	return g
}

// Y sets the y values. y must be a slice of numbers.
func (g *Graph) Y(y any) *Graph {
	g.y = cast(y)
	return g
}

// XY sets interleaved values x0, y0, x1, y1, ...
func (g *Graph) XY(xy any) *Graph {
	xys := cast(xy)
	if len(xys)%2 != 0 {
		panic("invalid XY values, length is not divisible by 2")
	}
	g.x = make([]float64, len(xys)/2)
	g.y = make([]float64, len(xys)/2)
	for i := range g.x {
		g.x[i] = xys[i*2]
		g.y[i] = xys[i*2+1]
	}
	return g
}

// Label names the graph in the legend.
func (g *Graph) Label(text string) *Graph {
	g.label = text
	return g
}

func (g *Graph) Marker(m MarkerShape) *Graph {
	g.marker = m
	return g
}

func (g *Graph) RGB(red, green, blue uint8) *Graph {
	g.color = RGB(red, green, blue)
	return g
}

// points returns the number of points that have both an x and a y value.
func (g *Graph) points() int {
	return min(len(g.x), len(g.y))
}

type Color = draw.Color

func RGB(r, g, b uint8) Color {
	return draw.RGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

var defaultColors = []Color{
	RGB(31, 119, 180),
	RGB(255, 127, 14),
	RGB(44, 160, 44),
	RGB(214, 39, 40),
	RGB(148, 103, 189),
	RGB(140, 86, 75),
}

type number interface {
	~float64 | ~float32 |
		~int | ~int64 | ~int32 | ~int16 | ~int8 |
		~uint | ~uint64 | ~uint32 | ~uint16 | ~uint8
}

func floats[T number](x []T) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = float64(x[i])
	}
	return out
}

func cast(x any) []float64 {
	switch x := x.(type) {
	case []float64:
		return x
	case []float32:
		return floats(x)
	case []int:
		return floats(x)
	case []int64:
		return floats(x)
	case []int32:
		return floats(x)
	case []int16:
		return floats(x)
	case []int8:
		return floats(x)
	case []uint:
		return floats(x)
	case []uint64:
		return floats(x)
	case []uint32:
		return floats(x)
	case []uint16:
		return floats(x)
	case []uint8:
		return floats(x)
	}
	panic(fmt.Sprintf("invalid type, slice of numbers expected but have %T", x))
}
