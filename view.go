package plot

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// bounds is the part of data space that is visible in the plot area.
type bounds struct {
	minX float64
	maxX float64
	minY float64
	maxY float64
}

func unset() bounds {
	return bounds{
		minX: math.Inf(1),
		maxX: math.Inf(-1),
		minY: math.Inf(1),
		maxY: math.Inf(-1),
	}
}

func (b bounds) isSet() bool {
	return !isInf(b.minX) && !isInf(b.minY)
}

func (b bounds) move(dx, dy float64) bounds {
	return bounds{
		minX: b.minX + dx,
		maxX: b.maxX + dx,
		minY: b.minY + dy,
		maxY: b.maxY + dy,
	}
}

// graphPoints lets the gonum plotter helpers look at a Graph.
type graphPoints struct{ g *Graph }

func (p graphPoints) Len() int {
	return p.g.points()
}

func (p graphPoints) XY(i int) (x, y float64) {
	return p.g.x[i], p.g.y[i]
}

// fitBounds returns the outer bounds of all graphs plus a margin of a tenth
// of the range on every side. Points with an infinite or NaN coordinate are
// left out. Without any data the unit square is used so that an empty figure
// still has axes.
func fitBounds(graphs []*Graph) bounds {
	var finite plotter.XYs
	for _, g := range graphs {
		pts := graphPoints{g}
		for i := 0; i < pts.Len(); i++ {
			x, y := pts.XY(i)
			if isFinite(x) && isFinite(y) {
				finite = append(finite, plotter.XY{X: x, Y: y})
			}
		}
	}

	b := bounds{minX: 0, maxX: 1, minY: 0, maxY: 1}
	if len(finite) > 0 {
		b.minX, b.maxX, b.minY, b.maxY = plotter.XYRange(finite)
	}
	b.minX, b.maxX = widen(b.minX, b.maxX)
	b.minY, b.maxY = widen(b.minY, b.maxY)
	return b
}

// widen adds a margin to both ends of [lo, hi]. A single value gets a margin
// of 1, or more for values so large that 1 would be lost to rounding.
func widen(lo, hi float64) (float64, float64) {
	minMargin := math.Max(abs(lo), abs(hi)) * 1e-9
	var margin float64
	if lo < hi {
		margin = math.Max(hi/10-lo/10, minMargin)
	} else {
		margin = math.Max(1, minMargin)
	}
	return lo - margin, hi + margin
}

// rect is an area on screen, in pixels.
type rect struct {
	x, y, w, h int
}

func (r rect) right() int  { return r.x + r.w - 1 }
func (r rect) bottom() int { return r.y + r.h - 1 }

func (r rect) contains(x, y int) bool {
	return r.x <= x && x <= r.right() && r.y <= y && y <= r.bottom()
}

func newTransformer(b bounds, area rect) transformer {
	xRange := b.maxX - b.minX
	yRange := b.maxY - b.minY
	w, h := float64(area.w-1), float64(area.h-1)
	xToScreen := w / xRange
	yToScreen := h / yRange
	return transformer{
		minX:        b.minX,
		minY:        b.minY,
		xRange:      xRange,
		yRange:      yRange,
		xToScreen:   xToScreen,
		yToScreen:   yToScreen,
		xFromScreen: 1.0 / xToScreen,
		yFromScreen: 1.0 / yToScreen,
		area:        area,
	}
}

type transformer struct {
	minX        float64
	minY        float64
	xRange      float64
	yRange      float64
	xToScreen   float64
	yToScreen   float64
	xFromScreen float64
	yFromScreen float64
	area        rect
}

func (t transformer) toScreen(x, y float64) (screenX, screenY int) {
	screenX = t.area.x + round((x-t.minX)*t.xToScreen)
	screenY = t.area.bottom() - round((y-t.minY)*t.yToScreen)
	return
}

func (t transformer) fromScreen(screenX, screenY int) (x, y float64) {
	x = t.minX + float64(screenX-t.area.x)*t.xFromScreen
	y = t.minY + float64(t.area.bottom()-screenY)*t.yFromScreen
	return
}

// zoom scales the view by scale while keeping the data point under the
// screen position fixed.
func (t transformer) zoom(b bounds, screenX, screenY int, scale float64) bounds {
	mx, my := t.fromScreen(screenX, screenY)
	b.maxX = b.minX + t.xRange*scale
	b.maxY = b.minY + t.yRange*scale
	mx2, my2 := newTransformer(b, t.area).fromScreen(screenX, screenY)
	return b.move(mx-mx2, my-my2)
}

// maxTicks bounds the tick loop for views that are too narrow to be
// resolved at their magnitude.
const maxTicks = 100

// ticks returns the tick positions in [lo, hi], the distance between them
// and the number of decimals needed to tell them apart. An empty or infinite
// range has no ticks.
func ticks(lo, hi float64) (values []float64, step float64, precision int) {
	span := hi - lo
	if !(span > 0) || math.IsInf(span, 0) {
		return nil, 0, 0
	}
	step, precision = calcStepsAndPrecision(span)
	start := (math.Round(lo/step) - 1) * step
	if start+step == start {
		return nil, step, precision
	}
	for i := 0; i < maxTicks; i++ {
		v := start + float64(i)*step
		if v > hi {
			break
		}
		if v >= lo {
			values = append(values, v)
		}
	}
	return values, step, precision
}

func calcStepsAndPrecision(theRange float64) (float64, int) {
	if !(theRange > 0) || math.IsInf(theRange, 0) {
		return 1, 0
	}
	steps := theRange / 10
	scale := float64(1)
	prec := 0
	if steps < 1 {
		for steps < 1 {
			steps *= 10
			scale /= 10
			prec++
		}
	} else {
		for steps > 1 {
			steps /= 10
			scale *= 10
		}
	}

	if theRange/scale < 5 {
		scale *= 0.5
	}
	if theRange/scale > 15 {
		scale *= 2
	}

	return scale, prec
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func isInf(x float64) bool {
	return math.IsInf(x, 1) || math.IsInf(x, -1)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
