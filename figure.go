package plot

import (
	"fmt"
	"math"

	"github.com/gonutz/prototype/draw"
)

const (
	padding     = 8
	titleScale  = 1.5
	markerSize  = 7
	legendLine  = 24
	tickLength  = 4
	zoomPerStep = 1.1
)

var (
	background = draw.Black
	foreground = draw.White
	gridColor  = draw.DarkGray
	frameColor = draw.Gray
)

func (p *Plotter) drawFigure() {
	// The user does not need to specify values for x. If unspecified, we just
	// make x count up like: 0, 1, 2, 3, 4, ...
	for _, g := range p.graphs {
		if len(g.x) == 0 {
			g.x = make([]float64, len(g.y))
			for i := range g.x {
				g.x[i] = float64(i)
			}
		}
	}

	if !p.view.isSet() {
		p.view = fitBounds(p.graphs)
	}

	area := p.plotArea()
	if area.w < 2 || area.h < 2 {
		return
	}
	t := p.moveView(area)

	xTicks, xStep, xPrecision := ticks(p.view.minX, p.view.maxX)
	yTicks, yStep, yPrecision := ticks(p.view.minY, p.view.maxY)

	if p.grid {
		for _, x := range xTicks {
			sx, _ := t.toScreen(x, 0)
			p.DrawLine(sx, area.y, sx, area.bottom()+1, gridColor)
		}
		for _, y := range yTicks {
			_, sy := t.toScreen(0, y)
			p.DrawLine(area.x, sy, area.right()+1, sy, gridColor)
		}
	}

	// The axes cross at the origin. If it is out of view, they stick to the
	// nearest edge of the plot area.
	x0, y0 := t.toScreen(0, 0)
	originVisible := area.contains(x0, y0)
	x0 = clamp(x0, area.x, area.right())
	y0 = clamp(y0, area.y, area.bottom())
	p.DrawLine(area.x, y0, area.right()+1, y0, foreground)
	p.DrawLine(x0, area.y, x0, area.bottom()+1, foreground)

	for _, g := range p.graphs {
		p.drawGraph(g, t)
	}

	// Lines may leave the plot area, paint over everything outside of it.
	width, height := p.Size()
	p.FillRect(0, 0, width, area.y, background)
	p.FillRect(0, area.bottom()+1, width, height-area.bottom()-1, background)
	p.FillRect(0, 0, area.x, height, background)
	p.FillRect(area.right()+1, 0, width-area.right()-1, height, background)
	p.DrawRect(area.x-1, area.y-1, area.w+2, area.h+2, frameColor)

	for _, x := range xTicks {
		// The origin is not labeled where the axes cross.
		if originVisible && abs(x) < xStep/10 {
			continue
		}
		tickX, _ := t.toScreen(x, 0)
		tickY := y0
		p.DrawLine(tickX, tickY-tickLength+1, tickX, tickY+tickLength, foreground)
		text := fmt.Sprintf("%.*f", xPrecision, x)
		textW, textH := p.GetTextSize(text)
		textY := tickY + tickLength + 1
		if textY+textH > area.bottom() && y0 != area.bottom() {
			textY = tickY - tickLength - textH
		}
		p.DrawText(text, tickX-textW/2, textY, foreground)
	}

	for _, y := range yTicks {
		if originVisible && abs(y) < yStep/10 {
			continue
		}
		_, tickY := t.toScreen(0, y)
		tickX := x0
		p.DrawLine(tickX-tickLength+1, tickY, tickX+tickLength, tickY, foreground)
		text := fmt.Sprintf("%.*f", yPrecision, y)
		textW, textH := p.GetTextSize(text)
		textX := tickX - tickLength - 1 - textW
		if textX < area.x {
			textX = tickX + tickLength + 2
		}
		p.DrawText(text, textX, tickY-textH/2, foreground)
	}

	p.drawLabels(area)
	if p.legend {
		p.drawLegend(area)
	}

	// Write the current mouse position in the lower right hand corner.
	mouseX, mouseY := p.MousePosition()
	if area.contains(mouseX, mouseY) {
		mx, my := t.fromScreen(mouseX, mouseY)
		mouseText := fmt.Sprintf("%.*f %.*f", xPrecision+1, mx, yPrecision+1, my)
		textW, textH := p.GetTextSize(mouseText)
		p.DrawText(mouseText, width-textW, height-textH, foreground)
	}
}

// plotArea is the window minus the space for the title and the x label.
func (p *Plotter) plotArea() rect {
	width, height := p.Size()
	_, textH := p.GetTextSize("0")

	top := padding
	if p.title != "" {
		_, titleH := p.GetScaledTextSize(p.title, titleScale)
		top += titleH + padding
	}
	bottom := textH + padding
	if p.xLabel != "" {
		bottom += textH + padding
	}
	return rect{
		x: padding,
		y: top,
		w: width - 2*padding,
		h: height - top - bottom,
	}
}

// moveView applies dragging and zooming with the mouse to the view and
// returns the resulting transformer.
func (p *Plotter) moveView(area rect) transformer {
	mouseX, mouseY := p.MousePosition()
	if p.IsMouseDown(draw.LeftButton) {
		if !p.dragging {
			p.dragX, p.dragY = mouseX, mouseY
			p.dragging = true
		}
	} else {
		p.dragging = false
	}

	t := newTransformer(p.view, area)

	if p.dragging {
		screenDx := p.dragX - mouseX
		screenDy := mouseY - p.dragY
		if screenDx != 0 || screenDy != 0 {
			p.view = p.view.move(
				float64(screenDx)*t.xFromScreen,
				float64(screenDy)*t.yFromScreen,
			)
			p.dragX, p.dragY = mouseX, mouseY
			t = newTransformer(p.view, area)
		}
	}

	if wheelY := p.MouseWheelY(); wheelY != 0 {
		p.view = t.zoom(p.view, mouseX, mouseY, math.Pow(zoomPerStep, -wheelY))
		t = newTransformer(p.view, area)
	}

	return t
}

func (p *Plotter) drawGraph(g *Graph, t transformer) {
	n := g.points()
	if n == 0 {
		return
	}

	x, y := t.toScreen(g.x[0], g.y[0])
	p.drawMarker(g, x, y)
	for i := 1; i < n; i++ {
		x2, y2 := t.toScreen(g.x[i], g.y[i])
		p.DrawLine(x, y, x2, y2, g.color)
		p.drawMarker(g, x2, y2)
		x, y = x2, y2
	}
	// DrawLine does not draw the last point in a line, so we have to draw
	// the very last line in the graph ourselves.
	p.DrawPoint(x, y, g.color)
}

func (p *Plotter) drawMarker(g *Graph, x, y int) {
	if g.marker == Circle {
		p.FillEllipse(x-markerSize/2, y-markerSize/2, markerSize, markerSize, g.color)
	}
}

func (p *Plotter) drawLabels(area rect) {
	width, height := p.Size()

	if p.title != "" {
		w, _ := p.GetScaledTextSize(p.title, titleScale)
		p.DrawScaledText(p.title, (width-w)/2, padding, titleScale, foreground)
	}

	if p.xLabel != "" {
		w, h := p.GetTextSize(p.xLabel)
		p.DrawText(p.xLabel, area.x+(area.w-w)/2, height-h-padding/2, foreground)
	}

	if p.yLabel != "" {
		p.DrawText(p.yLabel, area.x+padding/2, area.y+padding/2, foreground)
	}
}

func (p *Plotter) drawLegend(area rect) {
	var labeled []*Graph
	textW, textH := 0, 0
	for _, g := range p.graphs {
		if g.label == "" {
			continue
		}
		labeled = append(labeled, g)
		w, h := p.GetTextSize(g.label)
		textW = max(textW, w)
		textH = max(textH, h)
	}
	if len(labeled) == 0 {
		return
	}

	rowH := max(textH, markerSize) + padding/2
	boxW := padding + legendLine + padding + textW + padding
	boxH := padding + len(labeled)*rowH - padding/2 + padding
	boxX := area.right() - padding - boxW
	boxY := area.y + padding

	p.FillRect(boxX, boxY, boxW, boxH, background)
	p.DrawRect(boxX, boxY, boxW, boxH, frameColor)

	y := boxY + padding
	for _, g := range labeled {
		midY := y + rowH/2 - padding/4
		lineX := boxX + padding
		p.DrawLine(lineX, midY, lineX+legendLine, midY, g.color)
		p.drawMarker(g, lineX+legendLine/2, midY)
		_, h := p.GetTextSize(g.label)
		p.DrawText(g.label, lineX+legendLine+padding, midY-h/2, foreground)
		y += rowH
	}
}
