// Package plottest provides a draw.Window that records what is drawn to it,
// for testing figures without opening a real window.
package plottest

import "github.com/gonutz/prototype/draw"

// Text sizes are fixed per character so that layouts are predictable.
const (
	CharWidth  = 8
	CharHeight = 16
)

type Text struct {
	Text  string
	X, Y  int
	Scale float32
	Color draw.Color
}

type Line struct {
	FromX, FromY int
	ToX, ToY     int
	Color        draw.Color
}

type Shape struct {
	X, Y, W, H int
	Color      draw.Color
}

// Window records the drawing calls of one or more frames. Only the methods
// used for plotting are implemented, calling any other draw.Window method
// panics.
type Window struct {
	draw.Window

	Width, Height  int
	MouseX, MouseY int
	Pressed        map[draw.Key]bool

	Closed     bool
	Fullscreen bool
	Texts      []Text
	Lines      []Line
	Points     []Shape
	Rects      []Shape
	FilledRect []Shape
	Ellipses   []Shape
}

// New returns an 800x600 window with the mouse outside of it.
func New() *Window {
	return &Window{
		Width:   800,
		Height:  600,
		MouseX:  -1,
		MouseY:  -1,
		Pressed: map[draw.Key]bool{},
	}
}

// Reset forgets everything drawn so far.
func (w *Window) Reset() {
	w.Texts = nil
	w.Lines = nil
	w.Points = nil
	w.Rects = nil
	w.FilledRect = nil
	w.Ellipses = nil
}

// TextsEqual returns all drawn texts that equal s.
func (w *Window) TextsEqual(s string) []Text {
	var found []Text
	for _, t := range w.Texts {
		if t.Text == s {
			found = append(found, t)
		}
	}
	return found
}

// LinesColored returns all drawn lines with color c.
func (w *Window) LinesColored(c draw.Color) []Line {
	var found []Line
	for _, l := range w.Lines {
		if l.Color == c {
			found = append(found, l)
		}
	}
	return found
}

func (w *Window) Close() {
	w.Closed = true
}

func (w *Window) Size() (int, int) {
	return w.Width, w.Height
}

func (w *Window) SetFullscreen(f bool) {
	w.Fullscreen = f
}

func (w *Window) WasKeyPressed(key draw.Key) bool {
	return w.Pressed[key]
}

func (w *Window) IsMouseDown(draw.MouseButton) bool {
	return false
}

func (w *Window) MousePosition() (int, int) {
	return w.MouseX, w.MouseY
}

func (w *Window) MouseWheelY() float64 {
	return 0
}

func (w *Window) DrawPoint(x, y int, c draw.Color) {
	w.Points = append(w.Points, Shape{x, y, 1, 1, c})
}

func (w *Window) DrawLine(fromX, fromY, toX, toY int, c draw.Color) {
	w.Lines = append(w.Lines, Line{fromX, fromY, toX, toY, c})
}

func (w *Window) DrawRect(x, y, width, height int, c draw.Color) {
	w.Rects = append(w.Rects, Shape{x, y, width, height, c})
}

func (w *Window) FillRect(x, y, width, height int, c draw.Color) {
	w.FilledRect = append(w.FilledRect, Shape{x, y, width, height, c})
}

func (w *Window) FillEllipse(x, y, width, height int, c draw.Color) {
	w.Ellipses = append(w.Ellipses, Shape{x, y, width, height, c})
}

func (w *Window) GetTextSize(text string) (int, int) {
	return w.GetScaledTextSize(text, 1)
}

func (w *Window) GetScaledTextSize(text string, scale float32) (int, int) {
	n := len([]rune(text))
	return int(float32(n*CharWidth) * scale), int(CharHeight * scale)
}

func (w *Window) DrawText(text string, x, y int, c draw.Color) {
	w.DrawScaledText(text, x, y, 1, c)
}

func (w *Window) DrawScaledText(text string, x, y int, scale float32, c draw.Color) {
	w.Texts = append(w.Texts, Text{text, x, y, scale, c})
}
