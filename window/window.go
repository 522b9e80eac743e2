// Package window shows scatter plots in an interactive desktop window.
package window

import (
	"errors"
	"fmt"

	"github.com/gonutz/prototype/draw"

	"github.com/DeltaTestSoftware/scatter"
)

const listPanelWidth = 360

// Show opens a window with the document's figures. Only one figure is shown
// at a time, Tab switches to the next one. Dragging with the left mouse
// button brushes, a click without dragging clears the selection.
//
// Keys: Tab next figure, C clear, R redraw, F11 fullscreen, Escape close.
func Show(doc *scatter.Document, title string) error {
	if len(doc.Figures()) == 0 {
		return errors.New("no figures to show")
	}
	v := &viewer{doc: doc}
	return draw.RunWindow(title, scatter.CanvasWidth+listPanelWidth, scatter.CanvasHeight, func(window draw.Window) {
		if window.WasKeyPressed(draw.KeyEscape) {
			window.Close()
			return
		}

		if window.WasKeyPressed(draw.KeyF11) {
			v.fullscreen = !v.fullscreen
		}
		window.SetFullscreen(v.fullscreen)

		fig := v.figure()

		if window.WasKeyPressed(draw.KeyTab) {
			v.release(fig)
			v.current = (v.current + 1) % len(doc.Figures())
			fig = v.figure()
		}

		if window.WasKeyPressed(draw.KeyR) {
			v.release(fig)
			fig = doc.Rebuild(fig.Selector)
		}

		if window.WasKeyPressed(draw.KeyC) {
			fig.Brush.Handle(scatter.Clear())
		}

		m := fig.Scene.Margin
		mouseX, mouseY := window.MousePosition()
		p := scatter.Point{X: float64(mouseX - m.Left), Y: float64(mouseY - m.Top)}
		for _, e := range v.gesture.Update(window.IsMouseDown(draw.LeftButton), p, fig.Scene.PlotArea()) {
			fig.Brush.Handle(e)
		}

		drawScene(window, fig.Scene)
		drawList(window, doc.List)
	})
}

type viewer struct {
	doc        *scatter.Document
	current    int
	fullscreen bool
	gesture    scatter.Gesture
}

func (v *viewer) figure() *scatter.Figure {
	return v.doc.Figures()[v.current]
}

// release ends a drag in progress on fig before the viewer leaves it.
func (v *viewer) release(fig *scatter.Figure) {
	for _, e := range v.gesture.Release() {
		fig.Brush.Handle(e)
	}
}

func toDraw(c scatter.Color, alpha float32) draw.Color {
	return draw.RGBA(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha)
}

func drawScene(window draw.Window, s *scatter.Scene) {
	width, height := window.Size()
	window.FillRect(0, 0, width, height, draw.White)

	ox, oy := s.Margin.Left, s.Margin.Top
	w, h := scatter.Round(s.Width), scatter.Round(s.Height)

	// Axes.
	window.DrawLine(ox, oy+h, ox+w, oy+h, draw.Black)
	window.DrawLine(ox, oy, ox, oy+h, draw.Black)
	for _, t := range s.XTicks {
		x := ox + scatter.Round(t.Pos)
		window.DrawLine(x, oy+h, x, oy+h+6, draw.Black)
		textW, _ := window.GetTextSize(t.Label)
		window.DrawText(t.Label, x-textW/2, oy+h+8, draw.Black)
	}
	for _, t := range s.YTicks {
		y := oy + scatter.Round(t.Pos)
		window.DrawLine(ox-6, y, ox, y, draw.Black)
		textW, textH := window.GetTextSize(t.Label)
		window.DrawText(t.Label, ox-8-textW, y-textH/2, draw.Black)
	}

	// Labels. The window cannot rotate text so the y label sits above its
	// axis.
	drawCentered(window, s.XLabel.Value, ox+scatter.Round(s.XLabel.X), oy+scatter.Round(s.XLabel.Y))
	drawCentered(window, s.YLabel.Value, ox, oy-20)
	drawCentered(window, s.Title.Value, scatter.Round(s.Title.X), scatter.Round(s.Title.Y)-10)

	if r, ok := s.Region(); ok {
		x, y := ox+scatter.Round(r.X0), oy+scatter.Round(r.Y0)
		rw, rh := scatter.Round(r.X1-r.X0), scatter.Round(r.Y1-r.Y0)
		window.FillRect(x, y, rw, rh, draw.RGBA(0.47, 0.47, 0.47, 0.3))
		window.DrawRect(x, y, rw, rh, draw.DarkGray)
	}

	for _, m := range s.Markers {
		if !scatter.Finite(m.X) || !scatter.Finite(m.Y) || !scatter.Finite(m.R) {
			continue
		}
		r := scatter.Round(m.R)
		x, y := ox+scatter.Round(m.X)-r, oy+scatter.Round(m.Y)-r
		window.FillEllipse(x, y, 2*r, 2*r, toDraw(m.Fill, 0.7))
		if m.Selected {
			window.DrawEllipse(x, y, 2*r, 2*r, draw.Black)
		}
	}
}

func drawCentered(window draw.Window, text string, x, y int) {
	textW, _ := window.GetTextSize(text)
	window.DrawText(text, x-textW/2, y, draw.Black)
}

func drawList(window draw.Window, list *scatter.ListView) {
	x := scatter.CanvasWidth + 10
	y := 10
	header := fmt.Sprintf("Selected: %d", list.Len())
	_, textH := window.GetTextSize(header)
	window.DrawText(header, x, y, draw.Black)
	y += textH + 4
	_, height := window.Size()
	for _, line := range list.Lines() {
		if y+textH > height {
			window.DrawText("...", x, y-textH, draw.DarkGray)
			break
		}
		window.DrawText(line, x, y, draw.Black)
		y += textH
	}
}
