package scatter

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const fontStyle = `font-family="Helvetica,Arial,sans-serif" font-size="12px"`

// WriteSVG draws the scene as a standalone SVG document.
func (s *Scene) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(CanvasWidth, CanvasHeight, fontStyle)

	canvas.Group(`class="chart"`, fmt.Sprintf(`transform="translate(%d,%d)"`, s.Margin.Left, s.Margin.Top))
	s.writeXAxis(canvas)
	s.writeYAxis(canvas)
	writeText(canvas, s.XLabel, "axis-label")
	writeText(canvas, s.YLabel, "axis-label")
	s.writeBrush(canvas)
	s.writeMarkers(canvas)
	canvas.Gend()

	writeText(canvas, s.Title, "title")
	canvas.End()
	return bw.Flush()
}

func (s *Scene) writeXAxis(canvas *svg.SVG) {
	h := Round(s.Height)
	canvas.Group(`class="x-axis"`, fmt.Sprintf(`transform="translate(0,%d)"`, h))
	canvas.Line(0, 0, Round(s.Width), 0, "stroke:#000")
	for _, t := range s.XTicks {
		x := Round(t.Pos)
		canvas.Line(x, 0, x, 6, "stroke:#000")
		canvas.Text(x, 9, t.Label, `text-anchor="middle"`, `dy="0.71em"`)
	}
	canvas.Gend()
}

func (s *Scene) writeYAxis(canvas *svg.SVG) {
	canvas.Group(`class="y-axis"`)
	canvas.Line(0, 0, 0, Round(s.Height), "stroke:#000")
	for _, t := range s.YTicks {
		y := Round(t.Pos)
		canvas.Line(-6, y, 0, y, "stroke:#000")
		canvas.Text(-9, y, t.Label, `text-anchor="end"`, `dy="0.32em"`)
	}
	canvas.Gend()
}

func writeText(canvas *svg.SVG, t Text, class string) {
	attrs := []string{fmt.Sprintf(`class="%s"`, class), `text-anchor="middle"`}
	if t.Rotate != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g)"`, t.Rotate))
	}
	canvas.Text(Round(t.X), Round(t.Y), t.Value, attrs...)
}

func (s *Scene) writeBrush(canvas *svg.SVG) {
	canvas.Group(`class="brush"`)
	if r, ok := s.Region(); ok {
		fmt.Fprintf(canvas.Writer, `<rect x="%s" y="%s" width="%s" height="%s" class="selection" style="fill:#777;fill-opacity:0.3;stroke:#fff"/>`+"\n",
			num(r.X0), num(r.Y0), num(r.X1-r.X0), num(r.Y1-r.Y0))
	}
	canvas.Gend()
}

// Markers and the brush are written with exact positions, svgo only takes
// whole pixels. Selection is decided on the exact positions too.
func (s *Scene) writeMarkers(canvas *svg.SVG) {
	for _, m := range s.Markers {
		if !Finite(m.X) || !Finite(m.Y) || !Finite(m.R) {
			continue
		}
		class := "dot"
		style := "opacity:0.7;fill:" + Hex(m.Fill)
		if m.Selected {
			class += " selected"
			style += ";stroke:#000;stroke-width:2"
		}
		fmt.Fprintf(canvas.Writer, `<circle cx="%s" cy="%s" r="%s" class="%s" id="dot-%d" style="%s"/>`+"\n",
			num(m.X), num(m.Y), num(m.R), class, m.Index, style)
	}
}

// Region returns the brush region of the controller attached to s.
func (s *Scene) Region() (Rect, bool) {
	if s.brush == nil {
		return Rect{}, false
	}
	return s.brush.Region()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Finite reports whether f can be drawn.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// WriteHTML writes a page with every figure and the selection list.
func (d *Document) WriteHTML(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "<!DOCTYPE html>")
	fmt.Fprintln(bw, `<html><head><meta charset="utf-8"><title>Scatter plots</title></head><body>`)
	for _, f := range d.Figures() {
		fmt.Fprintf(bw, "<div id=\"%s\">\n", html.EscapeString(elementID(f.Selector)))
		if err := f.Scene.writeInline(bw); err != nil {
			return err
		}
		fmt.Fprintln(bw, "</div>")
	}
	fmt.Fprintf(bw, "<ul id=\"%s\">\n", elementID(SelectedListID))
	for _, line := range d.List.Lines() {
		fmt.Fprintf(bw, "<li>%s</li>\n", html.EscapeString(line))
	}
	fmt.Fprintln(bw, "</ul>")
	fmt.Fprintln(bw, "</body></html>")
	return bw.Flush()
}

var svgPrologue = regexp.MustCompile(`(?s)^.*?(<svg)|<!--[^>]*SVGo[^>]*-->\n?`)

// writeInline writes the scene's svg element without the XML declaration
// and generator comment, for embedding in a page.
func (s *Scene) writeInline(w io.Writer) error {
	var buf bytes.Buffer
	if err := s.WriteSVG(&buf); err != nil {
		return err
	}
	_, err := w.Write(svgPrologue.ReplaceAll(buf.Bytes(), []byte("$1")))
	return err
}

func elementID(selector string) string {
	return strings.TrimPrefix(selector, "#")
}
