package scatter

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := NewDocument(DefaultListTemplate)
	require.NoError(t, err)
	return doc
}

func svgOf(t *testing.T, s *Scene) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.WriteSVG(&buf))
	return buf.String()
}

func TestScatterPlotReplacesFigure(t *testing.T) {
	doc := newDocument(t)
	first := doc.ScatterPlot(cars(), "#figure1", carConfig)
	doc.ScatterPlot(cars(), "#figure2", Config{Title: "MPG vs Engine Size", XCol: "EngineSizeCI", YCol: "MPG", RCol: "Price", ColorCol: "Country"})
	second := doc.ScatterPlot(cars(), "#figure1", carConfig)

	figs := doc.Figures()
	require.Len(t, figs, 2)
	assert.Equal(t, "#figure1", figs[0].Selector)
	assert.Equal(t, "#figure2", figs[1].Selector)
	assert.Same(t, second, figs[0])
	assert.NotSame(t, first, second)
}

func TestScatterPlotIdempotent(t *testing.T) {
	doc := newDocument(t)
	records := cars()
	a := svgOf(t, doc.ScatterPlot(records, "#figure1", carConfig).Scene)
	b := svgOf(t, doc.ScatterPlot(records, "#figure1", carConfig).Scene)
	assert.Equal(t, a, b)
	assert.Equal(t, len(records), strings.Count(b, "<circle"))
}

func TestScatterPlotKeepsCommittedRegion(t *testing.T) {
	doc := newDocument(t)
	f := doc.ScatterPlot(cars(), "#figure1", carConfig)
	f.Brush.Handle(Start(0, 0))
	f.Brush.Handle(Move(f.Scene.Width, f.Scene.Height))
	f.Brush.Handle(End())
	require.Equal(t, 4, doc.List.Len())

	g := doc.Rebuild("#figure1")
	r, ok := g.Brush.Region()
	require.True(t, ok)
	assert.Equal(t, g.Scene.PlotArea(), r)
	assert.Equal(t, Committed, g.Brush.State().Phase)
	assert.Equal(t, 4, doc.List.Len())

	g.Brush.Handle(Start(10, 10))
	g.Brush.Handle(End())
	h := doc.Rebuild("#figure1")
	_, ok = h.Brush.Region()
	assert.False(t, ok)
	assert.Zero(t, doc.List.Len())
}

func TestScatterPlotDropsRegionInProgress(t *testing.T) {
	doc := newDocument(t)
	f := doc.ScatterPlot(cars(), "#figure1", carConfig)
	f.Brush.Handle(Start(0, 0))
	f.Brush.Handle(Move(100, 100))

	g := doc.Rebuild("#figure1")
	assert.Equal(t, Idle, g.Brush.State().Phase)
}

func TestRebuildUnknown(t *testing.T) {
	assert.Nil(t, newDocument(t).Rebuild("#nope"))
}

func TestWriteSVG(t *testing.T) {
	doc := newDocument(t)
	f := doc.ScatterPlot(cars(), "#figure1", carConfig)
	out := svgOf(t, f.Scene)

	assert.Contains(t, out, `<svg`)
	assert.Contains(t, out, `transform="translate(60,60)"`)
	assert.Contains(t, out, `class="x-axis"`)
	assert.Contains(t, out, `class="y-axis"`)
	assert.Contains(t, out, `MPG vs Price`)
	assert.Contains(t, out, `transform="rotate(-90)"`)
	assert.Contains(t, out, `id="dot-0"`)
	assert.NotContains(t, out, `class="selection"`)
	assert.NotContains(t, out, `dot selected`)

	f.Brush.Restore(f.Scene.PlotArea())
	out = svgOf(t, f.Scene)
	assert.Contains(t, out, `class="selection"`)
	assert.Equal(t, 4, strings.Count(out, `class="dot selected"`))
}

func TestWriteSVGSkipsNaN(t *testing.T) {
	records := []Record{
		NewRecord(map[string]string{"x": "1", "y": "1", "r": "1"}),
		NewRecord(map[string]string{"x": "?", "y": "2", "r": "2"}),
	}
	out := svgOf(t, Build(records, Config{XCol: "x", YCol: "y", RCol: "r"}))
	assert.Equal(t, 1, strings.Count(out, "<circle"))
}

func TestWriteHTML(t *testing.T) {
	doc := newDocument(t)
	f := doc.ScatterPlot(cars(), "#figure1", carConfig)
	f.Brush.Restore(f.Scene.PlotArea())

	var buf bytes.Buffer
	require.NoError(t, doc.WriteHTML(&buf))
	out := buf.String()

	assert.Contains(t, out, `<div id="figure1">`)
	assert.Contains(t, out, `<ul id="selected-list">`)
	assert.Equal(t, 4, strings.Count(out, "<li>"))
	assert.Contains(t, out, "<li>chevelle: MPG 18, Price $25561.59, Engine Size 307</li>")
}

func TestClearOnIdleFigureEmptiesSharedList(t *testing.T) {
	doc := newDocument(t)
	f1 := doc.ScatterPlot(cars(), "#figure1", carConfig)
	f2 := doc.ScatterPlot(cars(), "#figure2", carConfig)

	f1.Brush.Restore(f1.Scene.PlotArea())
	require.Equal(t, 4, doc.List.Len())
	require.Equal(t, Idle, f2.Brush.State().Phase)

	f2.Brush.Handle(Clear())
	assert.Zero(t, doc.List.Len())
	assert.Empty(t, f2.Brush.Selected())
}

func TestWriteHTMLEmbedsBareSVG(t *testing.T) {
	doc := newDocument(t)
	doc.ScatterPlot(cars(), "#figure1", carConfig)
	doc.ScatterPlot(cars(), "#figure2", carConfig)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteHTML(&buf))
	out := buf.String()

	assert.NotContains(t, out, "<?xml")
	assert.NotContains(t, out, "SVGo")
	assert.Equal(t, 2, strings.Count(out, "<svg"))
	assert.Contains(t, out, "<div id=\"figure1\">\n<svg")
}

func TestWriteSVGExactPositions(t *testing.T) {
	doc := newDocument(t)
	f := doc.ScatterPlot(cars(), "#figure1", carConfig)
	f.Brush.Handle(Start(10.25, 20.5))
	f.Brush.Handle(Move(300.75, 400.125))
	f.Brush.Handle(End())
	out := svgOf(t, f.Scene)

	for _, m := range f.Scene.Markers {
		want := `cx="` + strconv.FormatFloat(m.X, 'f', -1, 64) + `" cy="` + strconv.FormatFloat(m.Y, 'f', -1, 64) + `"`
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, `<rect x="10.25" y="20.5" width="290.5" height="379.625" class="selection"`)
}
