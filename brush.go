package scatter

import (
	"fmt"
	"math"
)

type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle in plot area pixels with X0 <= X1 and
// Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectBetween returns the rectangle spanned by two corners.
func RectBetween(a, b Point) Rect {
	return Rect{
		X0: math.Min(a.X, b.X),
		Y0: math.Min(a.Y, b.Y),
		X1: math.Max(a.X, b.X),
		Y1: math.Max(a.Y, b.Y),
	}
}

// Contains reports whether p lies inside r, edges included. NaN positions
// are never inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

func (r Rect) clampPoint(p Point) Point {
	return Point{
		X: math.Max(r.X0, math.Min(r.X1, p.X)),
		Y: math.Max(r.Y0, math.Min(r.Y1, p.Y)),
	}
}

// Clamp limits r to bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	return RectBetween(
		bounds.clampPoint(Point{r.X0, r.Y0}),
		bounds.clampPoint(Point{r.X1, r.Y1}),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", r.X0, r.Y0, r.X1, r.Y1)
}

type Phase int

const (
	Idle Phase = iota
	Dragging
	Committed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

type EventKind int

const (
	// GestureStart begins a new drag at Pos, replacing any region.
	GestureStart EventKind = iota
	// GestureMove extends the drag to Pos.
	GestureMove
	// GestureEnd releases the drag.
	GestureEnd
	// ClearSelection removes the region from outside the gesture.
	ClearSelection
)

type Event struct {
	Kind EventKind
	Pos  Point
}

func Start(x, y float64) Event { return Event{Kind: GestureStart, Pos: Point{x, y}} }
func Move(x, y float64) Event  { return Event{Kind: GestureMove, Pos: Point{x, y}} }
func End() Event               { return Event{Kind: GestureEnd} }
func Clear() Event             { return Event{Kind: ClearSelection} }

// State is the brush state. Region is nil when there is no selection.
type State struct {
	Phase  Phase
	Anchor Point
	Region *Rect
}

// Transition returns the state after e. Positions are clamped to bounds.
// It never modifies s.
func Transition(s State, e Event, bounds Rect) State {
	switch e.Kind {
	case GestureStart:
		p := bounds.clampPoint(e.Pos)
		r := RectBetween(p, p)
		return State{Phase: Dragging, Anchor: p, Region: &r}

	case GestureMove:
		if s.Phase != Dragging {
			return s
		}
		r := RectBetween(s.Anchor, bounds.clampPoint(e.Pos))
		return State{Phase: Dragging, Anchor: s.Anchor, Region: &r}

	case GestureEnd:
		if s.Phase != Dragging {
			return s
		}
		if s.Region == nil || s.Region.Empty() {
			return State{Phase: Idle}
		}
		return State{Phase: Committed, Anchor: s.Anchor, Region: s.Region}

	case ClearSelection:
		return State{Phase: Idle}
	}
	return s
}

func sameRegion(a, b *Rect) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Controller applies brush events to a scene. It keeps the markers'
// Selected flags and the list view in line with the current region.
type Controller struct {
	scene *Scene
	list  *ListView
	state State

	// OnChange, if set, is called after every selection recompute.
	OnChange func(State, []Record)
}

// NewController returns an idle controller. list may be nil.
func NewController(scene *Scene, list *ListView) *Controller {
	c := &Controller{scene: scene, list: list}
	scene.brush = c
	return c
}

func (c *Controller) Scene() *Scene { return c.scene }

func (c *Controller) State() State { return c.state }

// Region returns a copy of the current region.
func (c *Controller) Region() (Rect, bool) {
	if c.state.Region == nil {
		return Rect{}, false
	}
	return *c.state.Region, true
}

// Handle applies e and returns the new state. Every event except a
// release that keeps the region refreshes the selection and the list.
func (c *Controller) Handle(e Event) State {
	prev := c.state
	c.state = Transition(prev, e, c.scene.PlotArea())
	if e.Kind != GestureEnd || !sameRegion(prev.Region, c.state.Region) {
		c.recompute()
	}
	return c.state
}

// Restore installs a committed region, clamped to the plot area. A region
// without area clears the selection.
func (c *Controller) Restore(r Rect) {
	r = r.Clamp(c.scene.PlotArea())
	if r.Empty() {
		c.state = State{Phase: Idle}
	} else {
		c.state = State{Phase: Committed, Anchor: Point{r.X0, r.Y0}, Region: &r}
	}
	c.recompute()
}

func (c *Controller) recompute() {
	for i := range c.scene.Markers {
		m := &c.scene.Markers[i]
		m.Selected = c.state.Region != nil && c.state.Region.Contains(Point{m.X, m.Y})
	}
	sel := c.Selected()
	if c.list != nil {
		c.list.Replace(sel)
	}
	if c.OnChange != nil {
		c.OnChange(c.state, sel)
	}
}

// Selected returns the selected records in data order.
func (c *Controller) Selected() []Record {
	var out []Record
	for _, m := range c.scene.Markers {
		if m.Selected {
			out = append(out, m.Record)
		}
	}
	return out
}
