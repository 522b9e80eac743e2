package scatter

// Gesture turns a pointer state polled once per frame into brush events.
// A press only starts a gesture inside the plot area.
type Gesture struct {
	down     bool
	brushing bool
	last     Point
}

func (g *Gesture) Update(down bool, p Point, area Rect) []Event {
	switch {
	case down && !g.down:
		g.down = true
		if !area.Contains(p) {
			return nil
		}
		g.brushing = true
		g.last = p
		return []Event{Start(p.X, p.Y)}

	case down && g.brushing && p != g.last:
		g.last = p
		return []Event{Move(p.X, p.Y)}

	case !down && g.down:
		g.down = false
		if !g.brushing {
			return nil
		}
		g.brushing = false
		return []Event{End()}
	}
	return nil
}

// Release ends the gesture as if the button went up, whatever the pointer
// does next. The next press starts a new gesture.
func (g *Gesture) Release() []Event {
	brushing := g.brushing
	*g = Gesture{}
	if !brushing {
		return nil
	}
	return []Event{End()}
}
