package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGesture(t *testing.T) {
	area := Rect{X0: 0, Y0: 0, X1: 480, Y1: 480}
	var g Gesture

	assert.Empty(t, g.Update(false, Point{10, 10}, area))
	assert.Equal(t, []Event{Start(10, 10)}, g.Update(true, Point{10, 10}, area))
	assert.Empty(t, g.Update(true, Point{10, 10}, area), "no move without motion")
	assert.Equal(t, []Event{Move(50, 60)}, g.Update(true, Point{50, 60}, area))
	assert.Equal(t, []Event{Move(600, 60)}, g.Update(true, Point{600, 60}, area), "leaving the area keeps brushing")
	assert.Equal(t, []Event{End()}, g.Update(false, Point{600, 60}, area))
	assert.Empty(t, g.Update(false, Point{600, 60}, area))
}

func TestGesturePressOutsideArea(t *testing.T) {
	area := Rect{X0: 0, Y0: 0, X1: 480, Y1: 480}
	var g Gesture

	assert.Empty(t, g.Update(true, Point{-20, 10}, area))
	assert.Empty(t, g.Update(true, Point{30, 10}, area), "dragging into the area does not start")
	assert.Empty(t, g.Update(false, Point{30, 10}, area))
	assert.Equal(t, []Event{Start(30, 10)}, g.Update(true, Point{30, 10}, area))
}

func TestGestureDrivesController(t *testing.T) {
	s, list := threeRecords(t)
	c := NewController(s, list)
	area := s.PlotArea()

	var g Gesture
	for _, step := range []struct {
		down bool
		p    Point
	}{
		{true, Point{0, 0}},
		{true, Point{250, 480}},
		{false, Point{250, 480}},
	} {
		for _, e := range g.Update(step.down, step.p, area) {
			c.Handle(e)
		}
	}
	assert.Equal(t, Committed, c.State().Phase)
	assert.Equal(t, 2, list.Len())
}

func TestGestureRelease(t *testing.T) {
	area := Rect{X0: 0, Y0: 0, X1: 480, Y1: 480}
	var g Gesture

	assert.Empty(t, g.Release(), "nothing to release")

	g.Update(true, Point{10, 10}, area)
	g.Update(true, Point{90, 90}, area)
	assert.Equal(t, []Event{End()}, g.Release())
	assert.Empty(t, g.Release())

	// After a release the next polled press starts a fresh gesture.
	assert.Equal(t, []Event{Start(90, 90)}, g.Update(true, Point{90, 90}, area))
}

func TestGestureReleaseCommitsLeftFigure(t *testing.T) {
	s, list := threeRecords(t)
	c := NewController(s, list)
	area := s.PlotArea()

	var g Gesture
	for _, e := range g.Update(true, Point{0, 0}, area) {
		c.Handle(e)
	}
	for _, e := range g.Update(true, Point{250, 480}, area) {
		c.Handle(e)
	}
	for _, e := range g.Release() {
		c.Handle(e)
	}
	assert.Equal(t, Committed, c.State().Phase)
	assert.Equal(t, 2, list.Len())
}
