package scatter

import (
	"github.com/rs/zerolog"
)

// SelectedListID names the list every figure writes its selection to.
const SelectedListID = "#selected-list"

// Figure is a scene mounted at a selector together with its brush.
type Figure struct {
	Selector string
	Scene    *Scene
	Brush    *Controller

	records []Record
}

// Document holds the figures by selector and the shared selection list.
type Document struct {
	Logger zerolog.Logger
	List   *ListView

	figures map[string]*Figure
	order   []string
}

// NewDocument returns an empty document whose list renders lines with
// listTemplate.
func NewDocument(listTemplate string) (*Document, error) {
	list, err := NewListView(listTemplate)
	if err != nil {
		return nil, err
	}
	return &Document{
		Logger:  zerolog.Nop(),
		List:    list,
		figures: map[string]*Figure{},
	}, nil
}

// ScatterPlot draws records at selector. Whatever was drawn there before is
// discarded first; a committed brush region is kept and re-applied to the
// new scene.
func (d *Document) ScatterPlot(records []Record, selector string, cfg Config) *Figure {
	log := d.Logger.With().Str("figure", selector).Logger()

	old, exists := d.figures[selector]
	if !exists {
		d.order = append(d.order, selector)
	}

	f := &Figure{
		Selector: selector,
		Scene:    Build(records, cfg),
		records:  records,
	}
	f.Brush = NewController(f.Scene, d.List)
	f.Brush.OnChange = func(s State, sel []Record) {
		ev := log.Debug().Stringer("phase", s.Phase).Int("selected", len(sel))
		if s.Region != nil {
			ev = ev.Stringer("region", *s.Region)
		}
		ev.Msg("selection changed")
	}

	if exists {
		if r, ok := old.Brush.Region(); ok && old.Brush.State().Phase == Committed {
			f.Brush.Restore(r)
		}
	}
	d.figures[selector] = f

	log.Info().
		Str("title", cfg.Title).
		Int("markers", len(f.Scene.Markers)).
		Bool("replaced", exists).
		Msg("scatter plot rendered")
	return f
}

// Rebuild draws the figure at selector again from the same data and
// configuration.
func (d *Document) Rebuild(selector string) *Figure {
	f, ok := d.figures[selector]
	if !ok {
		return nil
	}
	return d.ScatterPlot(f.records, selector, f.Scene.Config)
}

func (d *Document) Figure(selector string) (*Figure, bool) {
	f, ok := d.figures[selector]
	return f, ok
}

// Figures returns the figures in the order they were first mounted.
func (d *Document) Figures() []*Figure {
	out := make([]*Figure, 0, len(d.order))
	for _, sel := range d.order {
		out = append(out, d.figures[sel])
	}
	return out
}
