package scatter

// Canvas size of every scene.
const (
	CanvasWidth  = 600
	CanvasHeight = 600
)

// Pixel range of the marker radius.
const (
	MinRadius = 3
	MaxRadius = 15
)

// AxisTicks is the approximate number of ticks per axis.
const AxisTicks = 5

// niceTicks is the tick count the domains are rounded for.
const niceTicks = 10

type Margin struct {
	Top    int `mapstructure:"top"`
	Right  int `mapstructure:"right"`
	Bottom int `mapstructure:"bottom"`
	Left   int `mapstructure:"left"`
}

var DefaultMargin = Margin{Top: 60, Right: 60, Bottom: 60, Left: 60}

// Config selects the columns a scene plots. Empty column names are not
// checked, they just plot NaN.
type Config struct {
	Title    string `mapstructure:"title"`
	XCol     string `mapstructure:"x"`
	YCol     string `mapstructure:"y"`
	RCol     string `mapstructure:"r"`
	ColorCol string `mapstructure:"color"`
	Margin   Margin `mapstructure:"margin"`
}

func (c Config) margin() Margin {
	if c.Margin == (Margin{}) {
		return DefaultMargin
	}
	return c.Margin
}

// Marker is the circle drawn for one record. Positions are relative to the
// plot area, whose origin is the top left corner inside the margins.
type Marker struct {
	Index    int
	Record   Record
	X, Y     float64
	R        float64
	Fill     Color
	Selected bool
}

// Text is a label placed at a fixed layout position. Rotate is in degrees.
type Text struct {
	X, Y   float64
	Rotate float64
	Value  string
}

type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Scene is everything drawn for one scatter plot.
type Scene struct {
	Config Config
	Margin Margin
	Width  float64
	Height float64

	X, Y, R Linear
	Colors  *Ordinal

	XTicks, YTicks []Tick
	XLabel, YLabel Text
	Title          Text

	Markers []Marker

	brush *Controller
}

// Build lays out a scene for records. The records are referenced by the
// markers, not copied.
func Build(records []Record, cfg Config) *Scene {
	m := cfg.margin()
	s := &Scene{
		Config: cfg,
		Margin: m,
		Width:  float64(CanvasWidth - m.Left - m.Right),
		Height: float64(CanvasHeight - m.Top - m.Bottom),
		Colors: NewOrdinal(Category10),
	}

	xs := column(records, cfg.XCol)
	ys := column(records, cfg.YCol)
	rs := column(records, cfg.RCol)

	s.X = NewLinear(xs, 0, s.Width).Nice(niceTicks)
	s.Y = NewLinear(ys, s.Height, 0).Nice(niceTicks)
	s.R = NewLinear(rs, MinRadius, MaxRadius)

	s.XTicks = ticks(s.X)
	s.YTicks = ticks(s.Y)

	s.XLabel = Text{X: s.Width / 2, Y: s.Height + 40, Value: cfg.XCol}
	s.YLabel = Text{X: -s.Height / 2, Y: -40, Rotate: -90, Value: cfg.YCol}
	s.Title = Text{X: CanvasWidth / 2, Y: 30, Value: cfg.Title}

	s.Markers = make([]Marker, len(records))
	for i, rec := range records {
		s.Markers[i] = Marker{
			Index:  i,
			Record: rec,
			X:      s.X.Map(xs[i]),
			Y:      s.Y.Map(ys[i]),
			R:      s.R.Map(rs[i]),
			Fill:   s.Colors.Map(rec.Text(cfg.ColorCol)),
		}
	}
	return s
}

// PlotArea is the rectangle the brush may cover.
func (s *Scene) PlotArea() Rect {
	return Rect{X0: 0, Y0: 0, X1: s.Width, Y1: s.Height}
}

func column(records []Record, col string) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Num(col)
	}
	return out
}

func ticks(s Linear) []Tick {
	values := s.Ticks(AxisTicks)
	out := make([]Tick, len(values))
	for i, v := range values {
		out[i] = Tick{Value: v, Pos: s.Map(v), Label: s.Format(v, AxisTicks)}
	}
	return out
}
