package render

import (
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"io"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 540
)

// ErrNoPoints is returned when no trace has a finite point to draw.
var ErrNoPoints = errors.New("render has no finite points to draw")

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	chart.ColorAlternateGray,
}

// Chart draws figures with go-chart, for the interactive page.
type Chart struct {
	Width  int
	Height int
}

func (c *Chart) SVG(w io.Writer, fig *data.Figure) error {
	ch := c.Build(fig)
	if len(ch.Series) == 0 {
		return ErrNoPoints
	}
	if err := ch.Render(chart.SVG, w); err != nil {
		return errors.Wrap(err, "render couldn't draw svg")
	}
	return nil
}

func (c *Chart) PNG(w io.Writer, fig *data.Figure) error {
	ch := c.Build(fig)
	if len(ch.Series) == 0 {
		return ErrNoPoints
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "render couldn't draw png")
	}
	return nil
}

// Build converts a figure to a go-chart chart, one series per trace in trace
// order. Traces without finite points are left out, since go-chart refuses
// empty series. Axis ranges are always set explicitly, so single-valued
// traces still render.
func (c *Chart) Build(fig *data.Figure) *chart.Chart {
	var xb, yb bounds
	var series []chart.Series
	for i := range fig.Traces {
		tr := &fig.Traces[i]
		xs, ys := finite(tr)
		if len(xs) == 0 {
			continue
		}
		xb.add(xs)
		yb.add(ys)

		series = append(series, chart.ContinuousSeries{
			Name:    tr.Name,
			Style:   traceStyle(tr.Mode, palette[i%len(palette)]),
			XValues: xs,
			YValues: ys,
		})
	}

	xMin, xMax := xb.padded()
	yMin, yMax := yb.padded()

	ch := &chart.Chart{
		Width:      c.width(),
		Height:     c.height(),
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  "x",
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "y",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

func traceStyle(mode data.TraceMode, col drawing.Color) chart.Style {
	if mode == data.ModeMarkers {
		return chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    col,
		}
	}
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

func (c *Chart) width() int {
	if c.Width > 0 {
		return c.Width
	}
	return DefaultWidth
}

func (c *Chart) height() int {
	if c.Height > 0 {
		return c.Height
	}
	return DefaultHeight
}
