package render

import (
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"io"
	"path/filepath"
	"strings"
)

// Plot draws figures with gonum/plot, for saving to files.
type Plot struct {
	Width  vg.Length
	Height vg.Length
}

// FormatFor picks the output format from a file name's extension.
func FormatFor(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch format {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
		return format, nil
	}
	return "", errors.Errorf("render can't save %q: unsupported extension", path)
}

func (p *Plot) Write(w io.Writer, fig *data.Figure, format string) error {
	pl, err := p.Build(fig)
	if err != nil {
		return err
	}

	wt, err := pl.WriterTo(p.width(), p.height(), format)
	if err != nil {
		return errors.Wrapf(err, "render couldn't encode %s", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrapf(err, "render couldn't write %s", format)
	}
	return nil
}

func (p *Plot) Build(fig *data.Figure) (*plot.Plot, error) {
	items, err := legendItems(fig)
	if err != nil {
		return nil, err
	}

	pl := plot.New()
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	pl.Legend.Top = true
	for _, item := range items {
		pl.Add(item.plotter)
		pl.Legend.Add(item.name, item.plotter)
	}
	return pl, nil
}

type legendItem struct {
	name    string
	plotter interface {
		plot.Plotter
		plot.Thumbnailer
	}
}

func legendItems(fig *data.Figure) ([]legendItem, error) {
	var items []legendItem
	for i := range fig.Traces {
		tr := &fig.Traces[i]
		xs, ys := finite(tr)
		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j].X = xs[j]
			pts[j].Y = ys[j]
		}

		switch tr.Mode {
		case data.ModeMarkers:
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, errors.Wrapf(err, "render couldn't plot %q", tr.Name)
			}
			s.GlyphStyle.Color = plotutil.Color(i)
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			s.GlyphStyle.Radius = vg.Points(3)
			items = append(items, legendItem{name: tr.Name, plotter: s})
		case data.ModeLines:
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, errors.Wrapf(err, "render couldn't plot %q", tr.Name)
			}
			l.LineStyle.Color = plotutil.Color(i)
			l.LineStyle.Width = vg.Points(1.5)
			items = append(items, legendItem{name: tr.Name, plotter: l})
		default:
			return nil, errors.Errorf("render got trace %q with unknown mode %q", tr.Name, tr.Mode)
		}
	}
	return items, nil
}

func (p *Plot) width() vg.Length {
	if p.Width > 0 {
		return p.Width
	}
	return 8 * vg.Inch
}

func (p *Plot) height() vg.Length {
	if p.Height > 0 {
		return p.Height
	}
	return 4.5 * vg.Inch
}
