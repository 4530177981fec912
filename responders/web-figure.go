package responders

import (
	"bytes"
	"context"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/moonbird-fitplot/data"
	"html/template"
	"io"
	"net/http"
)

var figureTemplate = template.Must(template.New("figure").Parse(
	`<html>
<head>
	<title>{{.Title}}</title>
	<style>
		body.figure-page { font-family: sans-serif; margin: 2em; }
		.legend { list-style: none; padding: 0; }
		.trace { margin: 0.25em 0; }
		.figure-fault-msg { color: #b00020; }
	</style>
</head>
<body class="figure-page">
<h1>{{.Title}}</h1>
<div class="figure">{{.SVG}}</div>
{{if .SVGErr}}<div class="figure-fault-msg">Couldn't draw the figure!<div id="figure-fault">{{.SVGErr}}</div></div>{{end}}
<ul class="legend">
{{range .Traces}}	<li class="trace" data-name="{{.Name}}" data-mode="{{.Mode}}"><span class="trace-name">{{.Name}}</span> <span class="trace-points">{{.Points}}</span> points</li>
{{end}}</ul>
</body>
</html>`))

type SVGRenderer interface {
	SVG(w io.Writer, fig *data.Figure) error
}

type WebFigureResponder struct {
	Title    string
	Renderer SVGRenderer
	Simple   WebSimpleResponder
}

type figurePage struct {
	Title  string
	SVG    template.HTML
	SVGErr error
	Traces []tracePage
}

type tracePage struct {
	Name   string
	Mode   data.TraceMode
	Points int
}

func (r *WebFigureResponder) OnFigure(ctx context.Context, w http.ResponseWriter, fig *data.Figure) {
	l := ctxlogrus.Get(ctx)

	page := &figurePage{Title: r.Title}
	if page.Title == "" {
		page.Title = "Figure"
	}
	for i := range fig.Traces {
		page.Traces = append(page.Traces, tracePage{
			Name:   fig.Traces[i].Name,
			Mode:   fig.Traces[i].Mode,
			Points: fig.Traces[i].Len(),
		})
	}

	var svg bytes.Buffer
	if err := r.Renderer.SVG(&svg, fig); err != nil {
		l.Warnf("Unable to draw figure: %s", err)
		page.SVGErr = err
	} else {
		// Renderer output, never user input.
		page.SVG = template.HTML(svg.String())
	}

	var buf bytes.Buffer
	if err := figureTemplate.Execute(&buf, page); err != nil {
		r.Simple.OnError(ctx, w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (r *WebFigureResponder) OnNotFound(w http.ResponseWriter, req *http.Request) {
	r.Simple.OnNotFound(w, req)
}

func (r *WebFigureResponder) OnError(ctx context.Context, w http.ResponseWriter, err error) {
	r.Simple.OnError(ctx, w, err)
}
