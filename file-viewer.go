package main

import (
	"bytes"
	"context"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/jbeshir/moonbird-fitplot/render"
)

// FileViewer saves the figure instead of displaying it, in the format named
// by the path's extension.
type FileViewer struct {
	Path      string
	FileStore FileStore
	Renderer  *render.Plot
}

func (v *FileViewer) Show(ctx context.Context, fig *data.Figure) error {
	l := ctxlogrus.Get(ctx)

	format, err := render.FormatFor(v.Path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := v.Renderer.Write(&buf, fig, format); err != nil {
		return err
	}

	if err := v.FileStore.Save(ctx, v.Path, buf.Bytes()); err != nil {
		return err
	}

	l.Infof("Saved figure to %s", v.Path)
	return nil
}
