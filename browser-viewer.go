package main

import (
	"context"
	"fmt"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/jbeshir/moonbird-fitplot/responders"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"net"
	"net/http"
	"time"
)

type FigureResponder interface {
	OnFigure(ctx context.Context, w http.ResponseWriter, fig *data.Figure)
	OnNotFound(w http.ResponseWriter, r *http.Request)
}

var _ FigureResponder = (*responders.WebFigureResponder)(nil)

// BrowserViewer serves the figure over loopback HTTP, opens it in a browser,
// and keeps serving until ctx is cancelled.
type BrowserViewer struct {
	Addr      string
	Responder FigureResponder
	OpenURL   func(url string) error
}

func (v *BrowserViewer) Show(ctx context.Context, fig *data.Figure) error {
	l := ctxlogrus.Get(ctx)

	ln, err := net.Listen("tcp", v.Addr)
	if err != nil {
		return errors.Wrapf(err, "viewer couldn't listen on %s", v.Addr)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			v.Responder.OnNotFound(w, r)
			return
		}
		v.Responder.OnFigure(ctx, w, fig)
	})
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != http.ErrServerClosed {
			return errors.Wrap(err, "viewer server failed")
		}
		return nil
	})
	g.Go(func() error {
		url := fmt.Sprintf("http://%s/", ln.Addr())
		l.Infof("Showing figure at %s; interrupt to exit", url)
		if err := v.OpenURL(url); err != nil {
			l.Warnf("Unable to open a browser, visit %s instead: %s", url, err)
		}

		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
