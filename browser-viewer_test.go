package main

import (
	"context"
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/jbeshir/moonbird-fitplot/render"
	"github.com/jbeshir/moonbird-fitplot/responders"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"
)

func TestBrowserViewer_Show(t *testing.T) {
	t.Parallel()

	fig := data.NewFigure()
	fig.AddTrace(data.Trace{Name: "Training Set", Mode: data.ModeMarkers, X: []float64{0, 1}, Y: []float64{0, 1}})
	fig.AddTrace(data.Trace{Name: "Predictions", Mode: data.ModeLines, X: []float64{0, 1}, Y: []float64{0, 1}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opened := false
	v := &BrowserViewer{
		Addr: "127.0.0.1:0",
		Responder: &responders.WebFigureResponder{
			Renderer: &render.Chart{},
		},
		OpenURL: func(url string) error {
			opened = true
			defer cancel()

			resp, err := http.Get(url)
			if err != nil {
				t.Errorf("Unexpected error fetching figure page: %s", err)
				return nil
			}
			defer resp.Body.Close()

			if resp.StatusCode != 200 {
				t.Errorf("Expected a status code of 200, got %d", resp.StatusCode)
			}
			content, _ := ioutil.ReadAll(resp.Body)
			if !strings.Contains(string(content), "Training Set") {
				t.Error("Expected figure page to name the Training Set trace")
			}

			resp, err = http.Get(url + "favicon.ico")
			if err != nil {
				t.Errorf("Unexpected error fetching favicon: %s", err)
				return nil
			}
			resp.Body.Close()
			if resp.StatusCode != 404 {
				t.Errorf("Expected a status code of 404, got %d", resp.StatusCode)
			}
			return nil
		},
	}

	if err := v.Show(ctx, fig); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !opened {
		t.Error("Expected the browser to be opened, was not")
	}
}

func TestBrowserViewer_Show_ListenError(t *testing.T) {
	t.Parallel()

	v := &BrowserViewer{
		Addr: "not an address",
		OpenURL: func(url string) error {
			t.Error("OpenURL should not be called")
			return nil
		},
	}

	if err := v.Show(context.Background(), data.NewFigure()); err == nil {
		t.Error("Expected an error, got nil")
	}
}
