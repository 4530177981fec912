package controllers

import (
	"context"
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/jbeshir/moonbird-fitplot/regression"
	"testing"
)

func newTestTableLoader(t *testing.T) *testTableLoader {
	return &testTableLoader{
		LoadFunc: func(ctx context.Context, path string) (*data.Table, error) {
			t.Error("Load should not be called")
			return nil, nil
		},
	}
}

type testTableLoader struct {
	LoadFunc func(ctx context.Context, path string) (*data.Table, error)
}

func (l *testTableLoader) Load(ctx context.Context, path string) (*data.Table, error) {
	return l.LoadFunc(ctx, path)
}

func newTestFigureViewer(t *testing.T) *testFigureViewer {
	return &testFigureViewer{
		ShowFunc: func(ctx context.Context, fig *data.Figure) error {
			t.Error("Show should not be called")
			return nil
		},
	}
}

type testFigureViewer struct {
	ShowFunc func(ctx context.Context, fig *data.Figure) error
}

func (v *testFigureViewer) Show(ctx context.Context, fig *data.Figure) error {
	return v.ShowFunc(ctx, fig)
}

func newTestModelTrainer(t *testing.T) *testModelTrainer {
	return &testModelTrainer{
		RetrainFunc: func(ctx context.Context, trainingPath, predictionsPath string) (*regression.Model, error) {
			t.Error("Retrain should not be called")
			return nil, nil
		},
	}
}

type testModelTrainer struct {
	RetrainFunc func(ctx context.Context, trainingPath, predictionsPath string) (*regression.Model, error)
}

func (tr *testModelTrainer) Retrain(ctx context.Context, trainingPath, predictionsPath string) (*regression.Model, error) {
	return tr.RetrainFunc(ctx, trainingPath, predictionsPath)
}
