package controllers

import (
	"context"
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/jbeshir/moonbird-fitplot/regression"
)

type TableLoader interface {
	Load(ctx context.Context, path string) (*data.Table, error)
}

type FigureViewer interface {
	Show(ctx context.Context, fig *data.Figure) error
}

type ModelTrainer interface {
	Retrain(ctx context.Context, trainingPath, predictionsPath string) (*regression.Model, error)
}
