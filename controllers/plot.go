package controllers

import (
	"context"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/jbeshir/moonbird-fitplot/data"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTrainingPath    = "in.csv"
	DefaultPredictionsPath = "out.csv"

	TrainingTraceName    = "Training Set"
	PredictionsTraceName = "Predictions"

	ColumnX          = "x"
	ColumnY          = "y"
	ColumnPrediction = "y^"
)

type Plot struct {
	TableLoader TableLoader
}

type PlotInput struct {
	TrainingPath    string
	PredictionsPath string
}

func (c *Plot) Run(ctx context.Context, input *PlotInput, viewer FigureViewer) error {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Plot",
	})

	fig, err := c.Build(ctx, input)
	if err != nil {
		return err
	}

	return viewer.Show(ctx, fig)
}

// Build loads both tables, then overlays the training points as markers and
// the predictions as a connected line. Nothing is built if either load fails.
func (c *Plot) Build(ctx context.Context, input *PlotInput) (*data.Figure, error) {
	l := ctxlogrus.Get(ctx)

	training, err := c.TableLoader.Load(ctx, input.TrainingPath)
	if err != nil {
		return nil, err
	}

	predictions, err := c.TableLoader.Load(ctx, input.PredictionsPath)
	if err != nil {
		return nil, err
	}

	// The tables are independent; they share axes but are never joined.
	if training.Len() != predictions.Len() {
		l.Debugf("Training set has %d rows, predictions have %d", training.Len(), predictions.Len())
	}

	fig := data.NewFigure()

	tr, err := traceFromTable(training, ColumnX, ColumnY, TrainingTraceName, data.ModeMarkers)
	if err != nil {
		return nil, errors.Wrapf(err, "plot couldn't read %s", input.TrainingPath)
	}
	fig.AddTrace(tr)

	tr, err = traceFromTable(predictions, ColumnX, ColumnPrediction, PredictionsTraceName, data.ModeLines)
	if err != nil {
		return nil, errors.Wrapf(err, "plot couldn't read %s", input.PredictionsPath)
	}
	fig.AddTrace(tr)

	return fig, nil
}

func traceFromTable(t *data.Table, xCol, yCol, name string, mode data.TraceMode) (data.Trace, error) {
	xs, err := t.Column(xCol)
	if err != nil {
		return data.Trace{}, err
	}

	ys, err := t.Column(yCol)
	if err != nil {
		return data.Trace{}, err
	}

	return data.Trace{
		Name: name,
		Mode: mode,
		X:    xs,
		Y:    ys,
	}, nil
}
