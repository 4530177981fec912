package controllers

import (
	"context"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

type Train struct {
	Trainer ModelTrainer
}

type TrainInput struct {
	TrainingPath    string
	PredictionsPath string
}

func (c *Train) Run(ctx context.Context, input *TrainInput) error {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Train",
	})
	l := ctxlogrus.Get(ctx)

	model, err := c.Trainer.Retrain(ctx, input.TrainingPath, input.PredictionsPath)
	if err != nil {
		return err
	}

	l.Infof("Trained y = %g + %g*x in %d iterations; wrote %s and %s",
		model.Weights[0], model.Weights[1], model.Iterations, input.TrainingPath, input.PredictionsPath)
	return nil
}
