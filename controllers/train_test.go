package controllers

import (
	"context"
	"errors"
	"github.com/jbeshir/moonbird-fitplot/regression"
	"testing"
)

func TestTrain_Run(t *testing.T) {
	t.Parallel()

	calledRetrain := false
	tr := newTestModelTrainer(t)
	tr.RetrainFunc = func(ctx context.Context, trainingPath, predictionsPath string) (*regression.Model, error) {
		calledRetrain = true
		if trainingPath != "in.csv" || predictionsPath != "out.csv" {
			t.Errorf("Expected retrain to in.csv and out.csv, got %s and %s", trainingPath, predictionsPath)
		}
		return &regression.Model{Weights: []float64{0, 1}, Iterations: 7}, nil
	}

	c := &Train{Trainer: tr}
	err := c.Run(context.Background(), &TrainInput{TrainingPath: "in.csv", PredictionsPath: "out.csv"})
	if err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !calledRetrain {
		t.Error("Expected retrain to be called, was not")
	}
}

func TestTrain_Run_Error(t *testing.T) {
	t.Parallel()

	tr := newTestModelTrainer(t)
	tr.RetrainFunc = func(ctx context.Context, trainingPath, predictionsPath string) (*regression.Model, error) {
		return nil, errors.New("bluh")
	}

	c := &Train{Trainer: tr}
	err := c.Run(context.Background(), &TrainInput{TrainingPath: "in.csv", PredictionsPath: "out.csv"})
	if err == nil {
		t.Error("Expected an error, got nil")
	}
}
