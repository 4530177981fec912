package regression

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/csv"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"io"
	"strconv"
)

const (
	DefaultPoints        = 32
	DefaultLearningRate  = 0.01
	DefaultMaxIterations = 10000
)

type Trainer struct {
	FileStore     FileStore
	Noise         io.Reader
	Points        int
	LearningRate  float64
	MaxIterations int
}

// Retrain generates a fresh noisy training set, fits a line to it, and saves
// the training set and the model's predictions at the same x values.
func (tr *Trainer) Retrain(ctx context.Context, trainingPath, predictionsPath string) (*Model, error) {
	l := ctxlogrus.Get(ctx)

	x, y, err := GenerateData(tr.points(), tr.noise())
	if err != nil {
		return nil, err
	}

	w, iterations, err := BatchGradientDescent(x, y, tr.learningRate(), tr.maxIterations())
	if err != nil {
		return nil, err
	}
	model := &Model{Weights: w, Iterations: iterations}
	l.Debugf("Gradient descent stopped after %d iterations with weights %v", iterations, w)

	training := make([][]string, len(x))
	predictions := make([][]string, len(x))
	for i := range x {
		xStr := formatFloat(x[i][1])
		training[i] = []string{xStr, formatFloat(y[i])}
		predictions[i] = []string{xStr, formatFloat(model.Predict(x[i][1]))}
	}

	content, err := encodeCSV([]string{"x", "y"}, training)
	if err != nil {
		return nil, err
	}
	if err := tr.FileStore.Save(ctx, trainingPath, content); err != nil {
		return nil, errors.Wrapf(err, "retrain couldn't save %s", trainingPath)
	}

	content, err = encodeCSV([]string{"x", "y^"}, predictions)
	if err != nil {
		return nil, err
	}
	if err := tr.FileStore.Save(ctx, predictionsPath, content); err != nil {
		return nil, errors.Wrapf(err, "retrain couldn't save %s", predictionsPath)
	}

	return model, nil
}

func (tr *Trainer) points() int {
	if tr.Points > 0 {
		return tr.Points
	}
	return DefaultPoints
}

func (tr *Trainer) learningRate() float64 {
	if tr.LearningRate > 0 {
		return tr.LearningRate
	}
	return DefaultLearningRate
}

func (tr *Trainer) maxIterations() int {
	if tr.MaxIterations > 0 {
		return tr.MaxIterations
	}
	return DefaultMaxIterations
}

func (tr *Trainer) noise() io.Reader {
	if tr.Noise != nil {
		return tr.Noise
	}
	return rand.Reader
}

func encodeCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	_ = csvWriter.Write(header)
	_ = csvWriter.WriteAll(records)
	if err := csvWriter.Error(); err != nil {
		return nil, errors.Wrap(err, "retrain couldn't encode csv")
	}
	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
