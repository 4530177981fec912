package regression

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"io"
)

// GenerateData samples m points around f(x) = x. Each x row is the feature
// vector [1, x]; noise byte b shifts y by (b-128)/16.
func GenerateData(m int, noise io.Reader) (x [][]float64, y []float64, err error) {
	e := make([]byte, m)
	if _, err = io.ReadFull(noise, e); err != nil {
		return nil, nil, errors.Wrap(err, "generateData couldn't read noise")
	}

	x = make([][]float64, m)
	y = make([]float64, m)
	for i := 0; i < m; i++ {
		xi := float64(-(m / 2) + i)
		x[i] = []float64{1, xi}
		y[i] = xi + (float64(e[i])-128)/16
	}
	return x, y, nil
}

// BatchGradientDescent fits weights minimising the mean squared residual,
// using the whole training set for every update. It stops once an update
// leaves the weights unchanged, returning the number of iterations run.
func BatchGradientDescent(x [][]float64, y []float64, a float64, maxIterations int) (w []float64, iterations int, err error) {
	m := len(x)
	if m == 0 {
		return nil, 0, errors.New("batchGradientDescent needs at least one sample")
	}
	if len(y) != m {
		return nil, 0, errors.Errorf("batchGradientDescent got %d samples but %d targets", m, len(y))
	}

	n := len(x[0])
	for j := range x {
		if len(x[j]) != n {
			return nil, 0, errors.Errorf("batchGradientDescent sample %d has %d features, expected %d", j, len(x[j]), n)
		}
	}

	w = make([]float64, n)
	next := make([]float64, n)
	for iterations = 0; iterations < maxIterations; iterations++ {
		for i := 0; i < n; i++ {
			var g float64
			for j := 0; j < m; j++ {
				g += (floats.Dot(w, x[j]) - y[j]) * x[j][i]
			}
			g /= float64(m)
			next[i] = w[i] - a*g
		}

		if floats.Equal(w, next) {
			break
		}
		copy(w, next)
	}
	return w, iterations, nil
}
