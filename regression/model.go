package regression

type Model struct {
	Weights    []float64
	Iterations int
}

// Predict evaluates the fitted line at x.
func (m *Model) Predict(x float64) float64 {
	return m.Weights[0] + m.Weights[1]*x
}
