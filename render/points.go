package render

import (
	"github.com/jbeshir/moonbird-fitplot/data"
	"math"
)

// finite returns the trace's points with NaN or infinite coordinates dropped,
// in their original order.
func finite(tr *data.Trace) (xs, ys []float64) {
	for i := range tr.X {
		if !isFinite(tr.X[i]) || !isFinite(tr.Y[i]) {
			continue
		}
		xs = append(xs, tr.X[i])
		ys = append(ys, tr.Y[i])
	}
	return xs, ys
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type bounds struct {
	Min, Max float64
	set      bool
}

func (b *bounds) add(vs []float64) {
	for _, v := range vs {
		if !b.set {
			b.Min, b.Max, b.set = v, v, true
			continue
		}
		b.Min = math.Min(b.Min, v)
		b.Max = math.Max(b.Max, v)
	}
}

// padded widens degenerate ranges so an axis always has a non-zero span.
func (b *bounds) padded() (float64, float64) {
	if !b.set {
		return 0, 1
	}
	if b.Min == b.Max {
		return b.Min - 1, b.Max + 1
	}
	return b.Min, b.Max
}
