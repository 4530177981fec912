package data

type TraceMode string

const (
	ModeMarkers TraceMode = "markers"
	ModeLines   TraceMode = "lines"
)

type Trace struct {
	Name string
	Mode TraceMode
	X    []float64
	Y    []float64
}

// Len counts points, including any NaN ones.
func (tr *Trace) Len() int {
	return len(tr.X)
}

type Figure struct {
	Traces []Trace
}

func NewFigure() *Figure {
	return new(Figure)
}

// AddTrace appends, so legend order follows insertion order.
func (f *Figure) AddTrace(tr Trace) {
	f.Traces = append(f.Traces, tr)
}
