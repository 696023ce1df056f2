package plot

// Backend is a minimal interface implemented by figure renderers.
// GoChart is the production renderer; tests substitute lighter fakes.
type Backend interface {
	Scatter(xs, ys []float64, o Options) (*Figure, error)
	PairGrid(labels []string, columns [][]float64, o Options) (*Figure, error)
}
