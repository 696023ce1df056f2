package plot

import (
	"fmt"
	"path/filepath"

	"github.com/rubythedev/data-analysis-and-visualization/internal/utils"
)

// Gallery queues rendered figures and writes them out on Show, mirroring the
// deferred display model of interactive plotting tools.
type Gallery struct {
	backend Backend
	dir     string
	figures []*Figure
}

// NewGallery returns a gallery that renders through backend and saves
// figures under dir. A nil backend falls back to GoChart, an empty dir to
// the current directory.
func NewGallery(backend Backend, dir string) *Gallery {
	if backend == nil {
		backend = GoChart{}
	}
	if dir == "" {
		dir = "."
	}
	return &Gallery{backend: backend, dir: dir}
}

// Scatter renders a scatter figure and queues it for the next Show.
func (g *Gallery) Scatter(xs, ys []float64, o Options) (*Figure, error) {
	fig, err := g.backend.Scatter(xs, ys, o)
	if err != nil {
		return nil, err
	}
	g.figures = append(g.figures, fig)
	return fig, nil
}

// PairGrid renders a grid-of-scatters figure and queues it for the next Show.
func (g *Gallery) PairGrid(labels []string, columns [][]float64, o Options) (*Figure, error) {
	fig, err := g.backend.PairGrid(labels, columns, o)
	if err != nil {
		return nil, err
	}
	g.figures = append(g.figures, fig)
	return fig, nil
}

// Add queues an externally rendered figure.
func (g *Gallery) Add(fig *Figure) {
	g.figures = append(g.figures, fig)
}

// Figures returns the queued figures in render order.
func (g *Gallery) Figures() []*Figure {
	out := make([]*Figure, len(g.figures))
	copy(out, g.figures)
	return out
}

// Dir returns the directory Show writes figures to.
func (g *Gallery) Dir() string {
	return g.dir
}

// Show writes every queued figure to the gallery directory as a PNG file
// and clears the queue. It returns the written paths in render order.
// Figures that slug to the same name get a numeric suffix so none of them
// overwrite each other.
func (g *Gallery) Show() ([]string, error) {
	if len(g.figures) == 0 {
		return nil, nil
	}
	if err := utils.EnsureDir(g.dir); err != nil {
		return nil, fmt.Errorf("create figure directory: %w", err)
	}
	paths := make([]string, 0, len(g.figures))
	seen := make(map[string]int)
	for _, fig := range g.figures {
		name := fig.Name
		if n := seen[fig.Name]; n > 0 {
			name = fmt.Sprintf("%s-%d", fig.Name, n+1)
		}
		seen[fig.Name]++
		path := filepath.Join(g.dir, name+".png")
		if err := utils.SafeWriteFile(path, fig.PNG); err != nil {
			return nil, fmt.Errorf("save figure %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	g.figures = nil
	return paths, nil
}
