package charts

import (
	"fmt"
	"math"

	"autocsv/adapters/stats/engine"
	"autocsv/domain/dataset"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ.
type corrGrid struct {
	names  []string
	matrix [][]float64
}

func (g corrGrid) Dims() (c, r int) { return len(g.names), len(g.names) }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }

func (g corrGrid) Z(c, r int) float64 {
	v := g.matrix[r][c]
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// renderHeatmapPNG draws the pairwise Pearson matrix of the numeric
// columns on a diverging blue-red scale anchored at [-1,1].
func renderHeatmapPNG(path string, table *dataset.Table) error {
	names, matrix := engine.CorrelationMatrix(table)
	if len(names) < 2 {
		return fmt.Errorf("heatmap needs at least two numeric columns")
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	h := plotter.NewHeatMap(corrGrid{names: names, matrix: matrix}, cm.Palette(255))
	h.Min = -1
	h.Max = 1

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	p.Add(h)
	p.NominalX(names...)
	p.NominalY(names...)
	p.X.Tick.Label.Rotation = -0.6

	size := vg.Points(120 + 60*float64(len(names)))
	return p.Save(size, size, path)
}
