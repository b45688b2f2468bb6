package charts

import (
	"fmt"
	"os"

	"autocsv/domain/dataset"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// renderPairplotPNG draws the scatter grid of every ordered numeric
// pair, histograms on the diagonal. The caller enforces the [2,6]
// column bound.
func renderPairplotPNG(path string, table *dataset.Table, numeric []dataset.Column) error {
	n := len(numeric)
	if n < pairplotMin || n > pairplotMax {
		return fmt.Errorf("pairplot needs %d to %d numeric columns, have %d", pairplotMin, pairplotMax, n)
	}

	grid := make([][]*plot.Plot, n)
	for row := 0; row < n; row++ {
		grid[row] = make([]*plot.Plot, n)
		for col := 0; col < n; col++ {
			p := plot.New()
			if row == n-1 {
				p.X.Label.Text = numeric[col].Name
			}
			if col == 0 {
				p.Y.Label.Text = numeric[row].Name
			}

			if row == col {
				values := numeric[row].Values()
				if len(values) == 0 {
					continue
				}
				h, err := plotter.NewHist(plotter.Values(values), histBins)
				if err != nil {
					return err
				}
				h.FillColor = histFill
				p.Add(h)
			} else {
				x, y := table.PairedValues(numeric[col], numeric[row])
				s, err := plotter.NewScatter(toXYs(x, y))
				if err != nil {
					return err
				}
				s.GlyphStyle.Radius = vg.Points(1.5)
				s.GlyphStyle.Color = histFill
				p.Add(s)
			}
			grid[row][col] = p
		}
	}

	side := vg.Length(180) * vg.Length(n)
	img := vgimg.New(side, side)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: n, Cols: n, PadX: vg.Points(4), PadY: vg.Points(4)}

	canvases := plot.Align(grid, tiles, dc)
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] != nil {
				grid[row][col].Draw(canvases[row][col])
			}
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}

func toXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}
