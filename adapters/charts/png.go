package charts

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"autocsv/domain/dataset"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	gridCols   = 3
	histBins   = 30
	panelW     = vg.Length(280)
	panelH     = vg.Length(220)
	barMaxCats = 10
)

var (
	histFill = color.RGBA{R: 0x4c, G: 0x78, B: 0xa8, A: 0xff}
	barFill  = color.RGBA{R: 0x72, G: 0xb7, B: 0x7b, A: 0xff}
)

// renderDistributionsPNG draws one histogram per numeric column in a
// three-wide grid.
func renderDistributionsPNG(path string, numeric []dataset.Column) error {
	plots := make([]*plot.Plot, 0, len(numeric))
	for _, col := range numeric {
		values := col.Values()
		if len(values) == 0 {
			continue
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("Distribution of %s", col.Name)
		p.X.Label.Text = col.Name
		p.Y.Label.Text = "Frequency"

		h, err := plotter.NewHist(plotter.Values(values), histBins)
		if err != nil {
			return err
		}
		h.FillColor = histFill
		p.Add(h)
		plots = append(plots, p)
	}

	if len(plots) == 0 {
		return fmt.Errorf("no numeric values to plot")
	}
	return saveGrid(path, plots)
}

// renderCategoricalPNG draws one bar chart per categorical column, top
// categories only.
func renderCategoricalPNG(path string, categorical []dataset.Column) error {
	plots := make([]*plot.Plot, 0, len(categorical))
	for _, col := range categorical {
		labels, counts := topCategories(col, barMaxCats)
		if len(labels) == 0 {
			continue
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("Top Categories in %s", col.Name)
		p.Y.Label.Text = "Count"

		bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(18))
		if err != nil {
			return err
		}
		bars.Color = barFill
		p.Add(bars)
		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = -0.6
		p.X.Tick.Label.XAlign = draw.XLeft
		plots = append(plots, p)
	}

	if len(plots) == 0 {
		return fmt.Errorf("no categorical values to plot")
	}
	return saveGrid(path, plots)
}

// saveGrid lays plots out in a fixed-width tile grid and writes a PNG.
func saveGrid(path string, plots []*plot.Plot) error {
	cols := gridCols
	if len(plots) < cols {
		cols = len(plots)
	}
	rows := (len(plots) + cols - 1) / cols

	grid := make([][]*plot.Plot, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i < len(plots) {
				grid[r][c] = plots[i]
			}
		}
	}

	img := vgimg.New(panelW*vg.Length(cols), panelH*vg.Length(rows))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Points(8),
		PadY: vg.Points(8),
	}

	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
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

// topCategories returns the most frequent category labels and counts,
// ordered by descending count with lexical tie-break.
func topCategories(col dataset.Column, limit int) ([]string, []float64) {
	counts := make(map[string]int)
	for i, raw := range col.Raw {
		if !col.Missing[i] {
			counts[raw]++
		}
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	if len(labels) > limit {
		labels = labels[:limit]
	}
	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = float64(counts[label])
	}
	return labels, values
}
