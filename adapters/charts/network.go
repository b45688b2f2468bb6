package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"autocsv/domain/connection"
	"autocsv/domain/dataset"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	correlationEdge = color.RGBA{R: 0xd6, G: 0x3b, B: 0x3b, A: 0xff}
	influenceEdge   = color.RGBA{R: 0x3b, G: 0x62, B: 0xd6, A: 0xff}
	nodeFill        = color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
)

// renderNetworkPNG draws the connection graph: columns as nodes on a
// circle, solid edges for correlations and dashed edges for
// categorical influence, edge width scaled by strength.
func renderNetworkPNG(path string, conns []connection.Connection) error {
	nodes := collectNodes(conns)
	if len(nodes) == 0 {
		return fmt.Errorf("no connections to draw")
	}

	pos := circleLayout(nodes)

	p := plot.New()
	p.Title.Text = "Variable Connection Network"
	p.HideAxes()

	var haveCorrelation, haveInfluence bool
	for _, conn := range conns {
		line, err := plotter.NewLine(plotter.XYs{pos[conn.ColumnA], pos[conn.ColumnB]})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(0.5 + 2.5*conn.AbsStrength())
		switch conn.Kind {
		case connection.KindCorrelation:
			line.LineStyle.Color = correlationEdge
			haveCorrelation = true
		case connection.KindInfluence:
			line.LineStyle.Color = influenceEdge
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
			haveInfluence = true
		}
		p.Add(line)
	}

	// One legend entry per edge kind present
	addLegend(p, haveCorrelation, haveInfluence)

	nodeXYs := make(plotter.XYs, 0, len(nodes))
	labels := make([]string, 0, len(nodes))
	for _, name := range nodes {
		nodeXYs = append(nodeXYs, pos[name])
		labels = append(labels, name)
	}

	scatter, err := plotter.NewScatter(nodeXYs)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(10)
	scatter.GlyphStyle.Color = nodeFill
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	nodeLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: nodeXYs, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(nodeLabels)

	// Head room for labels on the circle's rim
	p.X.Min, p.X.Max = -1.5, 1.5
	p.Y.Min, p.Y.Max = -1.5, 1.5

	return p.Save(vg.Points(520), vg.Points(420), path)
}

// renderDetailsPNG draws one detail panel per top connection: scatter
// with trend line for correlations, per-category box plots for
// influence.
func renderDetailsPNG(path string, table *dataset.Table, conns []connection.Connection) error {
	plots := make([]*plot.Plot, 0, len(conns))

	for _, conn := range conns {
		switch conn.Kind {
		case connection.KindCorrelation:
			p, err := correlationDetail(table, conn)
			if err != nil {
				return err
			}
			plots = append(plots, p)
		case connection.KindInfluence:
			p, err := influenceDetail(table, conn)
			if err != nil {
				return err
			}
			plots = append(plots, p)
		}
	}

	if len(plots) == 0 {
		return fmt.Errorf("no connections to detail")
	}

	// One panel per row, like a report page
	img := vgimg.New(vg.Points(480), vg.Points(220)*vg.Length(len(plots)))
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: len(plots), Cols: 1, PadX: vg.Points(6), PadY: vg.Points(6)}

	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}
	canvases := plot.Align(grid, tiles, dc)
	for i := range grid {
		grid[i][0].Draw(canvases[i][0])
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

func correlationDetail(table *dataset.Table, conn connection.Connection) (*plot.Plot, error) {
	colA, okA := table.Column(conn.ColumnA)
	colB, okB := table.Column(conn.ColumnB)
	if !okA || !okB {
		return nil, fmt.Errorf("columns %q/%q not in table", conn.ColumnA, conn.ColumnB)
	}
	x, y := table.PairedValues(colA, colB)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Correlation: %s vs %s (r = %.3f)", conn.ColumnA, conn.ColumnB, conn.Strength)
	p.X.Label.Text = conn.ColumnA
	p.Y.Label.Text = conn.ColumnB

	s, err := plotter.NewScatter(toXYs(x, y))
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Color = histFill
	p.Add(s)

	// Least-squares trend line across the observed x range
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	xMin, xMax := minMax(x)
	trend, err := plotter.NewLine(plotter.XYs{
		{X: xMin, Y: alpha + beta*xMin},
		{X: xMax, Y: alpha + beta*xMax},
	})
	if err != nil {
		return nil, err
	}
	trend.LineStyle.Color = correlationEdge
	trend.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(trend)

	return p, nil
}

func influenceDetail(table *dataset.Table, conn connection.Connection) (*plot.Plot, error) {
	cat, okA := table.Column(conn.ColumnA)
	num, okB := table.Column(conn.ColumnB)
	if !okA || !okB {
		return nil, fmt.Errorf("columns %q/%q not in table", conn.ColumnA, conn.ColumnB)
	}

	groups := table.GroupedValues(cat, num)
	labels, _ := topCategories(cat, barMaxCats)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Influence: %s on %s (eta² = %.3f)", conn.ColumnA, conn.ColumnB, conn.Strength)
	p.Y.Label.Text = conn.ColumnB

	drawn := 0
	for i, label := range labels {
		values := groups[label]
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(18), float64(i), plotter.Values(values))
		if err != nil {
			return nil, err
		}
		p.Add(box)
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("no category has numeric observations")
	}
	p.NominalX(labels...)

	return p, nil
}

func collectNodes(conns []connection.Connection) []string {
	seen := make(map[string]struct{})
	var nodes []string
	for _, conn := range conns {
		for _, name := range []string{conn.ColumnA, conn.ColumnB} {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				nodes = append(nodes, name)
			}
		}
	}
	return nodes
}

// circleLayout places nodes evenly on the unit circle. Deterministic,
// which a force layout would not be.
func circleLayout(nodes []string) map[string]plotter.XY {
	pos := make(map[string]plotter.XY, len(nodes))
	for i, name := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(len(nodes))
		pos[name] = plotter.XY{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return pos
}

func addLegend(p *plot.Plot, haveCorrelation, haveInfluence bool) {
	if haveCorrelation {
		line, err := plotter.NewLine(plotter.XYs{})
		if err == nil {
			line.LineStyle.Color = correlationEdge
			p.Legend.Add("correlation", line)
		}
	}
	if haveInfluence {
		line, err := plotter.NewLine(plotter.XYs{})
		if err == nil {
			line.LineStyle.Color = influenceEdge
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
			p.Legend.Add("categorical influence", line)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true
}

func minMax(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
