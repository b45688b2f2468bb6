package charts

import (
	"fmt"
	"math"
	"os"

	"autocsv/adapters/stats/engine"
	"autocsv/domain/dataset"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const htmlBins = 20

// renderDistributionsHTML writes an interactive page with one binned
// histogram per numeric column.
func renderDistributionsHTML(path string, numeric []dataset.Column) error {
	page := components.NewPage()
	page.PageTitle = "Data Distributions"

	added := 0
	for _, col := range numeric {
		values := col.Values()
		if len(values) == 0 {
			continue
		}

		labels, counts := histogramBins(values, htmlBins)
		data := make([]opts.BarData, len(counts))
		for i, c := range counts {
			data[i] = opts.BarData{Value: c}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Distribution of %s", col.Name)}),
			charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		)
		bar.SetXAxis(labels).AddSeries(col.Name, data)
		page.AddCharts(bar)
		added++
	}

	if added == 0 {
		return fmt.Errorf("no numeric values to plot")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

// renderHeatmapHTML writes the correlation matrix as an interactive
// heatmap with a diverging scale anchored at [-1,1].
func renderHeatmapHTML(path string, table *dataset.Table) error {
	names, matrix := engine.CorrelationMatrix(table)
	if len(names) < 2 {
		return fmt.Errorf("heatmap needs at least two numeric columns")
	}

	data := make([]opts.HeatMapData, 0, len(names)*len(names))
	for i := range names {
		for j := range names {
			v := matrix[j][i]
			if math.IsNaN(v) {
				v = 0
			}
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{i, j, math.Round(v*100) / 100},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Correlation Heatmap"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: names}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        -1,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#ffffff", "#a50026"},
			},
		}),
	)
	hm.SetXAxis(names).AddSeries("r", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return hm.Render(f)
}

// histogramBins bins values into equal-width intervals and labels each
// bin by its midpoint.
func histogramBins(values []float64, bins int) ([]string, []int) {
	min, max := minMax(values)
	if min == max {
		return []string{fmt.Sprintf("%.4g", min)}, []int{len(values)}
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		i := int((v - min) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	labels := make([]string, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.4g", min+width*(float64(i)+0.5))
	}
	return labels, counts
}
