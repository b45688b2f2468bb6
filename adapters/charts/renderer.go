package charts

import (
	"context"
	"os"
	"path/filepath"

	"autocsv/domain/connection"
	"autocsv/domain/dataset"
	"autocsv/internal"
)

// pairplotMax bounds the pairplot grid; beyond six numeric columns the
// render cost and legibility both collapse.
const (
	pairplotMin = 2
	pairplotMax = 6
)

// ChartRenderer writes chart artifacts into the output directory
type ChartRenderer struct {
	outputDir  string
	topDetails int
	log        *internal.Logger
}

// NewChartRenderer creates a renderer rooted at outputDir
func NewChartRenderer(outputDir string, topDetails int, log *internal.Logger) *ChartRenderer {
	if log == nil {
		log = internal.DefaultLogger
	}
	if topDetails <= 0 {
		topDetails = 5
	}
	return &ChartRenderer{outputDir: outputDir, topDetails: topDetails, log: log}
}

// Render produces every chart the table and connection list call for.
// The output directory is created here, not earlier, so a failed load
// never leaves an empty directory behind. A single chart's failure is
// logged and skipped.
func (r *ChartRenderer) Render(ctx context.Context, table *dataset.Table, conns []connection.Connection, format connection.Format) []connection.Artifact {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		r.log.Error("creating output directory %s: %v", r.outputDir, err)
		return nil
	}

	numeric := table.NumericColumns()
	categorical := table.CategoricalColumns()

	var artifacts []connection.Artifact

	if format.IncludesPNG() {
		if len(numeric) > 0 {
			r.attempt(&artifacts, "distributions.png", connection.ChartDistributions, connection.FormatPNG,
				func(path string) error { return renderDistributionsPNG(path, numeric) })
		}
		if len(categorical) > 0 {
			r.attempt(&artifacts, "categorical.png", connection.ChartCategorical, connection.FormatPNG,
				func(path string) error { return renderCategoricalPNG(path, categorical) })
		}
		if len(numeric) >= 2 {
			r.attempt(&artifacts, "correlation_heatmap.png", connection.ChartHeatmap, connection.FormatPNG,
				func(path string) error { return renderHeatmapPNG(path, table) })
		}
		if len(numeric) >= pairplotMin && len(numeric) <= pairplotMax {
			r.attempt(&artifacts, "pairplot.png", connection.ChartPairplot, connection.FormatPNG,
				func(path string) error { return renderPairplotPNG(path, table, numeric) })
		}
		if len(conns) > 0 {
			r.attempt(&artifacts, "connection_network.png", connection.ChartConnectionNetwork, connection.FormatPNG,
				func(path string) error { return renderNetworkPNG(path, conns) })
			r.attempt(&artifacts, "connection_details.png", connection.ChartConnectionDetails, connection.FormatPNG,
				func(path string) error { return renderDetailsPNG(path, table, top(conns, r.topDetails)) })
		}
	}

	if format.IncludesHTML() {
		if len(numeric) > 0 {
			r.attempt(&artifacts, "distributions.html", connection.ChartDistributions, connection.FormatHTML,
				func(path string) error { return renderDistributionsHTML(path, numeric) })
		}
		if len(numeric) >= 2 {
			r.attempt(&artifacts, "correlation_heatmap.html", connection.ChartHeatmap, connection.FormatHTML,
				func(path string) error { return renderHeatmapHTML(path, table) })
		}
	}

	r.log.Info("rendered %d artifacts to %s", len(artifacts), r.outputDir)
	return artifacts
}

// attempt runs one chart render, converting failure into a logged skip.
func (r *ChartRenderer) attempt(artifacts *[]connection.Artifact, filename string, chart connection.ChartKind, format connection.Format, render func(path string) error) {
	path := filepath.Join(r.outputDir, filename)
	if err := render(path); err != nil {
		r.log.Warn("skipping %s: %v", filename, err)
		return
	}
	*artifacts = append(*artifacts, connection.NewArtifact(path, format, chart))
}

func top(conns []connection.Connection, n int) []connection.Connection {
	if len(conns) <= n {
		return conns
	}
	return conns[:n]
}
