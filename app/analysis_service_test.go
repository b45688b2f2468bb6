package app

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"autocsv/adapters/charts"
	"autocsv/adapters/stats/engine"
	"autocsv/adapters/tabular"
	"autocsv/domain/connection"
	"autocsv/domain/core"
	"autocsv/internal/config"
	"autocsv/internal/profiling"
)

func newService(outputDir string) *AnalysisService {
	cfg := config.Defaults()
	return NewAnalysisService(
		tabular.NewDataReader(nil),
		profiling.NewColumnProfiler(nil),
		engine.NewConnectionEngine(cfg.Analysis, nil),
		charts.NewChartRenderer(outputDir, cfg.Analysis.TopConnectionDetails, nil),
		nil,
	)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sample.csv")
	content := "x,y,cat\n1,2,a\n2,4,b\n3,6,a\n4,8,b\n5,10,a\n6,12,b\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	outputDir := filepath.Join(dir, "out")
	result, err := newService(outputDir).Run(context.Background(), AnalysisRequest{
		Path:            csvPath,
		OutputDir:       outputDir,
		FindConnections: true,
		Visualize:       true,
		Format:          connection.FormatPNG,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Table.Rows != 6 {
		t.Errorf("rows = %d, want 6", result.Table.Rows)
	}
	if len(result.Profiles) != 3 {
		t.Errorf("profiles = %d, want 3", len(result.Profiles))
	}

	var xy *connection.Connection
	for i, c := range result.Connections {
		if c.Kind == connection.KindCorrelation && c.ColumnA == "x" && c.ColumnB == "y" {
			xy = &result.Connections[i]
		}
	}
	if xy == nil {
		t.Fatal("no (x,y) correlation connection found")
	}
	if math.Abs(xy.Strength-1.0) > 1e-9 {
		t.Errorf("r = %v, want 1.0", xy.Strength)
	}

	// Two numeric columns sit inside the pairplot bound
	for _, want := range []string{
		"distributions.png",
		"categorical.png",
		"correlation_heatmap.png",
		"pairplot.png",
		"connection_network.png",
	} {
		if _, err := os.Stat(filepath.Join(outputDir, want)); err != nil {
			t.Errorf("%s missing: %v", want, err)
		}
	}
}

func TestRun_LoadFailureCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "out")

	_, err := newService(outputDir).Run(context.Background(), AnalysisRequest{
		Path:            filepath.Join(dir, "missing.csv"),
		OutputDir:       outputDir,
		FindConnections: true,
		Visualize:       true,
		Format:          connection.FormatBoth,
	})
	if err == nil {
		t.Fatal("want load error")
	}
	if !core.IsLoadError(err) {
		t.Errorf("error %v should be a load error", err)
	}
	if _, statErr := os.Stat(outputDir); !os.IsNotExist(statErr) {
		t.Error("output directory should not exist after a failed load")
	}
}

func TestRun_HTMLReportRidesAlong(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sample.csv")
	if err := os.WriteFile(csvPath, []byte("x,y\n1,2\n2,4\n3,6\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	outputDir := filepath.Join(dir, "out")
	result, err := newService(outputDir).Run(context.Background(), AnalysisRequest{
		Path:      csvPath,
		OutputDir: outputDir,
		Visualize: true,
		Format:    connection.FormatHTML,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "report.html")); err != nil {
		t.Errorf("report.html missing: %v", err)
	}

	found := false
	for _, a := range result.Artifacts {
		if a.Chart == connection.ChartReport {
			found = true
		}
	}
	if !found {
		t.Error("report artifact not recorded")
	}
}

func TestRun_StagesSkippedWithoutFlags(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sample.csv")
	if err := os.WriteFile(csvPath, []byte("x,y\n1,2\n2,4\n3,6\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	outputDir := filepath.Join(dir, "out")
	result, err := newService(outputDir).Run(context.Background(), AnalysisRequest{
		Path:      csvPath,
		OutputDir: outputDir,
		Format:    connection.FormatBoth,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Connections) != 0 {
		t.Errorf("connections computed without the flag: %v", result.Connections)
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("artifacts rendered without the flag: %v", result.Artifacts)
	}
	if _, statErr := os.Stat(outputDir); !os.IsNotExist(statErr) {
		t.Error("output directory should not exist without --visualize")
	}
}
