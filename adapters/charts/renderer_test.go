package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autocsv/domain/connection"
	"autocsv/internal/testkit"
)

func renderAll(t *testing.T, csvText string, conns []connection.Connection, format connection.Format) (string, map[string]bool) {
	t.Helper()
	table, err := testkit.TableFromCSV(csvText)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	artifacts := NewChartRenderer(dir, 5, nil).Render(context.Background(), table, conns, format)

	rendered := make(map[string]bool)
	for _, a := range artifacts {
		rendered[filepath.Base(a.Path)] = true
		if _, err := os.Stat(a.Path); err != nil {
			t.Errorf("artifact %s reported but not on disk: %v", a.Path, err)
		}
	}
	return dir, rendered
}

const twoNumericOneCat = "x,y,cat\n1,2,a\n2,4,b\n3,6,a\n4,8,b\n5,10,a\n6,12,b"

func TestRender_FullPNGSet(t *testing.T) {
	conns := []connection.Connection{
		{ColumnA: "x", ColumnB: "y", Kind: connection.KindCorrelation, Strength: 1.0, Significant: true},
	}

	_, rendered := renderAll(t, twoNumericOneCat, conns, connection.FormatPNG)

	for _, want := range []string{
		"distributions.png",
		"categorical.png",
		"correlation_heatmap.png",
		"pairplot.png",
		"connection_network.png",
		"connection_details.png",
	} {
		if !rendered[want] {
			t.Errorf("%s not rendered", want)
		}
	}
	for name := range rendered {
		if strings.HasSuffix(name, ".html") {
			t.Errorf("png format rendered %s", name)
		}
	}
}

func TestRender_HTMLSet(t *testing.T) {
	_, rendered := renderAll(t, twoNumericOneCat, nil, connection.FormatHTML)

	for _, want := range []string{"distributions.html", "correlation_heatmap.html"} {
		if !rendered[want] {
			t.Errorf("%s not rendered", want)
		}
	}
	for name := range rendered {
		if strings.HasSuffix(name, ".png") {
			t.Errorf("html format rendered %s", name)
		}
	}
}

func TestRender_NoPairplotOutsideBound(t *testing.T) {
	// One numeric column: no pairplot, no heatmap
	_, rendered := renderAll(t, "x,cat\n1,a\n2,b\n3,a", nil, connection.FormatPNG)
	if rendered["pairplot.png"] {
		t.Error("pairplot rendered with one numeric column")
	}
	if rendered["correlation_heatmap.png"] {
		t.Error("heatmap rendered with one numeric column")
	}

	// Seven numeric columns: above the pairplot bound, heatmap still due
	var b strings.Builder
	b.WriteString("a,b,c,d,e,f,g\n")
	for i := 1; i <= 8; i++ {
		row := make([]string, 7)
		for j := range row {
			row[j] = fmt.Sprintf("%d.%d", i+j, (i*j)%7)
		}
		b.WriteString(strings.Join(row, ",") + "\n")
	}

	_, rendered = renderAll(t, b.String(), nil, connection.FormatPNG)
	if rendered["pairplot.png"] {
		t.Error("pairplot rendered with seven numeric columns")
	}
	if !rendered["correlation_heatmap.png"] {
		t.Error("heatmap missing with seven numeric columns")
	}
}

func TestRender_NoConnectionChartsWithoutConnections(t *testing.T) {
	_, rendered := renderAll(t, twoNumericOneCat, nil, connection.FormatPNG)
	if rendered["connection_network.png"] {
		t.Error("network rendered without connections")
	}
	if rendered["connection_details.png"] {
		t.Error("details rendered without connections")
	}
}

func TestRender_CreatesOutputDir(t *testing.T) {
	dir, _ := renderAll(t, twoNumericOneCat, nil, connection.FormatPNG)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestRender_InfluenceDetails(t *testing.T) {
	conns := []connection.Connection{
		{ColumnA: "cat", ColumnB: "x", Kind: connection.KindInfluence, Strength: 0.8, Significant: true},
	}
	_, rendered := renderAll(t, twoNumericOneCat, conns, connection.FormatPNG)
	if !rendered["connection_details.png"] {
		t.Error("details not rendered for influence connection")
	}
	if !rendered["connection_network.png"] {
		t.Error("network not rendered for influence connection")
	}
}
