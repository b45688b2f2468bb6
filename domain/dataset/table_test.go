package dataset

import (
	"math"
	"testing"
)

func fixtureTable(t *testing.T) *Table {
	t.Helper()
	header := []string{"units", "region", "day"}
	records := [][]string{
		{"10", "north", "2024-01-01"},
		{"20", "south", "2024-01-02"},
		{"NA", "north", "2024-01-03"},
		{"40", "", "2024-01-04"},
	}
	table, err := NewTable("fixture", header, records)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

func TestNewTable_ShapeAndTyping(t *testing.T) {
	table := fixtureTable(t)

	if table.Rows != 4 {
		t.Errorf("Rows = %d, want 4", table.Rows)
	}
	if table.ColumnCount() != 3 {
		t.Errorf("ColumnCount = %d, want 3", table.ColumnCount())
	}

	units, ok := table.Column("units")
	if !ok || units.Type != TypeNumeric {
		t.Errorf("units column type = %v, want numeric", units.Type)
	}
	region, ok := table.Column("region")
	if !ok || region.Type != TypeCategorical {
		t.Errorf("region column type = %v, want categorical", region.Type)
	}
	day, ok := table.Column("day")
	if !ok || day.Type != TypeDatetime {
		t.Errorf("day column type = %v, want datetime", day.Type)
	}
}

func TestTable_MissingHandling(t *testing.T) {
	table := fixtureTable(t)

	units, _ := table.Column("units")
	if got := units.MissingCount(); got != 1 {
		t.Errorf("units missing = %d, want 1", got)
	}
	if !math.IsNaN(units.Floats[2]) {
		t.Errorf("missing numeric cell should be NaN, got %v", units.Floats[2])
	}
	if got := units.Values(); len(got) != 3 {
		t.Errorf("Values() length = %d, want 3", len(got))
	}

	region, _ := table.Column("region")
	if got := region.MissingCount(); got != 1 {
		t.Errorf("region missing = %d, want 1", got)
	}
}

func TestTable_GroupedValues(t *testing.T) {
	table := fixtureTable(t)
	region, _ := table.Column("region")
	units, _ := table.Column("units")

	groups := table.GroupedValues(region, units)
	// Row 3 (NA units) and row 4 (missing region) both drop out
	if len(groups["north"]) != 1 || groups["north"][0] != 10 {
		t.Errorf("north group = %v, want [10]", groups["north"])
	}
	if len(groups["south"]) != 1 || groups["south"][0] != 20 {
		t.Errorf("south group = %v, want [20]", groups["south"])
	}
}

func TestTable_PairedValues(t *testing.T) {
	header := []string{"x", "y"}
	records := [][]string{
		{"1", "2"},
		{"NA", "4"},
		{"3", ""},
		{"4", "8"},
	}
	table, err := NewTable("fixture", header, records)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	xCol, _ := table.Column("x")
	yCol, _ := table.Column("y")
	x, y := table.PairedValues(xCol, yCol)

	if len(x) != 2 || len(y) != 2 {
		t.Fatalf("paired lengths = %d,%d, want 2,2", len(x), len(y))
	}
	if x[0] != 1 || y[0] != 2 || x[1] != 4 || y[1] != 8 {
		t.Errorf("paired values = %v,%v, want [1 4],[2 8]", x, y)
	}
}
