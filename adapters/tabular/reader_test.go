package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"autocsv/domain/core"
	"autocsv/domain/dataset"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRead_RowCountMatchesDataRows(t *testing.T) {
	path := writeFile(t, "basic.csv", []byte("a,b\n1,x\n2,y\n3,z\n"))

	table, err := NewDataReader(nil).Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if table.Rows != 3 {
		t.Errorf("Rows = %d, want 3 (header excluded)", table.Rows)
	}
	if table.ColumnCount() != 2 {
		t.Errorf("ColumnCount = %d, want 2", table.ColumnCount())
	}
}

func TestRead_Latin1Fallback(t *testing.T) {
	// 0xE9 is é in ISO-8859-1 and invalid as a standalone UTF-8 byte
	path := writeFile(t, "latin1.csv", []byte("name,drink\nana,caf\xe9\n"))

	table, err := NewDataReader(nil).Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	col, ok := table.Column("drink")
	if !ok {
		t.Fatal("drink column missing")
	}
	if col.Raw[0] != "café" {
		t.Errorf("decoded value = %q, want %q", col.Raw[0], "café")
	}
}

func TestRead_UTF8BOM(t *testing.T) {
	path := writeFile(t, "bom.csv", []byte("\xef\xbb\xbfa,b\n1,2\n"))

	table, err := NewDataReader(nil).Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if _, ok := table.Column("a"); !ok {
		t.Error("BOM should not leak into the first column name")
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := NewDataReader(nil).Read(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if !core.IsLoadError(err) {
		t.Errorf("error %v should be a load error", err)
	}
}

func TestRead_NoEncodingParses(t *testing.T) {
	// Ragged rows fail CSV structure in every encoding
	path := writeFile(t, "ragged.csv", []byte("a,b\n1\n2,3,4\n"))

	_, err := NewDataReader(nil).Read(context.Background(), path)
	if err == nil {
		t.Fatal("want error for ragged CSV")
	}
	if !core.IsLoadError(err) {
		t.Errorf("error %v should be a load error", err)
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", []byte("a,b\n"))

	_, err := NewDataReader(nil).Read(context.Background(), path)
	if err == nil {
		t.Fatal("want error for header-only file")
	}
	if !core.IsLoadError(err) {
		t.Errorf("error %v should be a load error", err)
	}
}

func TestRead_TypesInferredAtLoad(t *testing.T) {
	path := writeFile(t, "typed.csv", []byte("n,c,d\n1.5,x,2024-01-01\n2.5,y,2024-01-02\n"))

	table, err := NewDataReader(nil).Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := map[string]dataset.ColumnType{
		"n": dataset.TypeNumeric,
		"c": dataset.TypeCategorical,
		"d": dataset.TypeDatetime,
	}
	for name, wantType := range want {
		col, ok := table.Column(name)
		if !ok {
			t.Fatalf("column %s missing", name)
		}
		if col.Type != wantType {
			t.Errorf("column %s type = %s, want %s", name, col.Type, wantType)
		}
	}
}
