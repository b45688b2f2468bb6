package dataset

import (
	"fmt"
	"math"
	"time"

	"autocsv/domain/core"
)

// Column is one typed column of a loaded table. Raw always holds the
// original cell text; Floats and Times are populated according to Type,
// with missing cells marked in Missing (and NaN in Floats).
type Column struct {
	Name    string
	Type    ColumnType
	Raw     []string
	Missing []bool
	Floats  []float64   // numeric columns only, NaN where missing
	Times   []time.Time // datetime columns only, zero where missing
}

// MissingCount returns the number of missing cells.
func (c Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// Values returns the non-missing numeric values of a numeric column.
func (c Column) Values() []float64 {
	if c.Type != TypeNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Table is the canonical in-memory dataset: column-oriented, typed at
// load time, and read-only for the rest of the run.
type Table struct {
	Source    string
	Columns   []Column
	Rows      int
	LoadedAt  core.Timestamp
	byName    map[string]int
}

// NewTable builds a typed table from a header and row-major records.
// Column typing happens here and is stable for the rest of the run.
func NewTable(source string, header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header", core.ErrLoad)
	}

	cols := make([]Column, len(header))
	for ci, name := range header {
		raw := make([]string, len(records))
		for ri, rec := range records {
			raw[ri] = rec[ci]
		}

		col := Column{
			Name:    name,
			Type:    InferColumnType(raw),
			Raw:     raw,
			Missing: make([]bool, len(raw)),
		}
		for i, v := range raw {
			col.Missing[i] = IsMissing(v)
		}

		switch col.Type {
		case TypeNumeric:
			col.Floats = make([]float64, len(raw))
			for i, v := range raw {
				if col.Missing[i] {
					col.Floats[i] = math.NaN()
					continue
				}
				f, _ := ParseNumeric(v)
				col.Floats[i] = f
			}
		case TypeDatetime:
			col.Times = make([]time.Time, len(raw))
			for i, v := range raw {
				if !col.Missing[i] {
					t, _ := ParseDatetime(v)
					col.Times[i] = t
				}
			}
		}
		cols[ci] = col
	}

	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		byName[c.Name] = i
	}

	return &Table{
		Source:   source,
		Columns:  cols,
		Rows:     len(records),
		LoadedAt: core.Now(),
		byName:   byName,
	}, nil
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.Columns[i], true
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// NumericColumns returns the numeric columns in table order.
func (t *Table) NumericColumns() []Column {
	return t.columnsOfType(TypeNumeric)
}

// CategoricalColumns returns the categorical columns in table order.
func (t *Table) CategoricalColumns() []Column {
	return t.columnsOfType(TypeCategorical)
}

// DatetimeColumns returns the datetime columns in table order.
func (t *Table) DatetimeColumns() []Column {
	return t.columnsOfType(TypeDatetime)
}

func (t *Table) columnsOfType(ct ColumnType) []Column {
	var out []Column
	for _, c := range t.Columns {
		if c.Type == ct {
			out = append(out, c)
		}
	}
	return out
}

// PairedValues returns the rows where both numeric columns are present,
// aligned by row index.
func (t *Table) PairedValues(a, b Column) (x, y []float64) {
	n := t.Rows
	x = make([]float64, 0, n)
	y = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if a.Missing[i] || b.Missing[i] {
			continue
		}
		x = append(x, a.Floats[i])
		y = append(y, b.Floats[i])
	}
	return x, y
}

// GroupedValues returns the numeric column's non-missing values grouped
// by the categorical column's value on the same row.
func (t *Table) GroupedValues(cat, num Column) map[string][]float64 {
	groups := make(map[string][]float64)
	for i := 0; i < t.Rows; i++ {
		if cat.Missing[i] || num.Missing[i] {
			continue
		}
		key := cat.Raw[i]
		groups[key] = append(groups[key], num.Floats[i])
	}
	return groups
}
