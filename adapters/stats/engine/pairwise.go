package engine

import (
	"math"
	"sort"

	"autocsv/domain/connection"
	"autocsv/domain/dataset"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// correlate computes the Pearson coefficient over the rows where both
// columns are present. The connection is kept only when |r| clears the
// significance threshold.
func (e *ConnectionEngine) correlate(table *dataset.Table, a, b dataset.Column) (connection.Connection, bool) {
	x, y := table.PairedValues(a, b)
	if len(x) < minSampleSize {
		return connection.Connection{}, false
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		// Constant column: correlation undefined
		return connection.Connection{}, false
	}

	if math.Abs(r) <= e.cfg.CorrelationThreshold {
		return connection.Connection{}, false
	}

	// Correlations store the lexically smaller column first so the
	// ordering tie-break is total
	nameA, nameB := a.Name, b.Name
	if nameB < nameA {
		nameA, nameB = nameB, nameA
	}

	return connection.Connection{
		ColumnA:     nameA,
		ColumnB:     nameB,
		Kind:        connection.KindCorrelation,
		Strength:    r,
		PValue:      pearsonPValue(r, len(x)),
		Significant: true,
		SampleSize:  len(x),
	}, true
}

// pearsonPValue is the two-sided p-value of r under the t-distribution
// with n-2 degrees of freedom.
func pearsonPValue(r float64, n int) float64 {
	if n <= 2 {
		return 1.0
	}
	if math.Abs(r) >= 1 {
		return 0.0
	}

	df := float64(n - 2)
	t := math.Abs(r) * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.Survival(t)
	if p > 1 {
		p = 1
	}
	return p
}

// CorrelationMatrix returns the pairwise Pearson matrix for the numeric
// columns, with the column order it used. Undefined entries are NaN and
// the diagonal is 1.
func CorrelationMatrix(table *dataset.Table) ([]string, [][]float64) {
	numeric := table.NumericColumns()
	names := make([]string, len(numeric))
	for i, c := range numeric {
		names[i] = c.Name
	}
	sort.Strings(names)

	byName := make(map[string]dataset.Column, len(numeric))
	for _, c := range numeric {
		byName[c.Name] = c
	}

	matrix := make([][]float64, len(names))
	for i := range names {
		matrix[i] = make([]float64, len(names))
		for j := range names {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			x, y := table.PairedValues(byName[names[i]], byName[names[j]])
			if len(x) < minSampleSize {
				matrix[i][j] = math.NaN()
				continue
			}
			matrix[i][j] = stat.Correlation(x, y, nil)
		}
	}

	return names, matrix
}
