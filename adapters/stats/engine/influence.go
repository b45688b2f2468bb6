package engine

import (
	"autocsv/domain/connection"
	"autocsv/domain/dataset"

	"gonum.org/v1/gonum/stat"
)

// influence measures how much grouping the numeric column by the
// categorical column reduces its variance:
//
//	eta² = 1 − pooledWithinVariance / overallVariance
//
// eta² lies in [0,1]; 0 means the grouping explains nothing, 1 means
// each category is internally constant. Only categories with at least
// two observations contribute, and at least two such categories are
// required. The connection is kept when eta² exceeds the influence
// threshold (default 0.3, parallel to the correlation threshold).
func (e *ConnectionEngine) influence(table *dataset.Table, cat, num dataset.Column) (connection.Connection, bool) {
	groups := table.GroupedValues(cat, num)

	var pooled []float64
	var withinSS float64 // sum of squared deviations within groups
	usable := 0
	for _, values := range groups {
		if len(values) < 2 {
			continue
		}
		usable++
		mean := stat.Mean(values, nil)
		for _, v := range values {
			d := v - mean
			withinSS += d * d
		}
		pooled = append(pooled, values...)
	}

	if usable < 2 || len(pooled) < minSampleSize {
		return connection.Connection{}, false
	}

	overallMean := stat.Mean(pooled, nil)
	var totalSS float64
	for _, v := range pooled {
		d := v - overallMean
		totalSS += d * d
	}
	if totalSS == 0 {
		// Constant numeric column: nothing to explain
		return connection.Connection{}, false
	}

	etaSquared := 1 - withinSS/totalSS
	if etaSquared <= e.cfg.InfluenceThreshold {
		return connection.Connection{}, false
	}

	return connection.Connection{
		ColumnA:     cat.Name,
		ColumnB:     num.Name,
		Kind:        connection.KindInfluence,
		Strength:    etaSquared,
		Significant: true,
		SampleSize:  len(pooled),
	}, true
}
