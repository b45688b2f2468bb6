package profiling

import (
	"sort"

	"autocsv/domain/dataset"
	"autocsv/domain/profile"
	"autocsv/internal"

	"github.com/montanaflynn/stats"
)

// topValueLimit caps how many category levels a profile reports.
const topValueLimit = 10

// ColumnProfiler computes per-column summaries for a loaded table
type ColumnProfiler struct {
	log *internal.Logger
}

// NewColumnProfiler creates a profiler
func NewColumnProfiler(log *internal.Logger) *ColumnProfiler {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &ColumnProfiler{log: log}
}

// Profile computes a ColumnProfile for every column. Malformed data is
// never fatal: a column whose statistics cannot be computed keeps its
// type and missing counts and the failure is logged as a warning.
func (p *ColumnProfiler) Profile(table *dataset.Table) map[string]profile.ColumnProfile {
	profiles := make(map[string]profile.ColumnProfile, table.ColumnCount())

	for _, col := range table.Columns {
		cp := profile.ColumnProfile{
			Name:         col.Name,
			Type:         col.Type,
			MissingCount: col.MissingCount(),
		}
		cp.PresentCount = table.Rows - cp.MissingCount

		switch col.Type {
		case dataset.TypeNumeric:
			summary, err := numericSummary(col.Values())
			if err != nil {
				p.log.Warn("profiling column %q: %v", col.Name, err)
			} else {
				cp.Numeric = summary
			}
		case dataset.TypeCategorical:
			cp.Categorical = categoricalSummary(col)
		case dataset.TypeDatetime:
			cp.Datetime = datetimeSummary(col)
		}

		profiles[col.Name] = cp
	}

	return profiles
}

func numericSummary(values []float64) (*profile.NumericSummary, error) {
	if len(values) == 0 {
		return nil, nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, err
	}

	// Sample standard deviation needs two observations
	stdDev := 0.0
	if len(values) > 1 {
		stdDev, err = stats.StandardDeviationSample(values)
		if err != nil {
			return nil, err
		}
	}

	return &profile.NumericSummary{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
	}, nil
}

func categoricalSummary(col dataset.Column) *profile.CategoricalSummary {
	counts := make(map[string]int)
	for i, raw := range col.Raw {
		if !col.Missing[i] {
			counts[raw]++
		}
	}

	values := make([]profile.ValueCount, 0, len(counts))
	for v, n := range counts {
		values = append(values, profile.ValueCount{Value: v, Count: n})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Count != values[j].Count {
			return values[i].Count > values[j].Count
		}
		return values[i].Value < values[j].Value
	})

	top := values
	if len(top) > topValueLimit {
		top = top[:topValueLimit]
	}

	return &profile.CategoricalSummary{
		Cardinality: len(counts),
		TopValues:   top,
	}
}

func datetimeSummary(col dataset.Column) *profile.DatetimeSummary {
	var summary *profile.DatetimeSummary
	for i, t := range col.Times {
		if col.Missing[i] {
			continue
		}
		if summary == nil {
			summary = &profile.DatetimeSummary{Min: t, Max: t}
			continue
		}
		if t.Before(summary.Min) {
			summary.Min = t
		}
		if t.After(summary.Max) {
			summary.Max = t
		}
	}
	return summary
}
