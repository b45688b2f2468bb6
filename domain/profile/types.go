package profile

import (
	"time"

	"autocsv/domain/dataset"
)

// ColumnProfile summarizes a single column: inferred type, missingness,
// and the summary statistics appropriate for the type.
type ColumnProfile struct {
	Name         string             `json:"name"`
	Type         dataset.ColumnType `json:"type"`
	MissingCount int                `json:"missing_count"`
	PresentCount int                `json:"present_count"`

	Numeric     *NumericSummary     `json:"numeric,omitempty"`
	Categorical *CategoricalSummary `json:"categorical,omitempty"`
	Datetime    *DatetimeSummary    `json:"datetime,omitempty"`
}

// NumericSummary holds descriptive statistics for a numeric column.
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// CategoricalSummary holds cardinality and the most frequent values.
type CategoricalSummary struct {
	Cardinality int          `json:"cardinality"`
	TopValues   []ValueCount `json:"top_values"`
}

// ValueCount is one category level with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DatetimeSummary holds the observed time range.
type DatetimeSummary struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}
