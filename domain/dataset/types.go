package dataset

import (
	"strconv"
	"strings"
	"time"
)

// ColumnType defines column types for analysis
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeDatetime    ColumnType = "datetime"
)

// missingMarkers are the cell values treated as missing data.
var missingMarkers = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"nan":  {},
}

// datetimeLayouts is the fixed set of date patterns used for type
// inference. The list is deliberately closed: a fuzzy parser would make
// column typing depend on locale and input order.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
}

// IsMissing reports whether a raw cell value counts as missing.
func IsMissing(raw string) bool {
	_, ok := missingMarkers[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// ParseNumeric parses a raw cell as a float, tolerating surrounding
// whitespace and thousands-free notation only.
func ParseNumeric(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return v, err == nil
}

// ParseDatetime parses a raw cell against the fixed layout list.
func ParseDatetime(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InferColumnType classifies a column from its raw values. A column is
// numeric only if every non-missing value parses as a number, datetime
// only if every non-missing value parses against the layout list, and
// categorical otherwise. A column with no non-missing values is
// categorical.
func InferColumnType(raw []string) ColumnType {
	numeric := false
	datetime := false
	seen := false

	for _, v := range raw {
		if IsMissing(v) {
			continue
		}
		if !seen {
			numeric, datetime = true, true
			seen = true
		}
		if numeric {
			if _, ok := ParseNumeric(v); !ok {
				numeric = false
			}
		}
		if datetime {
			if _, ok := ParseDatetime(v); !ok {
				datetime = false
			}
		}
		if !numeric && !datetime {
			return TypeCategorical
		}
	}

	switch {
	case !seen:
		return TypeCategorical
	case numeric:
		return TypeNumeric
	case datetime:
		return TypeDatetime
	default:
		return TypeCategorical
	}
}
