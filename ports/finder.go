package ports

import (
	"autocsv/domain/connection"
	"autocsv/domain/dataset"
)

// ConnectionFinderPort detects statistical relationships between
// columns. Returns the significant connections strongest first; an
// unanalyzable table yields an empty slice, never an error.
type ConnectionFinderPort interface {
	Find(table *dataset.Table) []connection.Connection
}
