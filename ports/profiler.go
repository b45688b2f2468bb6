package ports

import (
	"autocsv/domain/dataset"
	"autocsv/domain/profile"
)

// ProfilerPort computes per-column summaries for a loaded table
type ProfilerPort interface {
	Profile(table *dataset.Table) map[string]profile.ColumnProfile
}
