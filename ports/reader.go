package ports

import (
	"context"

	"autocsv/domain/dataset"
)

// TableReaderPort loads a tabular file into a typed in-memory table.
// Implementations decide which on-disk formats and text encodings they
// accept; a failure here is fatal for the run.
type TableReaderPort interface {
	Read(ctx context.Context, path string) (*dataset.Table, error)
}
