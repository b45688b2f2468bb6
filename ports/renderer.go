package ports

import (
	"context"

	"autocsv/domain/connection"
	"autocsv/domain/dataset"
)

// RendererPort produces chart artifacts for a table and its detected
// connections. A single chart's failure is logged and skipped; the
// returned slice holds only the artifacts actually written.
type RendererPort interface {
	Render(ctx context.Context, table *dataset.Table, conns []connection.Connection, format connection.Format) []connection.Artifact
}
