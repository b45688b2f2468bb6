package engine

import (
	"autocsv/domain/connection"
	"autocsv/domain/dataset"
	"autocsv/internal"
	"autocsv/internal/config"
)

// minSampleSize is the smallest aligned sample a pairwise statistic is
// computed over.
const minSampleSize = 3

// ConnectionEngine detects statistical relationships between columns:
// Pearson correlation for numeric pairs and variance reduction for
// (categorical, numeric) pairs.
type ConnectionEngine struct {
	cfg config.AnalysisConfig
	log *internal.Logger
}

// NewConnectionEngine creates an engine with the given thresholds
func NewConnectionEngine(cfg config.AnalysisConfig, log *internal.Logger) *ConnectionEngine {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &ConnectionEngine{cfg: cfg, log: log}
}

// Find returns the significant connections, strongest first. Tables
// with nothing to analyze yield an empty slice, never an error.
func (e *ConnectionEngine) Find(table *dataset.Table) []connection.Connection {
	conns := make([]connection.Connection, 0)

	numeric := table.NumericColumns()
	categorical := table.CategoricalColumns()

	// Every unordered numeric pair
	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			if conn, ok := e.correlate(table, numeric[i], numeric[j]); ok {
				conns = append(conns, conn)
			}
		}
	}

	// Every (categorical, numeric) pair
	for _, cat := range categorical {
		for _, num := range numeric {
			if conn, ok := e.influence(table, cat, num); ok {
				conns = append(conns, conn)
			}
		}
	}

	connection.Sort(conns)
	e.log.Info("connection sweep: %d numeric, %d categorical columns, %d significant connections",
		len(numeric), len(categorical), len(conns))
	return conns
}
