package app

import (
	"context"
	"path/filepath"
	"time"

	"autocsv/domain/connection"
	"autocsv/domain/core"
	"autocsv/domain/dataset"
	"autocsv/domain/profile"
	"autocsv/internal"
	"autocsv/internal/report"
	"autocsv/ports"
)

// AnalysisService wires the pipeline: load, profile, find connections,
// render. Strictly linear, no retries; a load failure aborts the run
// and later stage failures degrade to logged skips.
type AnalysisService struct {
	reader   ports.TableReaderPort
	profiler ports.ProfilerPort
	finder   ports.ConnectionFinderPort
	renderer ports.RendererPort
	log      *internal.Logger
}

// AnalysisRequest defines one run of the pipeline
type AnalysisRequest struct {
	Path            string
	OutputDir       string
	FindConnections bool
	Visualize       bool
	Format          connection.Format
}

// AnalysisResult is the complete output of a run
type AnalysisResult struct {
	RunID       core.RunID
	Table       *dataset.Table
	Profiles    map[string]profile.ColumnProfile
	Connections []connection.Connection
	Artifacts   []connection.Artifact
	Summary     *report.Summary
	RuntimeMs   int64
}

// NewAnalysisService creates the pipeline service
func NewAnalysisService(reader ports.TableReaderPort, profiler ports.ProfilerPort, finder ports.ConnectionFinderPort, renderer ports.RendererPort, log *internal.Logger) *AnalysisService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &AnalysisService{
		reader:   reader,
		profiler: profiler,
		finder:   finder,
		renderer: renderer,
		log:      log,
	}
}

// Run executes the pipeline for one file. Only the load stage can fail;
// everything after it recovers locally.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	start := time.Now()
	runID := core.RunID(core.NewID())
	s.log.Info("run %s: loading %s", runID, req.Path)

	table, err := s.reader.Read(ctx, req.Path)
	if err != nil {
		return nil, err
	}
	s.log.Info("run %s: %d rows, %d columns", runID, table.Rows, table.ColumnCount())

	profiles := s.profiler.Profile(table)

	var conns []connection.Connection
	if req.FindConnections {
		conns = s.finder.Find(table)
	}

	var artifacts []connection.Artifact
	if req.Visualize {
		artifacts = s.renderer.Render(ctx, table, conns, req.Format)
	}

	summary := &report.Summary{
		Source:      req.Path,
		Rows:        table.Rows,
		Profiles:    profiles,
		Connections: conns,
		Artifacts:   artifacts,
	}

	// The HTML report rides along with the visual artifacts
	if req.Visualize && req.Format.IncludesHTML() {
		reportPath := filepath.Join(req.OutputDir, "report.html")
		if err := summary.WriteHTML(reportPath); err != nil {
			s.log.Warn("skipping report.html: %v", err)
		} else {
			artifact := connection.NewArtifact(reportPath, connection.FormatHTML, connection.ChartReport)
			artifacts = append(artifacts, artifact)
			summary.Artifacts = artifacts
		}
	}

	return &AnalysisResult{
		RunID:       runID,
		Table:       table,
		Profiles:    profiles,
		Connections: conns,
		Artifacts:   artifacts,
		Summary:     summary,
		RuntimeMs:   time.Since(start).Milliseconds(),
	}, nil
}
