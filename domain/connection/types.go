package connection

import (
	"math"
	"sort"

	"autocsv/domain/core"
)

// Kind defines the detected relationship kinds
type Kind string

const (
	KindCorrelation Kind = "correlation"
	KindInfluence   Kind = "categorical_influence"
)

// Connection is a detected statistical relationship between two columns.
// Strength is the signed Pearson r for correlations and the unsigned
// variance-reduction ratio for categorical influence.
type Connection struct {
	ColumnA     string  `json:"column_a"`
	ColumnB     string  `json:"column_b"`
	Kind        Kind    `json:"kind"`
	Strength    float64 `json:"strength"`
	PValue      float64 `json:"p_value,omitempty"`
	Significant bool    `json:"significant"`
	SampleSize  int     `json:"sample_size"`
}

// AbsStrength returns the magnitude used for ranking.
func (c Connection) AbsStrength() float64 {
	return math.Abs(c.Strength)
}

// Positive reports whether a correlation connection is positive.
func (c Connection) Positive() bool {
	return c.Kind == KindCorrelation && c.Strength > 0
}

// Sort orders connections strongest first. Ties break on the lexical
// order of (ColumnA, ColumnB) so output is deterministic.
func Sort(conns []Connection) {
	sort.Slice(conns, func(i, j int) bool {
		a, b := conns[i], conns[j]
		if a.AbsStrength() != b.AbsStrength() {
			return a.AbsStrength() > b.AbsStrength()
		}
		if a.ColumnA != b.ColumnA {
			return a.ColumnA < b.ColumnA
		}
		return a.ColumnB < b.ColumnB
	})
}

// Format tags for rendered artifacts
type Format string

const (
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
	FormatBoth Format = "both"
)

// IncludesPNG reports whether the format selects static images.
func (f Format) IncludesPNG() bool { return f == FormatPNG || f == FormatBoth }

// IncludesHTML reports whether the format selects interactive output.
func (f Format) IncludesHTML() bool { return f == FormatHTML || f == FormatBoth }

// ChartKind identifies the logical chart an artifact represents
type ChartKind string

const (
	ChartDistributions     ChartKind = "distributions"
	ChartCategorical       ChartKind = "categorical"
	ChartHeatmap           ChartKind = "correlation_heatmap"
	ChartPairplot          ChartKind = "pairplot"
	ChartConnectionNetwork ChartKind = "connection_network"
	ChartConnectionDetails ChartKind = "connection_details"
	ChartReport            ChartKind = "report"
)

// Artifact is one generated output file.
type Artifact struct {
	ID        core.ArtifactID `json:"id"`
	Path      string          `json:"path"`
	Format    Format          `json:"format"`
	Chart     ChartKind       `json:"chart"`
	CreatedAt core.Timestamp  `json:"created_at"`
}

// NewArtifact records a rendered output file.
func NewArtifact(path string, format Format, chart ChartKind) Artifact {
	return Artifact{
		ID:        core.ArtifactID(core.NewID()),
		Path:      path,
		Format:    format,
		Chart:     chart,
		CreatedAt: core.Now(),
	}
}
