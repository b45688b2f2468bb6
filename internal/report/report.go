package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"autocsv/domain/connection"
	"autocsv/domain/profile"

	"github.com/gomarkdown/markdown"
)

// Summary is the run's human-readable result: the loaded shape, the
// per-column profiles, and any detected connections.
type Summary struct {
	Source      string
	Rows        int
	Profiles    map[string]profile.ColumnProfile
	Connections []connection.Connection
	Artifacts   []connection.Artifact
}

// Markdown renders the summary as a markdown document.
func (s *Summary) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# AutoCSV Report\n\n")
	fmt.Fprintf(&b, "Source: `%s`\n\n", s.Source)
	fmt.Fprintf(&b, "%d rows, %d columns\n\n", s.Rows, len(s.Profiles))

	b.WriteString("## Columns\n\n")
	b.WriteString("| Column | Type | Missing | Summary |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, name := range s.sortedColumns() {
		p := s.Profiles[name]
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", p.Name, p.Type, p.MissingCount, describeProfile(p))
	}
	b.WriteString("\n")

	if len(s.Connections) > 0 {
		b.WriteString("## Connections\n\n")
		b.WriteString("| Columns | Kind | Strength |\n")
		b.WriteString("|---|---|---|\n")
		for _, c := range s.Connections {
			fmt.Fprintf(&b, "| %s ↔ %s | %s | %.3f |\n", c.ColumnA, c.ColumnB, c.Kind, c.Strength)
		}
		b.WriteString("\n")
	}

	if len(s.Artifacts) > 0 {
		b.WriteString("## Artifacts\n\n")
		for _, a := range s.Artifacts {
			fmt.Fprintf(&b, "- `%s` (%s)\n", a.Path, a.Chart)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteHTML renders the markdown summary to a standalone HTML file.
func (s *Summary) WriteHTML(path string) error {
	body := markdown.ToHTML([]byte(s.Markdown()), nil, nil)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>AutoCSV Report</title>\n")
	b.WriteString("<style>body{font-family:sans-serif;max-width:60em;margin:2em auto;padding:0 1em}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:0.3em 0.6em}</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.Write(body)
	b.WriteString("</body>\n</html>\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func (s *Summary) sortedColumns() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func describeProfile(p profile.ColumnProfile) string {
	switch {
	case p.Numeric != nil:
		return fmt.Sprintf("mean %.3g, std %.3g, min %.3g, max %.3g",
			p.Numeric.Mean, p.Numeric.StdDev, p.Numeric.Min, p.Numeric.Max)
	case p.Categorical != nil:
		top := ""
		if len(p.Categorical.TopValues) > 0 {
			top = fmt.Sprintf(", top %q (%d)", p.Categorical.TopValues[0].Value, p.Categorical.TopValues[0].Count)
		}
		return fmt.Sprintf("%d levels%s", p.Categorical.Cardinality, top)
	case p.Datetime != nil:
		return fmt.Sprintf("%s … %s", p.Datetime.Min.Format("2006-01-02"), p.Datetime.Max.Format("2006-01-02"))
	default:
		return "no data"
	}
}
