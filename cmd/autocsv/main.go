package main

import (
	"fmt"
	"os"

	"autocsv/adapters/charts"
	"autocsv/adapters/stats/engine"
	"autocsv/adapters/tabular"
	"autocsv/app"
	"autocsv/domain/connection"
	"autocsv/internal"
	"autocsv/internal/config"
	"autocsv/internal/profiling"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outputDir       string
		findConnections bool
		visualize       bool
		format          string
	)

	cmd := &cobra.Command{
		Use:   "autocsv [file]",
		Short: "Analyze and visualize CSV files",
		Long: `AutoCSV loads a CSV (or XLSX) file, profiles every column, detects
statistical connections between columns, and renders charts.

Example: autocsv data.csv --connections --visualize --format png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := connection.Format(format)
			if f != connection.FormatPNG && f != connection.FormatHTML && f != connection.FormatBoth {
				return fmt.Errorf("invalid format %q (png|html|both)", format)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Dir = outputDir
			}

			return run(cmd, args[0], cfg, app.AnalysisRequest{
				Path:            args[0],
				OutputDir:       cfg.Output.Dir,
				FindConnections: findConnections,
				Visualize:       visualize,
				Format:          f,
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Output directory for visualizations")
	cmd.Flags().BoolVarP(&findConnections, "connections", "c", false, "Find connections in data")
	cmd.Flags().BoolVarP(&visualize, "visualize", "v", false, "Generate visualizations")
	cmd.Flags().StringVar(&format, "format", "both", "Output format (png|html|both)")

	return cmd
}

func run(cmd *cobra.Command, path string, cfg *config.Config, req app.AnalysisRequest) error {
	log := internal.DefaultLogger

	service := app.NewAnalysisService(
		tabular.NewDataReader(log),
		profiling.NewColumnProfiler(log),
		engine.NewConnectionEngine(cfg.Analysis, log),
		charts.NewChartRenderer(cfg.Output.Dir, cfg.Analysis.TopConnectionDetails, log),
		log,
	)

	result, err := service.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d rows with %d columns from %s\n", result.Table.Rows, result.Table.ColumnCount(), path)
	fmt.Fprintf(out, "\nData Summary:\n%s", result.Summary.Markdown())

	if req.FindConnections {
		fmt.Fprintf(out, "Found %d potential connections\n", len(result.Connections))
	}
	if req.Visualize {
		fmt.Fprintf(out, "Visualizations saved to: %s\n", req.OutputDir)
	}
	return nil
}
