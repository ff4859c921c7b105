package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered view",
	Long: "Writes the filtered view to a file. The format follows the output\n" +
		"extension: .csv for the raw table, .pdf for the market report.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "postings.csv", "output file (.csv or .pdf)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	view, err := loadView(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("failed to load postings", "error", err)
		os.Exit(1)
	}

	var data []byte
	switch {
	case strings.HasSuffix(exportOut, ".csv"):
		data, err = export.TableBytes(view)
	case strings.HasSuffix(exportOut, ".pdf"):
		data, err = export.ReportBytes(view, flagSelection())
	default:
		return fmt.Errorf("unsupported output extension %q: use .csv or .pdf", exportOut)
	}
	if err != nil {
		return fmt.Errorf("render export: %w", err)
	}

	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	logger.Info("export written", "path", exportOut, "rows", view.Len(), "bytes", len(data))
	return nil
}
