package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/insight"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate an AI market summary",
	Long:  "Builds a grounded prompt from the filtered view's aggregates and asks the\nconfigured model for an executive brief of the market.",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
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
	if view.Empty() {
		fmt.Println("No postings match the current filters.")
		return nil
	}

	builder := insight.Builder{SampleSize: cfg.AI.SampleSize}
	req := builder.MarketSummary(view)

	svc := newInsightService(cfg, logger)
	resp, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not generate the summary: %v\nTry again in a moment.\n", err)
		os.Exit(1)
	}

	fmt.Println(resp.Summary)
	return nil
}
