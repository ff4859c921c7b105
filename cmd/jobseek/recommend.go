package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/insight"
)

var (
	recommendProfile string
	recommendCount   int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Match a candidate profile against live postings",
	Long: "Samples the filtered view into a job catalogue, sends it with the candidate\n" +
		"profile to the configured model and prints the best-matching postings with\n" +
		"match scores and reasons.",
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "candidate skills and background (required)")
	recommendCmd.Flags().IntVarP(&recommendCount, "count", "n", 5, "number of matches to return (3, 5 or 7)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
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

	builder := insight.Builder{SampleSize: cfg.AI.SampleSize}
	req, err := builder.Recommendation(view, recommendProfile, recommendCount)
	if err != nil {
		var verr *insight.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s (use --profile)", verr.Error())
		}
		return err
	}

	svc := newInsightService(cfg, logger)
	resp, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not generate recommendations: %v\nTry again in a moment.\n", err)
		os.Exit(1)
	}

	for _, rec := range resp.Recommendations {
		fmt.Printf("%d. %s @ %s  [%d/100 %s]\n", rec.Rank, rec.Title, rec.Company, rec.Score, rec.Band)
		if rec.Location != "" || rec.Industry != "" {
			fmt.Printf("   %s | %s\n", rec.Location, rec.Industry)
		}
		if rec.Skills != "" {
			fmt.Printf("   Skills: %s\n", rec.Skills)
		}
		if rec.Reason != "" {
			fmt.Printf("   Why: %s\n", rec.Reason)
		}
		fmt.Println(strings.Repeat("─", 60))
	}
	return nil
}
