package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/insight"
)

var gapProfile string

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze a candidate's skill gap against the market",
	Long: "Compares the candidate profile with the filtered view's skill demand and\n" +
		"prints a readiness score, strengths, critical gaps and a learning roadmap.",
	RunE: runGap,
}

func init() {
	gapCmd.Flags().StringVarP(&gapProfile, "profile", "p", "", "candidate skills and background (required)")
	rootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, args []string) error {
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
	req, err := builder.SkillGap(view, gapProfile)
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
		fmt.Fprintf(os.Stderr, "Could not analyze the skill gap: %v\nTry again in a moment.\n", err)
		os.Exit(1)
	}

	sg := resp.SkillGap
	fmt.Printf("Market readiness: %d/100 (%s)\n\n%s\n", sg.Score, sg.Band, sg.Summary)

	if len(sg.Matched) > 0 {
		fmt.Printf("\nMatched skills: %s\n", strings.Join(sg.Matched, ", "))
	}
	if len(sg.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range sg.Strengths {
			fmt.Printf("  + %s\n", s)
		}
	}
	if len(sg.Gaps) > 0 {
		fmt.Println("\nCritical gaps:")
		for _, g := range sg.Gaps {
			fmt.Printf("  - %s: %s\n", g.Skill, g.Reason)
			if g.HowToLearn != "" {
				fmt.Printf("    start: %s\n", g.HowToLearn)
			}
		}
	}
	if len(sg.Roadmap) > 0 {
		fmt.Println("\nRoadmap:")
		for i, step := range sg.Roadmap {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}
	return nil
}
