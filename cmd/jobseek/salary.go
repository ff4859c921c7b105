package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/insight"
)

var salaryForm insight.SalaryForm

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Estimate a salary range for a role",
	Long: "Asks the configured model for a realistic monthly salary range in BDT,\n" +
		"grounded in the figures observed in the filtered view.",
	RunE: runSalary,
}

func init() {
	salaryCmd.Flags().StringVar(&salaryForm.Role, "target-role", "", "target job title (required)")
	salaryCmd.Flags().StringVar(&salaryForm.Industry, "target-industry", "", "target industry (required)")
	salaryCmd.Flags().StringVar(&salaryForm.Location, "target-location", "", "target location (required)")
	salaryCmd.Flags().StringVar(&salaryForm.ExperienceTier, "level", "", "experience level, e.g. Entry/Mid/Senior (required)")
	salaryCmd.Flags().IntVar(&salaryForm.YearsOfExp, "years", 0, "years of experience")
	salaryCmd.Flags().StringVar(&salaryForm.Education, "education", "", "highest degree (required)")
	rootCmd.AddCommand(salaryCmd)
}

func runSalary(cmd *cobra.Command, args []string) error {
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
	req, err := builder.SalaryEstimate(view, salaryForm)
	if err != nil {
		var verr *insight.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s", verr.Error())
		}
		return err
	}

	svc := newInsightService(cfg, logger)
	resp, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not estimate the salary: %v\nTry again in a moment.\n", err)
		os.Exit(1)
	}

	sal := resp.Salary
	fmt.Printf("Estimated range (BDT/month): %d - %d, median %d\n", sal.Min, sal.Max, sal.Median)
	fmt.Printf("Confidence: %s\n", sal.Confidence)
	if sal.Reasoning != "" {
		fmt.Printf("\n%s\n", sal.Reasoning)
	}
	if len(sal.FactorsUp) > 0 {
		fmt.Println("\nWorking in your favor:")
		for _, f := range sal.FactorsUp {
			fmt.Printf("  + %s\n", f)
		}
	}
	if len(sal.FactorsDown) > 0 {
		fmt.Println("\nWorking against you:")
		for _, f := range sal.FactorsDown {
			fmt.Printf("  - %s\n", f)
		}
	}
	if len(sal.Tips) > 0 {
		fmt.Println("\nNegotiation tips:")
		for _, tip := range sal.Tips {
			fmt.Printf("  * %s\n", tip)
		}
	}
	return nil
}
