package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/config"
	"github.com/jobseekai/jobseek/internal/metrics"
	"github.com/jobseekai/jobseek/internal/model"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the market dashboard",
	Long:  "Prints headline figures, distributions and data freshness for the filtered view.",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
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

	printHeadline(view)
	printFreshness(view, time.Now())
	printSection("Top Hiring Companies", metrics.TopCompanies(view, 10))
	printSection("In-Demand Skills", metrics.TopSkills(view, 10))
	printSection("Postings by Industry", metrics.Distribution(view, metrics.FieldIndustry))
	printExperience(view)
	printEducation(view, cfg)
	printEducationMatrix(view, cfg)
	printTrend(view)
	printSalary(view)
	return nil
}

func printEducationMatrix(view model.Table, cfg *config.Config) {
	matrix := metrics.IndustryEducationMatrix(view, cfg.DegreeVocab)
	if len(matrix.Industries) == 0 {
		return
	}
	fmt.Println("Degree Demand by Industry")
	fmt.Println("─────────────────────────")
	fmt.Printf("  %-30s", "")
	for _, d := range matrix.Degrees {
		fmt.Printf(" %7s", d)
	}
	fmt.Println()
	for i, ind := range matrix.Industries {
		fmt.Printf("  %-30s", clipLabel(ind, 30))
		for _, n := range matrix.Cells[i] {
			fmt.Printf(" %7d", n)
		}
		fmt.Println()
	}
	fmt.Println()
}

func clipLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func printTrend(view model.Table) {
	trend := metrics.PostingTrend(view)
	if len(trend) == 0 {
		return
	}
	fmt.Println("Postings by Day")
	fmt.Println("───────────────")
	for _, c := range trend {
		fmt.Printf("  %s %s\n", c.Value, strings.Repeat("▇", c.Count))
	}
	fmt.Println()
}

func printHeadline(view model.Table) {
	fmt.Printf("Postings: %d   Companies: %d   Top role: %s   Top industry: %s\n",
		view.Len(),
		metrics.DistinctCount(view, metrics.FieldCompany),
		metrics.Mode(view, metrics.FieldTitle),
		metrics.Mode(view, metrics.FieldIndustry),
	)
	if today := metrics.JobsOnLatestDay(view); today > 0 {
		fmt.Printf("Scraped on the latest day: %d postings", today)
		if cos := metrics.NewCompaniesOnLatestDay(view); cos > 0 {
			fmt.Printf(", %d first-time companies", cos)
		}
		fmt.Println()
	}
	if delta := metrics.DeltaJobs(view); delta != 0 {
		fmt.Printf("New postings on the latest scrape day: %+d vs the previous day\n", delta)
	}
}

func printFreshness(view model.Table, now time.Time) {
	fr := metrics.ComputeFreshness(view, now)
	switch fr.Status {
	case model.FreshnessUnknown:
		fmt.Println("Data freshness: unknown (no scrape timestamps)")
	default:
		fmt.Printf("Data freshness: %s (last updated %s, %s ago)\n",
			fr.Status, fr.LastUpdated.Format("2006-01-02 15:04"), fr.Age.Round(time.Minute))
	}
	fmt.Println()
}

func printSection(title string, counts []metrics.Count) {
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", len([]rune(title))))
	if len(counts) == 0 {
		fmt.Println("  no data")
	}
	for _, c := range counts {
		fmt.Printf("  %-40s %d\n", c.Value, c.Count)
	}
	fmt.Println()
}

func printExperience(view model.Table) {
	fmt.Println("Experience Levels")
	fmt.Println("─────────────────")
	for _, lc := range metrics.ExperienceLevels(view) {
		fmt.Printf("  %-40s %d (%.1f%%)\n", lc.Level.Label(), lc.Count, lc.Percent)
	}
	fmt.Println()
}

func printEducation(view model.Table, cfg *config.Config) {
	fmt.Println("Degree Demand")
	fmt.Println("─────────────")
	for _, c := range metrics.DegreeCounts(view, cfg.DegreeVocab) {
		fmt.Printf("  %-40s %d\n", c.Value, c.Count)
	}
	fmt.Println()
}

func printSalary(view model.Table) {
	stats := metrics.ComputeSalaryStats(view)
	if stats.Count == 0 {
		fmt.Println("Salary: not disclosed in the current view")
		return
	}
	fmt.Printf("Salary (BDT/month, %d postings with figures): mean %.0f, median %.0f, range %.0f-%.0f\n",
		stats.Count, stats.Mean, stats.Median, stats.Min, stats.Max)
}
