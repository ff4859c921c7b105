package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/filter"
	"github.com/jobseekai/jobseek/internal/metrics"
	"github.com/jobseekai/jobseek/internal/model"
	"github.com/jobseekai/jobseek/internal/picker"
)

var companyCmd = &cobra.Command{
	Use:   "company [name]",
	Short: "Deep-dive on a single employer",
	Long:  "Shows openings, roles, locations and hiring trend for one company.\nWith no argument, an interactive picker lists every company in the view.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
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

	name := ""
	if len(args) == 1 {
		name = args[0]
	} else {
		companies := filter.Companies(view)
		name, err = picker.Run(companies)
		if err != nil {
			return fmt.Errorf("company picker: %w", err)
		}
		if name == "" {
			return nil
		}
	}

	intel := metrics.ComputeCompanyIntel(view, name, time.Now())
	if !intel.Found {
		fmt.Printf("No postings found for %q in the current view.\n", name)
		return nil
	}
	printIntel(intel)
	return nil
}

func printIntel(intel metrics.CompanyIntel) {
	fmt.Printf("%s\n%s\n", intel.Company, strings.Repeat("═", len([]rune(intel.Company))))
	fmt.Printf("Open positions: %d\n", intel.Openings)
	fmt.Printf("Most advertised role: %s\n", intel.TopRole)
	fmt.Printf("Primary location: %s\n", intel.TopLocation)
	if len(intel.Industries) > 0 {
		fmt.Printf("Industries: %s\n", strings.Join(intel.Industries, ", "))
	}
	if len(intel.Locations) > 0 {
		parts := make([]string, 0, len(intel.Locations))
		for _, loc := range intel.Locations {
			parts = append(parts, fmt.Sprintf("%s (%d)", loc.Value, loc.Count))
		}
		fmt.Printf("Locations: %s\n", strings.Join(parts, ", "))
	}

	fmt.Println("\nExperience mix:")
	for _, lc := range intel.Experience {
		if lc.Count == 0 {
			continue
		}
		fmt.Printf("  %-20s %d (%.1f%%)\n", lc.Level.Label(), lc.Count, lc.Percent)
	}

	fmt.Println()
	switch intel.Trend {
	case model.TrendUnknown:
		fmt.Println("Hiring trend: unknown (no scrape timestamps)")
	default:
		fmt.Printf("Hiring trend: %s (%d postings this week vs %d last week, %+d)\n",
			intel.Trend, intel.RecentCount, intel.PrevCount, intel.TrendDelta)
	}

	if len(intel.SampleTitles) > 0 {
		fmt.Println("\nSample openings:")
		for _, t := range intel.SampleTitles {
			fmt.Printf("  - %s\n", t)
		}
	}
}
