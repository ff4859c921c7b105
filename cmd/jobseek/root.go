package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobseekai/jobseek/internal/config"
	"github.com/jobseekai/jobseek/internal/filter"
	"github.com/jobseekai/jobseek/internal/insight"
	"github.com/jobseekai/jobseek/internal/model"
	"github.com/jobseekai/jobseek/internal/store"
)

var (
	cfgPath string
	debug   bool

	// Shared filter flags; every analytics command operates on the
	// filtered view.
	flagIndustries []string
	flagRoles      []string
	flagLocations  []string
)

var rootCmd = &cobra.Command{
	Use:   "jobseek",
	Short: "Job market analytics for the Bangladesh job board",
	Long: "Jobseek loads scraped job postings and answers questions about the market:\n" +
		"who is hiring, what skills are in demand, what roles pay, and how well a\n" +
		"candidate profile fits the current listings.",
	RunE: runOverview,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBSEEK_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&flagIndustries, "industry", nil, "filter by industry (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&flagRoles, "role", nil, "filter by job title (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&flagLocations, "location", nil, "filter by location (repeatable)")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBSEEK_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("JOBSEEK_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// openStore picks the record store for the configured source. The
// returned cleanup is safe to call unconditionally.
func openStore(cfg *config.Config) (store.RecordStore, func(), error) {
	switch cfg.Source.Type {
	case "sqlite":
		s, err := store.NewSQLiteStore(cfg.Source.Path)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return store.NewCSVStore(cfg.Source.Path), func() {}, nil
	}
}

func flagSelection() filter.Selection {
	return filter.Selection{
		Industries: flagIndustries,
		Roles:      flagRoles,
		Locations:  flagLocations,
	}
}

// loadView loads the dataset and applies the filter flags.
func loadView(ctx context.Context, cfg *config.Config, logger *slog.Logger) (model.Table, error) {
	st, cleanup, err := openStore(cfg)
	if err != nil {
		return model.Table{}, err
	}
	defer cleanup()

	table, err := st.Load(ctx)
	if err != nil {
		return model.Table{}, err
	}
	view := filter.Apply(table, flagSelection())
	logger.Debug("view loaded", "rows", table.Len(), "filtered", view.Len())
	return view, nil
}

// newInsightService wires the Groq-backed insight generator with an
// in-memory cache for the lifetime of the command.
func newInsightService(cfg *config.Config, logger *slog.Logger) insight.Generator {
	provider := insight.NewGroqProvider(
		cfg.AI.BaseURL,
		cfg.AI.APIKey,
		cfg.AI.Model,
		cfg.AI.Temperature,
		&http.Client{Timeout: cfg.AI.Timeout},
	)
	return insight.NewMemo(insight.NewService(provider, logger))
}
