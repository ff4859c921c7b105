// Package config loads the YAML configuration for jobseek. A .env file
// next to the config, when present, is loaded first so ${VAR}
// references in the YAML resolve against it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jobseekai/jobseek/internal/metrics"
)

// Config is the root configuration for jobseek.
type Config struct {
	Source      SourceConfig
	AI          AIConfig
	DegreeVocab metrics.DegreeVocab
}

// SourceConfig points at the posting dataset.
type SourceConfig struct {
	Type string // "csv" or "sqlite"
	Path string
}

// AIConfig controls the insight layer.
type AIConfig struct {
	BaseURL     string        // defaults to the Groq OpenAI-compatible endpoint
	Model       string        // defaults to llama-3.3-70b-versatile
	APIKey      string        // expanded from env var by Load
	Temperature float64
	Timeout     time.Duration // per-request timeout
	SampleSize  int           // recommendation catalogue bound, clamped to [30,50]
}

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultModel       = "llama-3.3-70b-versatile"
	defaultTemperature = 0.4
	defaultAITimeout   = 60 * time.Second
	defaultSampleSize  = 40
)

// rawConfig is used for YAML unmarshaling (snake_case fields and
// durations as strings).
type rawConfig struct {
	Source struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"source"`
	AI struct {
		BaseURL     string   `yaml:"base_url"`
		Model       string   `yaml:"model"`
		APIKey      string   `yaml:"api_key"`
		Temperature *float64 `yaml:"temperature"`
		Timeout     string   `yaml:"timeout"`
		SampleSize  int      `yaml:"sample_size"`
	} `yaml:"ai"`
	DegreeVocabulary []struct {
		Label    string   `yaml:"label"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"degree_vocabulary"`
}

// Load reads and parses the YAML config file at path, validates it, and
// returns Config. Environment references like ${GROQ_API_KEY} are
// expanded after an optional sibling .env file is loaded.
func Load(path string) (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	aiTimeout := defaultAITimeout
	if raw.AI.Timeout != "" {
		aiTimeout, err = time.ParseDuration(raw.AI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse ai.timeout %q: %w", raw.AI.Timeout, err)
		}
	}

	baseURL := raw.AI.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}
	model := raw.AI.Model
	if model == "" {
		model = defaultModel
	}
	temperature := defaultTemperature
	if raw.AI.Temperature != nil {
		temperature = *raw.AI.Temperature
	}
	sampleSize := raw.AI.SampleSize
	if sampleSize == 0 {
		sampleSize = defaultSampleSize
	}

	sourceType := strings.ToLower(strings.TrimSpace(raw.Source.Type))
	if sourceType == "" {
		sourceType = "csv"
	}

	vocab := make(metrics.DegreeVocab, 0, len(raw.DegreeVocabulary))
	for _, d := range raw.DegreeVocabulary {
		vocab = append(vocab, metrics.DegreeKeyword{Label: d.Label, Patterns: d.Patterns})
	}
	if len(vocab) == 0 {
		vocab = metrics.DefaultDegreeVocab()
	}

	cfg := &Config{
		Source: SourceConfig{Type: sourceType, Path: raw.Source.Path},
		AI: AIConfig{
			BaseURL:     baseURL,
			Model:       model,
			APIKey:      raw.AI.APIKey,
			Temperature: temperature,
			Timeout:     aiTimeout,
			SampleSize:  sampleSize,
		},
		DegreeVocab: vocab,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Source.Type {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("source.type must be \"csv\" or \"sqlite\", got %q", cfg.Source.Type)
	}
	if cfg.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got %v", cfg.AI.Timeout)
	}
	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be in [0,2], got %v", cfg.AI.Temperature)
	}
	if cfg.AI.SampleSize < 30 || cfg.AI.SampleSize > 50 {
		return fmt.Errorf("ai.sample_size must be between 30 and 50, got %d", cfg.AI.SampleSize)
	}
	for i, d := range cfg.DegreeVocab {
		if strings.TrimSpace(d.Label) == "" {
			return fmt.Errorf("degree_vocabulary[%d]: label is required", i)
		}
		if len(d.Patterns) == 0 {
			return fmt.Errorf("degree_vocabulary[%d] (%s): at least one pattern is required", i, d.Label)
		}
	}
	return nil
}
