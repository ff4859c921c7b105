package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
source:
  path: data/postings.csv
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.Type != "csv" {
		t.Errorf("source type = %q, want csv default", cfg.Source.Type)
	}
	if cfg.AI.BaseURL != defaultGroqBaseURL {
		t.Errorf("base url = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Model != defaultModel {
		t.Errorf("model = %q", cfg.AI.Model)
	}
	if cfg.AI.Temperature != defaultTemperature {
		t.Errorf("temperature = %v", cfg.AI.Temperature)
	}
	if cfg.AI.Timeout != defaultAITimeout {
		t.Errorf("timeout = %v", cfg.AI.Timeout)
	}
	if cfg.AI.SampleSize != defaultSampleSize {
		t.Errorf("sample size = %d", cfg.AI.SampleSize)
	}
	if len(cfg.DegreeVocab) == 0 {
		t.Error("degree vocabulary should fall back to the default set")
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_GROQ_KEY", "gsk-test-123")
	path := writeConfig(t, `
source:
  type: csv
  path: data/postings.csv
ai:
  api_key: ${TEST_GROQ_KEY}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI.APIKey != "gsk-test-123" {
		t.Errorf("api key = %q, want expanded env value", cfg.AI.APIKey)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DOTENV_GROQ_KEY=gsk-from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	content := "source:\n  path: data/postings.csv\nai:\n  api_key: ${DOTENV_GROQ_KEY}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DOTENV_GROQ_KEY") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AI.APIKey != "gsk-from-dotenv" {
		t.Errorf("api key = %q, want value from .env", cfg.AI.APIKey)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
source:
  type: sqlite
  path: data/postings.db
ai:
  base_url: https://example.com/v1
  model: test-model
  temperature: 0.2
  timeout: 90s
  sample_size: 35
degree_vocabulary:
  - label: PhD
    patterns: ["phd", "doctorate"]
  - label: BSc
    patterns: ["bsc", "bachelor"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.Type != "sqlite" || cfg.Source.Path != "data/postings.db" {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.AI.Timeout != 90*time.Second {
		t.Errorf("timeout = %v", cfg.AI.Timeout)
	}
	if cfg.AI.Temperature != 0.2 {
		t.Errorf("temperature = %v", cfg.AI.Temperature)
	}
	if len(cfg.DegreeVocab) != 2 || cfg.DegreeVocab[1].Label != "BSc" {
		t.Errorf("degree vocab = %+v", cfg.DegreeVocab)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing path",
			content: "source:\n  type: csv\n",
			wantErr: "source.path",
		},
		{
			name:    "bad source type",
			content: "source:\n  type: postgres\n  path: x\n",
			wantErr: "source.type",
		},
		{
			name:    "sample size out of range",
			content: "source:\n  path: x\nai:\n  sample_size: 10\n",
			wantErr: "sample_size",
		},
		{
			name:    "bad timeout",
			content: "source:\n  path: x\nai:\n  timeout: soon\n",
			wantErr: "ai.timeout",
		},
		{
			name:    "vocab entry without patterns",
			content: "source:\n  path: x\ndegree_vocabulary:\n  - label: PhD\n",
			wantErr: "pattern",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}
