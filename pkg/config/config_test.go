package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
llm:
  base_url: https://api.groq.com/openai/v1
  api_key: test-key
  model: llama-3.3-70b-versatile
search:
  provider: tavily
  tavily:
    api_key: tvly-test
domains:
  - AI Hardware
  - Synthetic Biology
analysis:
  depth: 5
  focus_areas:
    - Investment Landscape
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LLM.APIKey != "test-key" {
		t.Errorf("LLM.APIKey = %q, want test-key", cfg.LLM.APIKey)
	}
	if cfg.Search.Provider != "tavily" {
		t.Errorf("Search.Provider = %q, want tavily", cfg.Search.Provider)
	}
	if len(cfg.Domains) != 2 || cfg.Domains[0] != "AI Hardware" {
		t.Errorf("Domains = %v", cfg.Domains)
	}
	if cfg.Analysis.Depth != 5 {
		t.Errorf("Analysis.Depth = %d, want 5", cfg.Analysis.Depth)
	}
	if len(cfg.Analysis.FocusAreas) != 1 {
		t.Errorf("Analysis.FocusAreas = %v", cfg.Analysis.FocusAreas)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  api_key: test-key
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Domains) != len(DefaultDomains) {
		t.Errorf("Domains length = %d, want default catalogue of %d", len(cfg.Domains), len(DefaultDomains))
	}
	if cfg.Analysis.Depth != 7 {
		t.Errorf("default Depth = %d, want 7", cfg.Analysis.Depth)
	}
	if cfg.Analysis.MaxSnippets != 6 {
		t.Errorf("default MaxSnippets = %d, want 6", cfg.Analysis.MaxSnippets)
	}
	if cfg.Analysis.WindowDays != 3 {
		t.Errorf("default WindowDays = %d, want 3", cfg.Analysis.WindowDays)
	}
	if cfg.Concurrency.QPS != 1 || cfg.Concurrency.RPM != 30 {
		t.Errorf("default Concurrency = %+v", cfg.Concurrency)
	}
}

func TestLoadConfigDepthClamped(t *testing.T) {
	path := writeConfig(t, `
analysis:
  depth: 99
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Analysis.Depth != 10 {
		t.Errorf("Depth = %d, want clamped to 10", cfg.Analysis.Depth)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}
