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
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	if cfg.FeaturedCount() != 3 {
		t.Errorf("expected default featured 3, got %d", cfg.FeaturedCount())
	}
	if cfg.Generation.Query == "" {
		t.Error("expected default generation query")
	}
	if len(cfg.Generation.Categories) == 0 {
		t.Error("expected default arXiv categories")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected defaults for missing file: %v", err)
	}
	if cfg.FeaturedCount() != 3 {
		t.Errorf("expected default featured 3, got %d", cfg.FeaturedCount())
	}
	// First run should have written the defaults out.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	path := writeConfig(t, `
featured: 5
store: /tmp/custom-articles.json
generation:
  query: "diffusion models"
  max_per_run: 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.FeaturedCount() != 5 {
		t.Errorf("expected featured 5, got %d", cfg.FeaturedCount())
	}
	if cfg.StorePath() != "/tmp/custom-articles.json" {
		t.Errorf("unexpected store path: %q", cfg.StorePath())
	}
	if cfg.Generation.MaxArticles() != 1 {
		t.Errorf("expected max 1, got %d", cfg.Generation.MaxArticles())
	}
}

func TestLoadRejectsNegativeFeatured(t *testing.T) {
	path := writeConfig(t, "featured: -1\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative featured")
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	path := writeConfig(t, "ai:\n  provider: cohere\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown provider")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "featured: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAIKeyResolution(t *testing.T) {
	cfg := &Config{AI: &AIConfig{Provider: "openai", APIKey: "from-config"}}
	if cfg.AIKey() != "from-config" {
		t.Errorf("expected config key to win, got %q", cfg.AIKey())
	}

	t.Setenv("PAPERBLOG_AI_KEY", "from-env")
	cfg = &Config{AI: &AIConfig{Provider: "openai"}}
	if cfg.AIKey() != "from-env" {
		t.Errorf("expected env fallback, got %q", cfg.AIKey())
	}
	if !cfg.AIEnabled() {
		t.Error("expected AI enabled with env key")
	}

	none := &Config{}
	if none.AIEnabled() {
		t.Error("expected AI disabled without config")
	}
}

func TestGenerationDefaults(t *testing.T) {
	var g Generation
	if g.MaxArticles() != 2 {
		t.Errorf("expected default max 2, got %d", g.MaxArticles())
	}
	if g.LookbackDays() != 7 {
		t.Errorf("expected default lookback 7, got %d", g.LookbackDays())
	}
}

func TestStorePathDefault(t *testing.T) {
	cfg := &Config{}
	got := cfg.StorePath()
	if got == "" || filepath.Base(got) != "articles.json" {
		t.Errorf("unexpected default store path: %q", got)
	}
}
