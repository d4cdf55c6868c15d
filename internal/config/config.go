package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// AIConfig selects the language-model provider used by article generation.
type AIConfig struct {
	Provider string `yaml:"provider"` // "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// Generation controls the paper search that feeds the drafting pipeline.
type Generation struct {
	Query      string   `yaml:"query"`
	MaxPerRun  int      `yaml:"max_per_run,omitempty"`
	DaysBack   int      `yaml:"days_back,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

type Config struct {
	Store      string     `yaml:"store,omitempty"` // path to articles.json; empty = data dir
	Featured   int        `yaml:"featured,omitempty"`
	Generation Generation `yaml:"generation"`
	AI         *AIConfig  `yaml:"ai,omitempty"`
}

// AIEnabled returns true if a provider is configured with a usable API key.
func (c *Config) AIEnabled() bool {
	return c.AI != nil && c.AIKey() != ""
}

// AIKey returns the resolved API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("PAPERBLOG_AI_KEY")
}

// FeaturedCount returns how many articles the featured view shows,
// defaulting to 3.
func (c *Config) FeaturedCount() int {
	if c.Featured <= 0 {
		return 3
	}
	return c.Featured
}

// MaxArticles caps how many articles one generate run drafts, defaulting to 2.
func (g Generation) MaxArticles() int {
	if g.MaxPerRun <= 0 {
		return 2
	}
	return g.MaxPerRun
}

// LookbackDays is the recency window for the paper search, defaulting to 7.
func (g Generation) LookbackDays() int {
	if g.DaysBack <= 0 {
		return 7
	}
	return g.DaysBack
}

// StorePath resolves where the articles.json store lives. A configured path
// wins; otherwise the XDG data directory is used.
func (c *Config) StorePath() string {
	if c.Store != "" {
		return c.Store
	}
	return filepath.Join(xdg.DataHome, "paperblog", "articles.json")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "paperblog", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Featured < 0 {
		return fmt.Errorf("featured must not be negative, got %d", cfg.Featured)
	}
	for i, c := range cfg.Generation.Categories {
		if c == "" {
			return fmt.Errorf("generation category %d: empty name", i)
		}
	}
	if cfg.AI != nil {
		switch cfg.AI.Provider {
		case "", "claude", "openai":
		default:
			return fmt.Errorf("unknown AI provider %q (valid: claude, openai)", cfg.AI.Provider)
		}
	}
	return nil
}
