package cmd

import (
	"fmt"

	"github.com/TokuyuSou/AI-paper-blog/internal/config"
	"github.com/TokuyuSou/AI-paper-blog/internal/store"
	"github.com/TokuyuSou/AI-paper-blog/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOpts{
		Store:         st,
		FeaturedCount: cfg.FeaturedCount(),
		StartCategory: flagCategory,
		StartArticle:  flagArticle,
		BrowseMode:    flagBrowse,
	})
}

// openStore loads config and the article store, honoring the --store
// override. A store path that does not exist yet falls back to the
// bundled articles, so the reader works before any generate run.
func openStore() (*config.Config, *store.Store, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}

	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return cfg, st, nil
}
