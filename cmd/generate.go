package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/TokuyuSou/AI-paper-blog/internal/config"
	"github.com/TokuyuSou/AI-paper-blog/internal/draft"
	"github.com/TokuyuSou/AI-paper-blog/internal/paper"
	"github.com/TokuyuSou/AI-paper-blog/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	flagClassics bool
	flagMax      int
	flagDaysBack int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft new articles from recent arXiv papers",
	Long: `Search arXiv for recent papers, rank them, and draft blog articles for the
ones not yet covered. Drafting needs an AI provider in the config (or the
PAPERBLOG_AI_KEY environment variable).

With --classics, the landmark seed papers are drafted instead of searching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore()
		if err != nil {
			return err
		}

		if !cfg.AIEnabled() {
			return fmt.Errorf("no AI provider configured: set ai.provider in %s and export PAPERBLOG_AI_KEY", configPath())
		}

		drafter, err := draft.New(cfg.AI, cfg.AIKey())
		if err != nil {
			return err
		}

		maxArticles := cfg.Generation.MaxArticles()
		if flagMax > 0 {
			maxArticles = flagMax
		}
		daysBack := cfg.Generation.LookbackDays()
		if flagDaysBack > 0 {
			daysBack = flagDaysBack
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		result, err := pipeline.Run(ctx, pipeline.Options{
			Store:      st,
			StorePath:  cfg.StorePath(),
			Searcher:   paper.NewClient(),
			Drafter:    drafter,
			Categories: cfg.Generation.Categories,
			DaysBack:   daysBack,
			Max:        maxArticles,
			Classics:   flagClassics,
			Logf: func(format string, args ...any) {
				fmt.Printf(format+"\n", args...)
			},
		})

		for _, e := range result.Errors {
			fmt.Printf("  [warn] %v\n", e)
		}
		if err != nil {
			return err
		}

		if len(result.Drafted) == 0 {
			fmt.Println("Nothing new to draft.")
			return nil
		}
		fmt.Printf("Drafted %d article(s):\n", len(result.Drafted))
		for _, a := range result.Drafted {
			fmt.Printf("  %s (%s)\n", a.Title, a.ID)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&flagClassics, "classics", false, "draft the landmark seed papers instead of searching arXiv")
	generateCmd.Flags().IntVar(&flagMax, "max", 0, "most articles to draft in this run (default from config)")
	generateCmd.Flags().IntVar(&flagDaysBack, "days-back", 0, "recency window for the paper search (default from config)")
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultConfigPath()
}
