package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagStore    string
	flagCategory string
	flagArticle  string
	flagBrowse   bool
)

var rootCmd = &cobra.Command{
	Use:   "paperblog",
	Short: "TUI blog of AI research papers explained in plain language",
	Long:  "paperblog turns landmark and freshly published AI papers into beginner-friendly articles and serves them in a terminal reader.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "path to the articles file (overrides config)")
	rootCmd.Flags().StringVar(&flagCategory, "category", "", "open the reader filtered to a category slug")
	rootCmd.Flags().StringVar(&flagArticle, "article", "", "open a specific article by id")
	rootCmd.Flags().BoolVar(&flagBrowse, "browse", false, "skip the home screen and start browsing")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(featuredCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("paperblog %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
