package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/TokuyuSou/AI-paper-blog/internal/store"
	"github.com/spf13/cobra"
)

var flagListCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore()
		if err != nil {
			return err
		}

		articles := st.Query(store.QueryOpts{Category: flagListCategory})
		if len(articles) == 0 {
			if flagListCategory != "" {
				fmt.Printf("No articles in category %q.\n", flagListCategory)
			} else {
				fmt.Println("No articles.")
			}
			return nil
		}

		for _, a := range articles {
			printArticleLine(a)
		}
		return nil
	},
}

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Show the featured articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore()
		if err != nil {
			return err
		}

		for _, a := range st.Featured(cfg.FeaturedCount()) {
			printArticleLine(a)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with article counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore()
		if err != nil {
			return err
		}

		for _, c := range st.Categories() {
			fmt.Printf("%-24s %-24s %d\n", c.Name, c.Slug, c.Count)
		}
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Print one article as plain text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore()
		if err != nil {
			return err
		}

		a, ok := st.ByID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "No article with id %q. Try `paperblog list`.\n", args[0])
			os.Exit(1)
		}

		printArticle(a)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListCategory, "category", "", "only show articles with this category slug")
}

func printArticleLine(a store.Article) {
	fmt.Printf("%-52s  %s  %s\n", a.ID, a.PublishDate, a.Category)
}

func printArticle(a store.Article) {
	fmt.Println(a.Title)
	if a.Subtitle != "" {
		fmt.Println(a.Subtitle)
	}
	fmt.Printf("\n%s · %s · %s\n", a.Category, a.PublishDate, a.ReadTime)
	if len(a.Authors) > 0 {
		fmt.Printf("By %s\n", strings.Join(a.Authors, ", "))
	}

	section := func(heading, body string) {
		if body == "" {
			return
		}
		fmt.Printf("\n## %s\n\n%s\n", heading, body)
	}
	section("Background", a.Content.Background)
	section("Methodology", a.Content.Methodology)
	section("Results", a.Content.Results)
	section("Significance", a.Content.Significance)
	if a.ConceptExplanation.Content != "" {
		section(a.ConceptExplanation.Title, a.ConceptExplanation.Content)
	}
	if a.Summary != "" {
		section("In One Sentence", a.Summary)
	}
	fmt.Printf("\nPaper: %s\n", a.PaperURL)
}
