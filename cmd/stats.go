package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore()
		if err != nil {
			return err
		}

		path := cfg.StorePath()
		location := path
		if fi, err := os.Stat(path); err == nil {
			location = fmt.Sprintf("%s (%s)", path, formatBytes(fi.Size()))
		} else {
			location = "bundled articles (no store file yet)"
		}

		fmt.Printf("Store: %s\n", location)
		fmt.Printf("Articles: %d\n", st.Len())
		for _, c := range st.Categories() {
			fmt.Printf("  %-24s %d\n", c.Name, c.Count)
		}
		return nil
	},
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
