package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jd/internal/adapters/sqlite"
	"jd/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <text>...",
	Short: "Search labels across every indexed tree",
	Long: `Search labels in every tree that has been indexed on this machine.

Matching ignores case and accents. Results are ranked by relevance using
fuzzy matching.

Examples:
  jd search receipts
  jd search tax return`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, closeCatalog := openCatalog()
		defer closeCatalog()
		if catalog == nil {
			return fmt.Errorf("search needs the catalog, which could not be opened")
		}

		query := strings.Join(args, " ")
		results, err := commands.NewSearchCommand(catalog, query, searchLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s  %s  %s\n", r.Number, r.Label, r.AbsPath())
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", sqlite.DefaultSearchLimit, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
