package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jd/internal/adapters/indexfile"
	"jd/internal/application/commands"
)

var indexDiff bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan the tree and write the index file",
	Long: `Scan the tree under the root (default: the working directory) and
write .JdIndex at its top. Folders that do not fit the numbering are
skipped and reported as warnings; they never stop the index from being
written.

Examples:
  jd index
  jd index --diff
  jd index -r ~/Documents`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := indexRoot()
		if err != nil {
			return err
		}

		catalog, closeCatalog := openCatalog()
		defer closeCatalog()

		indexCmd := commands.NewIndexCommand(newScanner(), newStore(), catalog, log, root)
		indexCmd.Diff = indexDiff
		result, err := indexCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, d := range result.Diagnostics {
			log.Diagnostic(d)
		}
		if indexDiff {
			if diff := indexfile.Diff(result.Before, result.After); diff != "" {
				fmt.Print(diff)
			} else {
				log.Infof("index unchanged")
			}
		}
		log.Infof("%s", result.Message)
		return nil
	},
}

func init() {
	indexCmd.Flags().BoolVar(&indexDiff, "diff", false, "print a unified diff of the index file")
	rootCmd.AddCommand(indexCmd)
}
