package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"jd/internal/adapters/filesystem"
	"jd/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename <number> <label...>",
	Short: "Change the label of an area, category or ID",
	Long: `Rename the folder of an area, category or ID. The number stays the
same; the index is updated for everything below the folder.

Examples:
  jd rename 11.04 Scanned receipts
  jd rename 10-19 Money`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		catalog, closeCatalog := openCatalog()
		defer closeCatalog()

		label := strings.Join(args[1:], " ")
		renameCmd := commands.NewRenameCommand(newStore(), filesystem.NewRepository(), catalog, log, root, args[0], label)
		renameCmd.Strict = cfg.Strict
		result, err := renameCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		log.Infof("%s", result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
