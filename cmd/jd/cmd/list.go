package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jd/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every indexed ID number",
	Long: `Print every ID number in the index, one per line, in order.

Example:
  jd list | fzf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		listCmd := commands.NewListCommand(newStore(), root)
		listCmd.Strict = cfg.Strict
		ids, err := listCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, e := range ids {
			fmt.Println(e.Number)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
