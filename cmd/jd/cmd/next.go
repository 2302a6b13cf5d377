package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jd/internal/application/commands"
)

var nextCmd = &cobra.Command{
	Use:   "next <parent>",
	Short: "Print the number add would allocate",
	Long: `Print the lowest free ID of a category, or the lowest free category of
an area, without creating anything.

Examples:
  jd next 11
  jd next 10-19`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		nextCmd := commands.NewNextCommand(newStore(), root, args[0])
		nextCmd.Strict = cfg.Strict
		n, err := nextCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
