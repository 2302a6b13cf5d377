package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jd/internal/application/commands"
	"jd/internal/domain"
)

var cdCmd = &cobra.Command{
	Use:   "cd <number>",
	Short: "Print the folder of a JD number",
	Long: `Print the absolute path of the folder for a JD number, for use by the
shell function "jd init" sets up:

  j 11.04    # cd into the folder of 11.04

Nothing but the path goes to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		resolveCmd := commands.NewResolveCommand(newStore(), root, args[0])
		resolveCmd.Strict = cfg.Strict
		result, err := resolveCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if result.Resolution.Kind == domain.ResultEmpty {
			log.Debugf("%s has no children", result.Resolution.Target.Number)
		}
		fmt.Println(result.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cdCmd)
}
