package cmd

import (
	"github.com/spf13/cobra"

	"jd/internal/adapters/editor"
	"jd/internal/application/commands"
)

var openReveal bool

var openCmd = &cobra.Command{
	Use:   "open <number>",
	Short: "Open the folder of a JD number in your editor",
	Long: `Open the folder of a JD number with the editor named in the config,
$VISUAL or $EDITOR. With --reveal, show it in the system file manager
instead.

Examples:
  jd open 11.04
  jd open --reveal 11`,
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

		if openReveal {
			return editor.Reveal(result.Path)
		}
		return editor.NewOpener(cfg.Editor).Open(result.Path)
	},
}

func init() {
	openCmd.Flags().BoolVar(&openReveal, "reveal", false, "show the folder in the file manager")
	rootCmd.AddCommand(openCmd)
}
