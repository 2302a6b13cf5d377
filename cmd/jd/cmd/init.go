package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var shellSnippets = map[string]string{
	"bash": `j() {
    cd "$(jd cd "$@")" || return
}`,
	"zsh": `j() {
    cd "$(jd cd "$@")" || return
}`,
	"fish": `function j
    pushd (jd cd $argv)
end`,
}

var initCmd = &cobra.Command{
	Use:   "init <bash|zsh|fish>",
	Short: "Print a shell function that cds to JD numbers",
	Long: `Print the definition of a shell function "j" that changes directory to
the folder of a JD number. Add it to your shell config:

  # ~/.bashrc or ~/.zshrc
  eval "$(jd init bash)"

  # ~/.config/fish/config.fish
  jd init fish | source`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snippet, ok := shellSnippets[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", args[0])
		}

		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprintf(os.Stderr, "%s this command is meant for your shell config, not the terminal.\nHere is what it prints:\n\n",
				color.YellowString("Warning:"))
		}
		fmt.Println(snippet)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
