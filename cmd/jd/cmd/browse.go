package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jd/internal/adapters/editor"
	"jd/internal/adapters/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the index interactively",
	Long: `Browse the index as a tree. Enter prints the selected folder and exits,
so the browser can drive cd:

  cd "$(jd browse)"

The interface is drawn on stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		app := tui.NewApp(newStore(), root, editor.NewOpener(cfg.Editor))
		app.SetStrict(cfg.Strict)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithOutput(os.Stderr), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("browser failed: %w", err)
		}

		if path := app.Selected(); path != "" {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
