package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"jd/internal/adapters/filesystem"
	"jd/internal/application/commands"
)

var addCmd = &cobra.Command{
	Use:   "add <parent> [label...]",
	Short: "Create the next free ID or category",
	Long: `Allocate the lowest free number under a parent and create its folder.
A category parent gets a new ID; an area parent gets a new category.
Without a label, jd asks for one.

Examples:
  jd add 11 Receipts        # creates "11.03 Receipts" if 11.01-11.02 exist
  jd add 10-19 Insurance    # creates the next free category in 10-19
  jd add 11`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		label := strings.Join(args[1:], " ")
		if label == "" {
			label, err = promptLabel(args[0])
			if err != nil {
				return err
			}
		}

		catalog, closeCatalog := openCatalog()
		defer closeCatalog()

		addCmd := commands.NewAddCommand(newStore(), filesystem.NewRepository(), catalog, log, root, args[0], label)
		addCmd.Strict = cfg.Strict
		result, err := addCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		log.Infof("%s", result.Message)
		fmt.Println(result.Path)
		return nil
	},
}

// promptLabel asks for a label on the terminal
func promptLabel(parent string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New("a label is required")
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	label, err := line.Prompt(fmt.Sprintf("Label for the new folder under %s: ", parent))
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", errors.New("aborted")
	}
	if err != nil {
		return "", fmt.Errorf("failed to read label: %w", err)
	}
	return strings.TrimSpace(label), nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
