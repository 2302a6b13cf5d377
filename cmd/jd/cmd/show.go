package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jd/internal/application/commands"
	"jd/internal/domain"
)

var (
	areaColor   = color.New(color.Bold)
	catColor    = color.New(color.FgCyan)
	orphanColor = color.New(color.FgYellow)
)

var showCmd = &cobra.Command{
	Use:   "show [number]",
	Short: "Print the index as an outline",
	Long: `Print the index as an outline. With a number, print that entry with its
ancestors, plus its children for an area or category.

Examples:
  jd show
  jd show 11
  jd show 11.04`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}

		showCmd := commands.NewShowCommand(newStore(), root, query)
		showCmd.Strict = cfg.Strict
		result, err := showCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, l := range result.Lines {
			fmt.Println(formatLine(l))
		}
		return nil
	},
}

func formatLine(l domain.Line) string {
	indent := strings.Repeat("  ", l.Depth)
	name := l.Entry.Name()

	switch {
	case l.Orphan:
		return indent + orphanColor.Sprint(name+"  (orphan)")
	case l.Kind == domain.LevelArea:
		return indent + areaColor.Sprint(name)
	case l.Kind == domain.LevelCategory:
		return indent + catColor.Sprint(name)
	default:
		return indent + name
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
