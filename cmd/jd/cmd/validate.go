package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jd/internal/application/commands"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the index file for numbering problems",
	Long: `Read the index file and report duplicate numbers, entries filed under
the wrong parent and entries whose parent is missing. The tree itself is
not scanned; run "jd index" to pick up changes on disk.

Exits non-zero when there is anything to report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		result, err := commands.NewValidateCommand(newStore(), root).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, d := range result.Diagnostics {
			fmt.Println(d)
		}
		if !result.OK() {
			return fmt.Errorf("%d problems in %s", len(result.Diagnostics), root)
		}

		s := result.Summary
		log.Infof("index OK: %d areas, %d categories, %d IDs", s.Areas, s.Categories, s.IDs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
