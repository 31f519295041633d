package main

import (
	"fmt"

	"github.com/aretw0/unmangle"
	"github.com/spf13/cobra"
)

var vaultCmd = &cobra.Command{
	Use:   "vault [dir]",
	Short: "Write each note as a Markdown file",
	Long: `Read a notes_v2 export on standard input and write every note into dir
as Markdown with YAML frontmatter (title, created, updated, tags).

Files are named after the note's position and title, e.g. 0003-groceries.md.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := unmangle.ExportVault(cmd.Context(), cmd.InOrStdin(), args[0], serviceOptions()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s\n", len(paths), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
}
