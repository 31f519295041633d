package main

import (
	"fmt"

	"github.com/aretw0/unmangle"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of unmangle",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "unmangle version %s\n", unmangle.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
