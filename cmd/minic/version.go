package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pattyshack/minic/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tool version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "minic", config.ToolVersion)
	},
}
