package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "minic - semantic checker for mini C programs",
	Long: `minic parses and semantically checks mini C programs, folding constant
arithmetic and reporting the final symbol table.

Commands:
  check    Analyze one or more source files
  version  Print the tool version
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
