package main

import (
	"os"

	"github.com/lanterntools/lantern/cli"
	"github.com/lanterntools/lantern/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"lantern",
		"A terminal shell for routed, paginated pages",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewBrowseCmd())
	rootCmd.AddCommand(cmd.NewRoutesCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
