package cmd

import (
	"github.com/lanterntools/lantern/cli"
	"github.com/lanterntools/lantern/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the `version` command
func NewVersionCmd() *cobra.Command {
	info := version.GetInfo()
	return cli.NewVersionCommand("lantern", cli.VersionInfo{
		Version:   info.Version,
		Commit:    info.Commit,
		BuildDate: info.BuildDate,
		BuildArch: info.Platform,
	})
}
