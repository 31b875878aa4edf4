package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/lanterntools/lantern/cli"
	"github.com/lanterntools/lantern/logging"
	"github.com/spf13/cobra"
)

// NewRoutesCmd creates the `routes` command
func NewRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes the browse shell serves",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			cfg, err := loadConfig(opts.ConfigFile)
			if err != nil {
				return handler.Handle(err)
			}

			sh, err := buildShell(cfg, logging.NewLogger("routes"))
			if err != nil {
				return handler.Handle(err)
			}

			names := sh.Router().Routes()
			if opts.JSONOutput {
				data, err := json.MarshalIndent(names, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
	return cmd
}
