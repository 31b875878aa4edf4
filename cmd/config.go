package cmd

import (
	"fmt"
	"os"

	"github.com/lanterntools/lantern/cli"
	"github.com/lanterntools/lantern/config"
	"github.com/lanterntools/lantern/errors"
	"github.com/lanterntools/lantern/schema"
	"github.com/lanterntools/lantern/tui/theme"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the `config` command group
func NewConfigCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"config",
		"Inspect and validate the lantern configuration",
	)
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Shows the configuration lantern would use from the current directory,
after defaults and environment expansion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path, err := cli.InitConfig(opts.ConfigFile)
			if err != nil {
				return handler.Handle(err)
			}
			if path == "" {
				return handler.Handle(errors.ConfigNotFound("lantern.yml"))
			}

			cfg, err := config.Load(path)
			if err != nil {
				return handler.Handle(err)
			}

			fmt.Printf("# Source: %s\n", path)
			out := map[string]interface{}{
				"version": cfg.Version,
				"theme":   cfg.Theme,
				"keymap":  cfg.Keymap,
			}
			for key, value := range cfg.Extensions {
				out[key] = value
			}
			data, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a config file against the schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			resolved, err := cli.InitConfig(firstNonEmpty(path, opts.ConfigFile))
			if err != nil {
				return handler.Handle(err)
			}
			if resolved == "" {
				return handler.Handle(errors.ConfigNotFound("lantern.yml"))
			}

			// Validation runs on the raw document so that typos in known
			// keys are not silently swallowed into Extensions.
			raw, err := os.ReadFile(resolved)
			if err != nil {
				return handler.Handle(errors.ConfigNotFound(resolved))
			}
			var doc map[string]interface{}
			if err := yaml.Unmarshal(raw, &doc); err != nil {
				return handler.Handle(errors.ConfigInvalid(fmt.Sprintf("%s: %v", resolved, err)))
			}

			validator, err := schema.NewValidator()
			if err != nil {
				return err
			}
			if err := validator.Validate(doc); err != nil {
				return handler.Handle(errors.Wrap(err, errors.ErrCodeConfigValidation, fmt.Sprintf("'%s' failed schema validation", resolved)))
			}

			fmt.Printf("%s %s is valid\n", theme.IconSuccess, resolved)
			return nil
		},
	}
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
