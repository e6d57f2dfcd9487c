package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/authgate/pkg/app"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration attributes and their sources",
	Long: `Show configuration attributes and their sources.

The values reflect the defaults, the configuration file, AUTHGATE_*
environment variables and global flags, in increasing precedence.

Config file location: ./config.{toml,yaml,yml,json} (or AUTHGATE_CONFIG_PATH)

Example:
  authgate configuration show
  authgate configuration show --output json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		a, err := newApp(cmd)
		if err == nil {
			err = showConfiguration(a, output, os.Stdout)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showConfiguration(a *app.App, output string, w io.Writer) error {
	cfg, err := a.Config()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if output == "json" {
		jsonOutput, err := cfg.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonOutput)
		return nil
	}

	fmt.Fprint(w, cfg.FormatText())
	return nil
}
