package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/authgate/pkg/app"
	"github.com/doodlesbykumbi/authgate/pkg/settings"
)

// envCheckCmd represents the env check command
var envCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an environment file against the variable schema",
	Long: `Load the environment file and validate every variable of the schema.

Variables already present in the process environment take precedence over
the file. The password is never printed.

Example:
  authgate env check --prefix APP_
  authgate env check --env-file deploy/.env --prefix APP_ --unknown strict
  authgate env check --output json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		a, err := newApp(cmd)
		if err == nil {
			err = checkEnvironment(a, output, os.Stdout)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to validate environment: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	envCmd.AddCommand(envCheckCmd)
	addEnvFlags(envCheckCmd)
	envCheckCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

type checkResult struct {
	Status   string            `json:"status"`
	Prefix   string            `json:"prefix"`
	EnvFile  string            `json:"env_file"`
	Database settings.Database `json:"database"`
}

func checkEnvironment(a *app.App, output string, w io.Writer) error {
	db, err := a.Check()
	if err != nil {
		return err
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}

	if output == "json" {
		data, err := json.MarshalIndent(checkResult{
			Status:   "ok",
			Prefix:   cfg.Prefix,
			EnvFile:  cfg.EnvFilePath,
			Database: db.Redacted(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "Environment valid (prefix %s, file %s)\n\n", cfg.Prefix, cfg.EnvFilePath)
	fmt.Fprint(w, db.FormatText())
	return nil
}
