package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Inspect and validate service environment variables",
	Long:  `Inspect the variable schema and validate environment files against it.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'env' requires a subcommand (check, schema, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
