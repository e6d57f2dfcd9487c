package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/authgate/pkg/schema"
)

// envSchemaCmd represents the env schema command
var envSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List the environment variables the service requires",
	Long: `List every required variable with its type and allowed values.

The prefix comes from --prefix or the configuration. Without a prefix the
bare suffix names are shown.

Example:
  authgate env schema --prefix APP_
  authgate env schema --output json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		a, err := newApp(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		cfg, _ := a.Config()

		if err := showSchema(a.Registry(), cfg.Prefix, output, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show schema: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	envCmd.AddCommand(envSchemaCmd)
	envSchemaCmd.Flags().String("prefix", "", "Variable prefix (overrides prefix)")
	envSchemaCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

type schemaEntry struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Allowed   []string `json:"allowed,omitempty"`
	Sensitive bool     `json:"sensitive"`
}

func showSchema(registry *schema.Registry, prefix, output string, w io.Writer) error {
	specs := registry.All()
	entries := make([]schemaEntry, 0, len(specs))
	for _, spec := range specs {
		entries = append(entries, schemaEntry{
			Name:      spec.Name(prefix),
			Type:      spec.Type.Kind.String(),
			Allowed:   spec.Type.Allowed,
			Sensitive: spec.Sensitive,
		})
	}

	if output == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "%-36s %-16s %-10s %s\n", "NAME", "TYPE", "SENSITIVE", "ALLOWED")
	fmt.Fprintf(w, "%-36s %-16s %-10s %s\n", "----", "----", "---------", "-------")
	for _, e := range entries {
		sensitive := "no"
		if e.Sensitive {
			sensitive = "yes"
		}
		fmt.Fprintf(w, "%-36s %-16s %-10s %s\n", e.Name, e.Type, sensitive, strings.Join(e.Allowed, ", "))
	}
	return nil
}
