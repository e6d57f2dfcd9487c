package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/authgate/pkg/app"
	"github.com/doodlesbykumbi/authgate/pkg/audit"
	"github.com/doodlesbykumbi/authgate/pkg/config"
	"github.com/doodlesbykumbi/authgate/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "authgate",
	Short: "Startup gate for service environment variables",
	Long: `Validate the environment variables a service needs before it starts.

authgate loads a dotenv file, reports missing and undeclared variables and
verifies every value against its declared type.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default ./config, or AUTHGATE_CONFIG_PATH)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", logging.FormatText, "Log format (text or json)")
	rootCmd.PersistentFlags().String("audit-log", "", "Append RFC5424 audit records to this file (- for stderr)")
}

// newApp builds an App from the global flags plus the given options. Command
// flags that were set become configuration overrides.
func newApp(cmd *cobra.Command, opts ...app.Option) (*app.App, error) {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	auditLog, _ := cmd.Flags().GetString("audit-log")

	logger, err := logging.New(config.DefaultLogLevel, logFormat, os.Stderr)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		opts = append(opts, app.WithOverride("log_level", logLevel))
	}
	opts = append(opts, flagOverrides(cmd)...)
	opts = append(opts, app.WithLogger(logger))

	if auditLog != "" {
		w, err := openAuditLog(auditLog)
		if err != nil {
			return nil, err
		}
		opts = append(opts, app.WithAuditor(audit.NewLogger(w)))
	}

	a := app.New(configPath, opts...)
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	// An invalid level is reported by Validate.
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return a, nil
}

// flagOverrides maps the environment flags a command defines to
// configuration attributes.
func flagOverrides(cmd *cobra.Command) []app.Option {
	flags := []struct {
		flag      string
		attribute string
	}{
		{"env-file", "env_file_path"},
		{"prefix", "prefix"},
		{"unknown", "unknown_variables"},
	}

	var opts []app.Option
	for _, f := range flags {
		if cmd.Flags().Lookup(f.flag) == nil || !cmd.Flags().Changed(f.flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(f.flag)
		opts = append(opts, app.WithOverride(f.attribute, value))
	}
	return opts
}

// openAuditLog opens path for appending. The file stays open for the life of
// the process.
func openAuditLog(path string) (io.Writer, error) {
	if path == "-" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log %s: %w", path, err)
	}
	return f, nil
}

func addEnvFlags(cmd *cobra.Command) {
	cmd.Flags().String("env-file", "", "Dotenv file to load (overrides env_file_path)")
	cmd.Flags().String("prefix", "", "Variable prefix (overrides prefix)")
	cmd.Flags().String("unknown", "", "Undeclared variable policy: warn, strict or ignore")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
