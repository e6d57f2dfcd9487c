package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/authgate/pkg/app"
	"github.com/doodlesbykumbi/authgate/pkg/envstore"
)

// envWatchCmd represents the env watch command
var envWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the environment file and validate it whenever it changes",
	Long: `Validate the environment file, then validate it again every time it is
written or recreated.

Each validation starts from the process environment as it was when the
command started, so values removed from the file are reported as missing.

Example:
  authgate env watch --prefix APP_
  authgate env watch --env-file /run/secrets/app.env`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		environ := os.Environ()
		a, err := newApp(cmd, app.WithStoreFactory(func() envstore.Store {
			return envstore.FromEnviron(environ)
		}))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch environment: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := watchEnvironment(ctx, a, os.Stdout, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch environment: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	envCmd.AddCommand(envWatchCmd)
	addEnvFlags(envWatchCmd)
}

// watchEnvironment validates once and then on every write or create of the
// environment file until ctx is done.
func watchEnvironment(ctx context.Context, a *app.App, out, errOut io.Writer) error {
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	filename, err := filepath.Abs(cfg.EnvFilePath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so the file can be replaced atomically.
	dir := filepath.Dir(filename)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	fmt.Fprintf(out, "Watching %s for changes (prefix: %s)\n", filename, cfg.Prefix)
	reportCheck(a, out, errOut)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Fprintf(out, "[%s] File modified, validating...\n", time.Now().Format(time.RFC3339))
				reportCheck(a, out, errOut)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "Watcher error: %v\n", err)
		case <-ctx.Done():
			fmt.Fprintln(out, "\nShutting down...")
			return nil
		}
	}
}

func reportCheck(a *app.App, out, errOut io.Writer) {
	db, err := a.Check()
	if err != nil {
		fmt.Fprintf(errOut, "Environment invalid: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Environment valid: %s\n", db)
}
