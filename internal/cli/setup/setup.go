// Package setup holds the command that prepares storage and configuration
// e.g., listo setup
package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/config"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the storage schema and a default config file",
		Long: `Prepare listo for first use: create the schema of the configured backend
and write a config.yaml with the defaults if no config file exists yet.

Examples:
  listo setup
  listo setup --force   # overwrite an existing config.yaml
  listo setup --check   # report what is configured`,
		Args: cobra.NoArgs,
		RunE: runSetup,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("check", false, "Only report the configuration")

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	force, _ := cmd.Flags().GetBool("force")
	check, _ := cmd.Flags().GetBool("check")
	formatter := cli.NewFormatter(cmd)

	dir, err := config.Dir()
	if err != nil {
		return formatter.Fail(err, "Set XDG_CONFIG_HOME to choose a config directory")
	}
	configPath, exists := existingConfig(dir)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "Check the storage section of your config")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	cfg := cliInstance.App.Config
	if check {
		if exists {
			fmt.Fprintf(out, "✓ Config file: %s\n", configPath)
		} else {
			fmt.Fprintf(out, "✗ No config file in %s (defaults in use)\n", dir)
		}
		fmt.Fprintf(out, "  Backend: %s\n", cfg.Storage.Backend)
		fmt.Fprintf(out, "  Location: %s\n", storageLocation(cfg.Storage))
		return nil
	}

	if err := cliInstance.App.Migrate(ctx); err != nil {
		return formatter.Fail(err, "Check that the storage location is writable")
	}
	fmt.Fprintf(out, "✓ Storage ready (%s): %s\n", cfg.Storage.Backend, storageLocation(cfg.Storage))

	if exists && !force {
		fmt.Fprintf(out, "✓ Using existing config: %s\n", configPath)
		return nil
	}

	if err := cfg.Save(); err != nil {
		return formatter.Fail(err, "Check that the config directory is writable")
	}
	fmt.Fprintf(out, "✓ Wrote config: %s\n", filepath.Join(dir, "config.yaml"))
	return nil
}

// existingConfig returns the config file listo would load from dir
func existingConfig(dir string) (string, bool) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		} else if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("cannot stat config file", "path", path, "error", err)
		}
	}
	return "", false
}

func storageLocation(s config.StorageConfig) string {
	switch s.Backend {
	case config.BackendFile:
		return s.Dir
	case config.BackendPostgres:
		return "postgres"
	default:
		return s.Path
	}
}
