// Init command for the grove CLI.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/internal/sqlite"
	"github.com/mesh-intelligence/arbor/pkg/model"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize grove storage",
		Long:  "Create the configuration and data directories, then initialize\nthe document store with an empty tree.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("resolve config dir: %s", err))
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("resolve data dir: %s", err))
	}

	if err := ensureConfigDir(configDir); err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("create config directory: %s", err))
	}
	if err := writeConfigIfMissing(configDir, dataDir); err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("write config: %s", err))
	}

	// Opening the store creates the database file, the schema, and the
	// root row.
	store, err := sqlite.Open(model.Config{
		Path:   filepath.Join(dataDir, databaseFileName),
		Logger: logger,
	})
	if err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("initialize storage: %s", err))
	}
	if err := store.Close(); err != nil {
		return exitError(cmd, exitSysError, fmt.Sprintf("finalize storage: %s", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Grove initialized in %s\n", dataDir)
	return nil
}
