// Package cli implements the grove command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/internal/paths"
	"github.com/mesh-intelligence/arbor/pkg/arbor"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// logger is shared with the store so backend activity lands in the same
// stream as CLI diagnostics.
var logger = logrus.New()

// NewRootCmd creates the top-level "grove" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "grove",
		Short:   "Grove manages a persistent tree of named nodes",
		Long:    "Grove stores a tree of named nodes in a local database.\nNodes are addressed by slash-separated paths and can be grouped\ninto shares.",
		Version: arbor.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLevel(logrus.WarnLevel)
			if flags.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			configDir, err := resolveConfigDir()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			configDataDir = cfg.GetString(cfgKeyDataDir)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.grove if present, else the platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.grove-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCreateCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newShareCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > GROVE_CONFIG_DIR env > existing
// $(CWD)/.grove > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// resolveDataDir returns the data directory following the precedence
// chain: --data-dir flag > config.yaml data_dir > GROVE_DATA_DIR env >
// default $(CWD)/.grove-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flags.dataDir, configDataDir)
}

// exitError prints the error to stderr and exits with the given code.
func exitError(cmd *cobra.Command, code int, msg string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), msg)
	os.Exit(code)
	return nil // unreachable
}
