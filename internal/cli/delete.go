// Delete command for the grove CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a node and its whole subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parsePathArg(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("delete: %s", err))
			}
			defer store.Close()

			doc, err := store.OpenDocument()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("open document: %s", err))
			}

			if err := store.DeleteNode(doc, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", path)
			return nil
		},
	}
}
