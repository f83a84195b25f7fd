// Tree command for the grove CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the document tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("tree: %s", err))
			}
			defer store.Close()

			doc, err := store.OpenDocument()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("open document: %s", err))
			}

			if flags.jsonMode {
				return printJSON(cmd, toNodeJSON(doc.Root, true))
			}
			doc.Dump(cmd.OutOrStdout())
			return nil
		},
	}
}
