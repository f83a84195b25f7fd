// Create command for the grove CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/model"
)

func newCreateCmd() *cobra.Command {
	var parents bool

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a node at the given path",
		Long:  "Create a node addressed by a slash-separated path. The parent\nmust already exist unless --parents is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parsePathArg(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("create: %s", err))
			}
			defer store.Close()

			doc, err := store.OpenDocument()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("open document: %s", err))
			}

			var node *model.Node
			if parents {
				node, err = store.CreatePath(doc, path)
			} else {
				node, err = store.CreateNode(doc, path)
			}
			if err != nil {
				return err
			}

			if flags.jsonMode {
				return printJSON(cmd, toNodeJSON(node, false))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (id %d)\n", node.Base.Path, node.Base.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&parents, "parents", false, "create missing ancestors as needed")
	return cmd
}
