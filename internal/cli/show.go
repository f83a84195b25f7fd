// Show command for the grove CLI.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/model"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Display a node and its direct children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parsePathArg(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("show: %s", err))
			}
			defer store.Close()

			doc, err := store.OpenDocument()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("open document: %s", err))
			}

			node, ok := doc.FindNode(path)
			if !ok {
				return fmt.Errorf("%s: %w", path, model.ErrNotFound)
			}

			if flags.jsonMode {
				out := toNodeJSON(node, false)
				for _, child := range node.Children() {
					out.Children = append(out.Children, toNodeJSON(child, false))
				}
				return printJSON(cmd, out)
			}

			names := make([]string, 0, node.NumChildren())
			for _, child := range node.Children() {
				names = append(names, child.Base.Name().String())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Path:     %s\n", node.Base.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "ID:       %d\n", node.Base.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Name:     %s\n", node.Base.Name())
			fmt.Fprintf(cmd.OutOrStdout(), "Children: %s\n", strings.Join(names, ", "))
			return nil
		},
	}
}
