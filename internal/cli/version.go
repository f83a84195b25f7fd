// Version command for the grove CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/arbor"
)

const modulePath = "github.com/mesh-intelligence/arbor"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the grove version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "grove v%s\nmodule: %s\n", arbor.Version, modulePath)
			return nil
		},
	}
}
