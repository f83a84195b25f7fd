// Shared helpers for grove CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/internal/sqlite"
	"github.com/mesh-intelligence/arbor/pkg/model"
)

// databaseFileName is the SQLite file created inside the data directory.
const databaseFileName = "arbor.db"

// openStore resolves the data directory and opens the document store
// there. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(model.Config{
		Path:   filepath.Join(dataDir, databaseFileName),
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// parsePathArg parses a user-supplied path argument.
func parsePathArg(arg string) (model.ModelPath, error) {
	p, err := model.Parse(arg)
	if err != nil {
		return model.ModelPath{}, fmt.Errorf("invalid path %q: %w", arg, err)
	}
	return p, nil
}

// nodeJSON is the JSON projection of a node.
type nodeJSON struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Children []nodeJSON `json:"children,omitempty"`
}

// toNodeJSON converts a node for JSON output. With recurse set the whole
// subtree is included, otherwise only the node itself.
func toNodeJSON(n *model.Node, recurse bool) nodeJSON {
	out := nodeJSON{
		ID:   n.Base.ID,
		Name: n.Base.Name().String(),
		Path: n.Base.Path.String(),
	}
	if recurse {
		for _, child := range n.Children() {
			out.Children = append(out.Children, toNodeJSON(child, true))
		}
	}
	return out
}

// printJSON writes v to the command output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
