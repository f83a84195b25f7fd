// Share commands for the grove CLI.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/arbor/pkg/model"
)

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Manage share groups",
	}
	cmd.AddCommand(newShareCreateCmd())
	cmd.AddCommand(newShareListCmd())
	return cmd
}

func newShareCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <path>...",
		Short: "Create a share group over the given nodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("share create: %s", err))
			}
			defer store.Close()

			doc, err := store.OpenDocument()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("open document: %s", err))
			}

			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				path, err := parsePathArg(arg)
				if err != nil {
					return err
				}
				node, ok := doc.FindNode(path)
				if !ok {
					return fmt.Errorf("%s: %w", path, model.ErrNotFound)
				}
				ids = append(ids, node.Base.ID)
			}

			doc.AddShareGroup(ids...)
			if err := store.SaveShareGroups(doc); err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("save share groups: %s", err))
			}

			group := doc.ShareGroups[len(doc.ShareGroups)-1]
			if flags.jsonMode {
				return printJSON(cmd, shareJSON{
					ShareID: group.ShareID,
					Paths:   memberPaths(pathsByID(doc), group),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "share %s created with %d members\n", group.ShareID, len(group.ObjectIDs))
			return nil
		},
	}
}

func newShareListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List share groups and their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("share list: %s", err))
			}
			defer store.Close()

			doc, err := store.OpenDocument()
			if err != nil {
				return exitError(cmd, exitSysError, fmt.Sprintf("open document: %s", err))
			}

			byID := pathsByID(doc)
			if flags.jsonMode {
				out := make([]shareJSON, 0, len(doc.ShareGroups))
				for _, g := range doc.ShareGroups {
					out = append(out, shareJSON{ShareID: g.ShareID, Paths: memberPaths(byID, g)})
				}
				return printJSON(cmd, out)
			}

			if len(doc.ShareGroups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no share groups")
				return nil
			}
			for _, g := range doc.ShareGroups {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", g.ShareID, strings.Join(memberPaths(byID, g), ", "))
			}
			return nil
		},
	}
}

// shareJSON is the JSON projection of a share group.
type shareJSON struct {
	ShareID string   `json:"share_id"`
	Paths   []string `json:"paths"`
}

// pathsByID maps every node id in the document to its path.
func pathsByID(doc *model.Document) map[int64]model.ModelPath {
	byID := make(map[int64]model.ModelPath)
	_ = doc.Root.Walk(func(n *model.Node) error {
		byID[n.Base.ID] = n.Base.Path
		return nil
	})
	return byID
}

// memberPaths renders a group's members as path strings. Ids without a
// live node fall back to the numeric form.
func memberPaths(byID map[int64]model.ModelPath, g model.ShareGroup) []string {
	out := make([]string, 0, len(g.ObjectIDs))
	for _, id := range g.ObjectIDs {
		if p, ok := byID[id]; ok {
			out = append(out, p.String())
		} else {
			out = append(out, fmt.Sprintf("#%d", id))
		}
	}
	return out
}
