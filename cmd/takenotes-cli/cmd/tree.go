package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newTreeCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: fmt.Sprintf("Display the %s tree", kind),
		Long: fmt.Sprintf(`Display every %[1]s, nested under its parent, with the icon it
displays (its own or the nearest one above it).

Example:
  takenotes-cli %[1]s tree`, kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := commands.NewBuildTreeCommand(labels(), kind).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(roots) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s\n", kind.Plural())
				return nil
			}

			for _, root := range roots {
				printTree(cmd.OutOrStdout(), root, 0)
			}
			return nil
		},
	}
}

func printTree(w io.Writer, node *domain.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s %s", indent, node.Icon.Glyph(), node.Name)
	if node.Pinned {
		line += " (pinned)"
	}
	fmt.Fprintln(w, line)

	for _, child := range node.Children {
		printTree(w, child, depth+1)
	}
}
