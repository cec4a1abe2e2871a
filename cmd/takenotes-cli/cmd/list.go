package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newListCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list [parent]",
		Short: fmt.Sprintf("List top-level %s, or the children of a %s", kind.Plural(), kind),
		Long: fmt.Sprintf(`List %[1]s in sort order.

Examples:
  takenotes-cli %[2]s list
  takenotes-cli %[2]s list work`, kind.Plural(), kind),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var parent string
			if len(args) == 1 {
				parent = args[0]
			}

			views, err := commands.NewListLabelsCommand(labels(), kind, parent).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s\n", kind.Plural())
				return nil
			}
			printLabels(cmd.OutOrStdout(), views)
			return nil
		},
	}
}

func newShowCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ref>",
		Short: fmt.Sprintf("Show a %s with its ancestors and children", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewShowLabelCommand(labels(), kind, args[0]).Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			l := result.Label
			fmt.Fprintf(w, "%s %s\n", l.DisplayIcon.Glyph(), labelName(l))
			fmt.Fprintf(w, "  id:       %s\n", l.ID)
			fmt.Fprintf(w, "  depth:    %d\n", l.Depth)
			fmt.Fprintf(w, "  order:    %d\n", l.SortOrder)
			if l.Icon.HasIcon() {
				fmt.Fprintf(w, "  icon:     %s\n", l.Icon)
			} else {
				fmt.Fprintf(w, "  icon:     %s (inherited)\n", l.DisplayIcon)
			}
			if l.ColorHex != nil {
				fmt.Fprintf(w, "  color:    %s\n", *l.ColorHex)
			}
			if l.Pinned {
				fmt.Fprintln(w, "  pinned:   yes")
			}
			fmt.Fprintf(w, "  created:  %s\n", l.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Fprintf(w, "  updated:  %s\n", l.UpdatedAt.Format("2006-01-02 15:04"))

			if len(result.Ancestors) > 0 {
				var crumbs []string
				for _, a := range result.Ancestors {
					crumbs = append(crumbs, a.Name)
				}
				fmt.Fprintf(w, "  inside:   %s\n", strings.Join(crumbs, " › "))
			}
			fmt.Fprintf(w, "  nested:   %d\n", result.Descendants)

			if len(result.Children) > 0 {
				fmt.Fprintln(w)
				printLabels(w, result.Children)
			}
			return nil
		},
	}
}
