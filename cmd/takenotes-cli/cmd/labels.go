package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// labelsFunc hands subcommands the service opened by the root command
type labelsFunc func() *application.Labels

// newKindCmd groups every label operation under "tag" or "folder"
func newKindCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     kind.String(),
		Aliases: []string{kind.Plural()},
		Short:   fmt.Sprintf("Manage %s", kind.Plural()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newCreateCmd(kind, labels),
		newRenameCmd(kind, labels),
		newMoveCmd(kind, labels),
		newDeleteCmd(kind, labels),
		newReorderCmd(kind, labels),
		newListCmd(kind, labels),
		newTreeCmd(kind, labels),
		newShowCmd(kind, labels),
		newSearchCmd(kind, labels),
		newIconCmd(kind, labels),
		newColorCmd(kind, labels),
	)
	if kind == domain.KindTag {
		cmd.AddCommand(newPinCmd(labels, true), newPinCmd(labels, false))
	}
	return cmd
}

// labelName renders "#path" for tags and the bare path for folders
func labelName(v application.LabelView) string {
	if v.Kind == domain.KindTag {
		return v.DisplayTag()
	}
	return v.Path
}

func printLabels(w io.Writer, views []application.LabelView) {
	for _, v := range views {
		printLabel(w, v)
	}
}

func printLabel(w io.Writer, v application.LabelView) {
	var extra []string
	if v.ChildCount > 0 {
		extra = append(extra, fmt.Sprintf("%d nested", v.ChildCount))
	}
	if v.Pinned {
		extra = append(extra, "pinned")
	}

	line := fmt.Sprintf("%s %s", v.DisplayIcon.Glyph(), labelName(v))
	if len(extra) > 0 {
		line += "  (" + strings.Join(extra, ", ") + ")"
	}
	fmt.Fprintf(w, "%s  [%s]\n", line, v.ID)
}
