package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"takenotes/internal/application"
	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newCreateCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	var (
		parent string
		icon   string
		color  string
		pinned bool
	)

	cmd := &cobra.Command{
		Use:   "create <name|path>",
		Short: fmt.Sprintf("Create a %s", kind),
		Long: fmt.Sprintf(`Create a %[1]s at the top level, or inside --parent.

A slash-separated path creates every missing segment and reuses the ones
that already exist. Style flags apply to the last segment only.

Examples:
  takenotes-cli %[1]s create work
  takenotes-cli %[1]s create meetings --parent work --icon 📅
  takenotes-cli %[1]s create school/winter26/math`, kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := parseStyle(icon, color, pinned)
			if err != nil {
				return err
			}

			var result *commands.CreateLabelResult
			if strings.Contains(args[0], domain.PathSeparator) {
				if parent != "" {
					return fmt.Errorf("--parent cannot be combined with a path")
				}
				result, err = commands.NewCreatePathCommand(labels(), kind, args[0], style).Execute(cmd.Context())
			} else {
				result, err = commands.NewCreateLabelCommand(labels(), kind, parent, args[0], style).Execute(cmd.Context())
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "parent id or path")
	cmd.Flags().StringVar(&icon, "icon", "", `icon, e.g. "📚", "star" or "emoji:📚"`)
	cmd.Flags().StringVar(&color, "color", "", "color as #RRGGBB or #RRGGBBAA")
	if kind == domain.KindTag {
		cmd.Flags().BoolVar(&pinned, "pin", false, "pin the new tag")
	}
	return cmd
}

func parseStyle(icon, color string, pinned bool) (application.LabelStyle, error) {
	parsed, err := application.ParseIcon(icon)
	if err != nil {
		return application.LabelStyle{}, err
	}
	style := application.LabelStyle{Icon: parsed, Pinned: pinned}
	if color != "" {
		style.ColorHex = &color
	}
	return style, nil
}
