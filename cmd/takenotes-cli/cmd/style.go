package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newIconCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "icon <ref> <icon>",
		Short: fmt.Sprintf("Set a %s's icon (\"none\" clears it)", kind),
		Long: fmt.Sprintf(`Set the icon of a %[1]s. Nested %[2]s without an icon of their own
display the nearest icon above them.

Examples:
  takenotes-cli %[1]s icon work 💼
  takenotes-cli %[1]s icon work symbol:briefcase
  takenotes-cli %[1]s icon work none`, kind, kind.Plural()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewSetIconCommand(labels(), kind, args[0], args[1]).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}

func newColorCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "color <ref> [#RRGGBB]",
		Short: fmt.Sprintf("Set a %s's color, or clear it when omitted", kind),
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var color string
			if len(args) == 2 {
				color = args[1]
			}

			result, err := commands.NewSetColorCommand(labels(), kind, args[0], color).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
