package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newMoveCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "move <ref> [new-parent]",
		Short: fmt.Sprintf("Move a %s under another one, or to the top level", kind),
		Long: fmt.Sprintf(`Move a %[1]s and everything nested below it.

Without a new parent the %[1]s becomes top level. A %[1]s cannot move
under itself or under anything nested below it.

Examples:
  takenotes-cli %[1]s move work/design personal   # becomes personal/design
  takenotes-cli %[1]s move personal/design        # becomes design`, kind),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var parent string
			if len(args) == 2 {
				parent = args[1]
			}

			result, err := commands.NewMoveCommand(labels(), kind, args[0], parent).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
